package bits

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Decoder builds packet trees from a Reader. The parse is iterative, so
// nesting depth is bounded by the input rather than the goroutine stack.
type Decoder struct {
	log zerolog.Logger
}

// NewDecoder returns a Decoder that reports each packet header to log at
// debug level.
func NewDecoder(log zerolog.Logger) *Decoder {
	return &Decoder{log: log}
}

// Decode parses the single outermost packet of a hex transmission.
// Trailing padding bits are not inspected.
func Decode(hex string) (Packet, error) {
	r, err := Open(hex)
	if err != nil {
		return Packet{}, err
	}
	return NewDecoder(zerolog.Nop()).Parse(r)
}

// operator is an operator whose sub-packets are still being read.
type operator struct {
	pkt   Packet
	start int // stream position of the header
	body  int // stream position of the first sub-packet
	want  int // bits for TotalBits, packets for SubCount
}

// complete reports whether o has all of its sub-packets once the reader
// sits at pos.
func (o *operator) complete(pos int) (bool, error) {
	if o.pkt.Length == SubCount {
		return len(o.pkt.Sub) == o.want, nil
	}
	used := pos - o.body
	if used > o.want {
		return false, errors.Wrapf(ErrMalformedInput,
			"%s operator at bit %d: sub-packets span %d bits, declared %d", o.pkt.Type, o.start, used, o.want)
	}
	return used == o.want, nil
}

func (o *operator) finish(pos int) (Packet, error) {
	if n := o.pkt.Type.arity(); n != 0 && len(o.pkt.Sub) != n {
		return Packet{}, errors.Wrapf(ErrMalformedInput,
			"%s operator at bit %d has %d sub-packets, want %d", o.pkt.Type, o.start, len(o.pkt.Sub), n)
	}
	o.pkt.Bits = pos - o.start
	return o.pkt, nil
}

// Parse reads exactly one complete packet, with all of its descendants,
// from r.
func (d *Decoder) Parse(r *Reader) (Packet, error) {
	var open []*operator
	for {
		start := r.Position()
		version, err := r.ReadBits(3)
		if err != nil {
			return Packet{}, err
		}
		typ, err := r.ReadBits(3)
		if err != nil {
			return Packet{}, err
		}
		p := Packet{Version: uint8(version), Type: Type(typ)}
		d.log.Debug().
			Int("bit", start).
			Uint8("version", p.Version).
			Stringer("type", p.Type).
			Int("depth", len(open)).
			Msg("packet")

		if !p.IsLiteral() {
			op, err := d.readOperator(r, p, start)
			if err != nil {
				return Packet{}, err
			}
			open = append(open, op)
			continue
		}

		if p.Value, err = readLiteral(r, start); err != nil {
			return Packet{}, err
		}
		p.Bits = r.Position() - start

		// Hand the finished packet to its parent, closing every operator
		// it completes on the way up.
		for {
			if len(open) == 0 {
				return p, nil
			}
			top := open[len(open)-1]
			top.pkt.Sub = append(top.pkt.Sub, p)
			done, err := top.complete(r.Position())
			if err != nil {
				return Packet{}, err
			}
			if !done {
				break
			}
			open = open[:len(open)-1]
			if p, err = top.finish(r.Position()); err != nil {
				return Packet{}, err
			}
		}
	}
}

func (d *Decoder) readOperator(r *Reader, p Packet, start int) (*operator, error) {
	lt, err := r.ReadBits(1)
	if err != nil {
		return nil, err
	}
	p.Length = LengthType(lt)
	width := totalBitsWidth
	if p.Length == SubCount {
		width = subCountWidth
	}
	want, err := r.ReadBits(width)
	if err != nil {
		return nil, err
	}
	if want == 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "%s operator at bit %d has no sub-packets", p.Type, start)
	}
	if p.Length == TotalBits && int(want) > r.Remaining() {
		return nil, errors.Wrapf(ErrUnexpectedEnd,
			"%s operator at bit %d declares %d bits of sub-packets, %d remain", p.Type, start, want, r.Remaining())
	}
	return &operator{
		pkt:   p,
		start: start,
		body:  r.Position(),
		want:  int(want),
	}, nil
}

// readLiteral reads continuation-flagged 5-bit groups until the group
// whose flag is clear.
func readLiteral(r *Reader, start int) (uint64, error) {
	var v uint64
	for {
		g, err := r.ReadBits(groupBits)
		if err != nil {
			return 0, err
		}
		if v>>60 != 0 {
			return 0, errors.Wrapf(ErrOverflow, "literal at bit %d", start)
		}
		v = v<<4 | g&0xF
		if g&0x10 == 0 {
			return v, nil
		}
	}
}
