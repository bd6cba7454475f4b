package bits

import (
	"strings"

	"github.com/pkg/errors"
)

// Reader is a forward-only bit source over a hexadecimal transmission.
//
// Bits are read MSB-first: the first bit of the stream is the high bit of
// the first hex digit.
type Reader struct {
	data      []byte
	totalBits int
	position  int
}

// Open trims surrounding whitespace from hex and returns a reader over its
// bits. Any character outside [0-9A-Fa-f] is an ErrMalformedInput.
func Open(hex string) (*Reader, error) {
	hex = strings.TrimSpace(hex)
	data := make([]byte, (len(hex)+1)/2)
	for i := 0; i < len(hex); i++ {
		n, ok := nibble(hex[i])
		if !ok {
			return nil, errors.Wrapf(ErrMalformedInput, "non-hex character %q at offset %d", hex[i], i)
		}
		if i%2 == 0 {
			data[i/2] = n << 4
		} else {
			data[i/2] |= n
		}
	}
	return &Reader{
		data:      data,
		totalBits: len(hex) * 4,
	}, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.position
}

// Remaining returns the number of bits not yet consumed.
func (r *Reader) Remaining() int {
	return r.totalBits - r.position
}

// ReadBits consumes the next n bits (1 <= n <= 64) and returns them as an
// unsigned integer, MSB-first.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, errors.Errorf("bits: cannot read %d bits at once", n)
	}
	if r.Remaining() < n {
		return 0, errors.Wrapf(ErrUnexpectedEnd, "need %d bits at bit %d, have %d", n, r.position, r.Remaining())
	}

	var v uint64
	for i := 0; i < n; i++ {
		b := r.data[r.position/8] >> (7 - r.position%8) & 1
		v = v<<1 | uint64(b)
		r.position++
	}
	return v, nil
}
