package bits

import (
	"encoding/hex"
	"math/bits"
	"strings"
)

// Writer accumulates bits MSB-first.
type Writer struct {
	buf  []byte
	bits int
}

func (w *Writer) WriteBit(bit uint8) {
	if w.bits%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit != 0 {
		w.buf[w.bits/8] |= 1 << (7 - w.bits%8)
	}
	w.bits++
}

// WriteBits writes the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(uint8(v >> i & 1))
	}
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.bits
}

// Hex returns the written bits as upper-case hex, zero-padded to a whole
// number of digits.
func (w *Writer) Hex() string {
	digits := (w.bits + 3) / 4
	return strings.ToUpper(hex.EncodeToString(w.buf))[:digits]
}

// Encode serializes p using the shortest literal encoding and a sub-packet
// count for every operator. Decoding the result yields p again, apart from
// Length and Bits. Operators may hold at most 2047 sub-packets.
func Encode(p Packet) string {
	var w Writer
	stack := []*Packet{&p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.WriteBits(uint64(q.Version), 3)
		w.WriteBits(uint64(q.Type), 3)
		if q.IsLiteral() {
			writeLiteral(&w, q.Value)
			continue
		}
		w.WriteBits(uint64(SubCount), 1)
		w.WriteBits(uint64(len(q.Sub)), subCountWidth)
		for i := len(q.Sub) - 1; i >= 0; i-- {
			stack = append(stack, &q.Sub[i])
		}
	}
	return w.Hex()
}

func writeLiteral(w *Writer, v uint64) {
	groups := (bits.Len64(v) + 3) / 4
	if groups == 0 {
		groups = 1
	}
	for i := groups - 1; i >= 0; i-- {
		more := uint64(0)
		if i > 0 {
			more = 1
		}
		w.WriteBits(more<<4|v>>(4*i)&0xF, groupBits)
	}
}
