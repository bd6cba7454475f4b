// Package bits decodes and evaluates BITS transmissions: hex-encoded,
// bit-packed expression trees made of literal and operator packets.
package bits

import "fmt"

// Type is the 3-bit packet type ID.
type Type uint8

const (
	Sum Type = iota
	Product
	Minimum
	Maximum
	Literal
	Greater
	Less
	Equal
)

var typeNames = [...]string{"sum", "product", "min", "max", "literal", "gt", "lt", "eq"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// arity returns the exact number of operands t requires, or 0 if any
// non-zero count is accepted.
func (t Type) arity() int {
	switch t {
	case Greater, Less, Equal:
		return 2
	}
	return 0
}

// LengthType selects how an operator declares the extent of its
// sub-packets.
type LengthType uint8

const (
	// TotalBits is followed by a 15-bit count of sub-packet bits.
	TotalBits LengthType = 0
	// SubCount is followed by an 11-bit count of sub-packets.
	SubCount LengthType = 1
)

const (
	headerBits     = 6
	groupBits      = 5
	totalBitsWidth = 15
	subCountWidth  = 11
)

// Packet is one decoded packet. A literal (Type == Literal) carries Value
// and no Sub; every other type is an operator carrying Sub in stream order.
type Packet struct {
	Version uint8
	Type    Type
	Value   uint64
	Sub     []Packet

	// Length is the encoding the operator was read with.
	Length LengthType
	// Bits is the packet's span in the stream, header included.
	Bits int
}

func (p *Packet) IsLiteral() bool {
	return p.Type == Literal
}
