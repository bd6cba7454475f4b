package bits

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func op(t Type, sub ...Packet) Packet {
	return Packet{Type: t, Length: SubCount, Sub: sub}
}

func val(v uint64) Packet {
	return Packet{Type: Literal, Value: v}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		p    Packet
		want uint64
	}{
		{"literal", val(7), 7},
		{"sum one", op(Sum, val(9)), 9},
		{"sum", op(Sum, val(1), val(2), val(3)), 6},
		{"product", op(Product, val(6), val(9)), 54},
		{"product zero", op(Product, val(0), val(math.MaxUint64), val(math.MaxUint64)), 0},
		{"min", op(Minimum, val(8), val(7), val(9)), 7},
		{"max", op(Maximum, val(8), val(7), val(9)), 9},
		{"gt", op(Greater, val(15), val(5)), 1},
		{"gt equal", op(Greater, val(5), val(5)), 0},
		{"lt", op(Less, val(5), val(15)), 1},
		{"eq", op(Equal, op(Sum, val(1), val(3)), op(Product, val(2), val(2))), 1},
		{"eq false", op(Equal, val(5), val(15)), 0},
		{"empty sum", op(Sum), 0},
		{"empty product", op(Product), 1},
		{"past 32 bits", op(Product, val(1<<20), val(1<<20), val(1<<20)), 1 << 60},
		{"sum to max", op(Sum, val(math.MaxUint64-1), val(1)), math.MaxUint64},
	}
	for _, tt := range tests {
		got, err := Eval(tt.p)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Packet
		want error
	}{
		{"gt one operand", op(Greater, val(1)), ErrMalformedInput},
		{"eq three operands", op(Equal, val(1), val(1), val(1)), ErrMalformedInput},
		{"lt nested", op(Sum, val(1), op(Less)), ErrMalformedInput},
		{"empty min", op(Minimum), ErrMalformedInput},
		{"empty max", op(Maximum), ErrMalformedInput},
		{"sum overflow", op(Sum, val(math.MaxUint64), val(1)), ErrOverflow},
		{"product overflow", op(Product, val(1<<32), val(1<<32)), ErrOverflow},
	}
	for _, tt := range tests {
		if _, err := Eval(tt.p); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v; want %v", tt.name, err, tt.want)
		}
	}
}

func TestVersionSum(t *testing.T) {
	p := Packet{Version: 4, Type: Sum, Sub: []Packet{
		{Version: 1, Type: Product, Sub: []Packet{
			{Version: 5, Type: Maximum, Sub: []Packet{{Version: 6, Type: Literal}}},
		}},
		{Version: 7, Type: Literal},
	}}
	if got := VersionSum(p); got != 23 {
		t.Errorf("VersionSum = %d; want 23", got)
	}
	if got := VersionSum(Packet{Version: 3, Type: Literal}); got != 3 {
		t.Errorf("VersionSum(literal) = %d; want 3", got)
	}
}
