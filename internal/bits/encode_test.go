package bits

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestWriter(t *testing.T) {
	var w Writer
	w.WriteBits(6, 3)
	w.WriteBits(4, 3)
	w.WriteBits(0b10111, 5)
	w.WriteBits(0b11110, 5)
	w.WriteBits(0b00101, 5)
	if w.Len() != 21 {
		t.Errorf("Len = %d; want 21", w.Len())
	}
	if got := w.Hex(); got != "D2FE28" {
		t.Errorf("Hex = %s; want D2FE28", got)
	}
}

func TestEncodeMinimal(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		// Already minimal with sub-packet counts; only padding differs.
		{"D2FE28", "D2FE28"},
		{"EE00D40C823060", "EE00D40C82306"},
	} {
		p, err := Decode(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := Encode(p); got != tt.want {
			t.Errorf("Encode(Decode(%s)) = %s; want %s", tt.in, got, tt.want)
		}
	}
}

func TestEncodeLiteralZero(t *testing.T) {
	// 000 100 00000
	if got := Encode(Packet{Type: Literal}); got != "100" {
		t.Errorf("Encode(0) = %s; want 100", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ignore := cmpopts.IgnoreFields(Packet{}, "Length", "Bits")
	for _, s := range samples {
		p, err := Decode(s.hex)
		if err != nil {
			t.Fatalf("Decode(%s): %v", s.hex, err)
		}
		enc := Encode(p)
		q, err := Decode(enc)
		if err != nil {
			t.Errorf("Decode(Encode(%s)) = %s: %v", s.hex, enc, err)
			continue
		}
		if diff := cmp.Diff(p, q, ignore); diff != "" {
			t.Errorf("%s round trip mismatch (-orig +reencoded):\n%s", s.hex, diff)
		}
		if v, _ := Eval(q); v != s.value {
			t.Errorf("%s re-encoded evaluates to %d; want %d", s.hex, v, s.value)
		}
		if VersionSum(q) != s.versions {
			t.Errorf("%s re-encoded version sum %d; want %d", s.hex, VersionSum(q), s.versions)
		}
		checkSpans(t, enc, &q)
	}
}
