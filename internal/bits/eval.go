package bits

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Eval computes the value of the expression rooted at p. Sums and products
// that do not fit in a uint64 fail with ErrOverflow rather than wrapping.
func Eval(p Packet) (uint64, error) {
	type frame struct {
		p    *Packet
		vals []uint64
	}
	stack := []frame{{p: &p}}
	for {
		top := &stack[len(stack)-1]
		var v uint64
		if top.p.IsLiteral() {
			v = top.p.Value
		} else if i := len(top.vals); i < len(top.p.Sub) {
			stack = append(stack, frame{p: &top.p.Sub[i], vals: make([]uint64, 0, len(top.p.Sub[i].Sub))})
			continue
		} else {
			var err error
			if v, err = apply(top.p.Type, top.vals); err != nil {
				return 0, err
			}
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return v, nil
		}
		parent := &stack[len(stack)-1]
		parent.vals = append(parent.vals, v)
	}
}

func apply(t Type, vals []uint64) (uint64, error) {
	if n := t.arity(); n != 0 && len(vals) != n {
		return 0, errors.Wrapf(ErrMalformedInput, "%s needs %d operands, got %d", t, n, len(vals))
	}
	switch t {
	case Sum:
		v, ok := checkedSum(vals)
		if !ok {
			return 0, errors.Wrap(ErrOverflow, "sum")
		}
		return v, nil
	case Product:
		v, ok := checkedProduct(vals)
		if !ok {
			return 0, errors.Wrap(ErrOverflow, "product")
		}
		return v, nil
	case Minimum, Maximum:
		if len(vals) == 0 {
			return 0, errors.Wrapf(ErrMalformedInput, "%s of no operands", t)
		}
		if t == Minimum {
			return slices.Min(vals), nil
		}
		return slices.Max(vals), nil
	case Greater:
		return b2u(vals[0] > vals[1]), nil
	case Less:
		return b2u(vals[0] < vals[1]), nil
	case Equal:
		return b2u(vals[0] == vals[1]), nil
	}
	return 0, errors.Wrapf(ErrMalformedInput, "operator type %d", uint8(t))
}

func checkedSum[T constraints.Unsigned](vals []T) (T, bool) {
	var s T
	for _, v := range vals {
		if s+v < s {
			return 0, false
		}
		s += v
	}
	return s, true
}

func checkedProduct[T constraints.Unsigned](vals []T) (T, bool) {
	p := T(1)
	for _, v := range vals {
		if v != 0 && p > ^T(0)/v {
			return 0, false
		}
		p *= v
	}
	return p, true
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// VersionSum adds up the version field of every packet in the tree,
// root included.
func VersionSum(p Packet) int {
	sum := 0
	stack := []*Packet{&p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sum += int(q.Version)
		for i := range q.Sub {
			stack = append(stack, &q.Sub[i])
		}
	}
	return sum
}
