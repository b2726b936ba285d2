// package order compares numbers of any two numeric types by their
// mathematical value, and builds min, max and clamp on top of that comparison.
//
// Integers are compared exactly, whatever their signedness: -1 is less than
// every unsigned value. Once a float is involved both operands are converted
// to a float type that holds them without loss and two finite values are
// considered equal when they are within ULP(a)+ULP(b) of each other. NaN is
// the only error.
package order

import (
	"cmp"

	"github.com/pfcm/satnum"
	"github.com/pfcm/satnum/flo"
)

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// If either operand is NaN it raises the flag and returns 0.
func Compare[A, B satnum.Number](a A, b B, f *satnum.Flag) int {
	c, ok := compare(a, b)
	if !ok {
		f.Raise()
	}
	return c
}

// compare is Compare without the flag; ok is false if an operand is NaN.
func compare[A, B satnum.Number](a A, b B) (c int, ok bool) {
	if !satnum.IsFloat[A]() && !satnum.IsFloat[B]() {
		return compareInts(a, b), true
	}
	if fits32[A]() && fits32[B]() {
		return compareFloats(float32(a), float32(b))
	}
	return compareFloats(float64(a), float64(b))
}

// fits32 reports whether every value of T is exactly representable as a
// float32, which has 24 bits of precision.
func fits32[T satnum.Number]() bool {
	if satnum.IsFloat[T]() {
		return satnum.Bits[T]() == 32
	}
	return satnum.Bits[T]() <= 16
}

func compareInts[A, B satnum.Number](a A, b B) int {
	aneg := satnum.IsSigned[A]() && a < 0
	bneg := satnum.IsSigned[B]() && b < 0
	switch {
	case aneg && !bneg:
		return -1
	case bneg && !aneg:
		return 1
	case aneg && bneg:
		return cmp.Compare(int64(a), int64(b))
	}
	// Both non-negative, so both fit in a uint64.
	return cmp.Compare(uint64(a), uint64(b))
}

func compareFloats[T satnum.Float](x, y T) (int, bool) {
	switch {
	case flo.IsNaN(x) || flo.IsNaN(y):
		return 0, false
	case flo.IsInf(x) || flo.IsInf(y):
		return cmp.Compare(x, y), true
	case x == 0 && y == 0:
		// Covers -0 == +0.
		return 0, true
	case x != 0 && y != 0 && flo.SignBit(x) != flo.SignBit(y):
		if flo.SignBit(x) {
			return -1, true
		}
		return 1, true
	}
	// Same sign or one of them zero, so the difference is finite.
	d := x - y
	if flo.Abs(d) <= flo.ULP(x, nil)+flo.ULP(y, nil) {
		return 0, true
	}
	if d < 0 {
		return -1, true
	}
	return 1, true
}

// Eq reports whether a and b are equal.
func Eq[A, B satnum.Number](a A, b B, f *satnum.Flag) bool {
	return holds(a, b, f, func(c int) bool { return c == 0 })
}

// Ne reports whether a and b differ. Like every predicate here it is false
// when either operand is NaN.
func Ne[A, B satnum.Number](a A, b B, f *satnum.Flag) bool {
	return holds(a, b, f, func(c int) bool { return c != 0 })
}

// Lt reports whether a < b.
func Lt[A, B satnum.Number](a A, b B, f *satnum.Flag) bool {
	return holds(a, b, f, func(c int) bool { return c < 0 })
}

// Gt reports whether a > b.
func Gt[A, B satnum.Number](a A, b B, f *satnum.Flag) bool {
	return holds(a, b, f, func(c int) bool { return c > 0 })
}

// Le reports whether a <= b.
func Le[A, B satnum.Number](a A, b B, f *satnum.Flag) bool {
	return holds(a, b, f, func(c int) bool { return c <= 0 })
}

// Ge reports whether a >= b.
func Ge[A, B satnum.Number](a A, b B, f *satnum.Flag) bool {
	return holds(a, b, f, func(c int) bool { return c >= 0 })
}

func holds[A, B satnum.Number](a A, b B, f *satnum.Flag, want func(int) bool) bool {
	c, ok := compare(a, b)
	if !ok {
		f.Raise()
		return false
	}
	return want(c)
}
