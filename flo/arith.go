package flo

import (
	"math"

	"github.com/pfcm/satnum"
)

// The checked operations below raise the flag on any of the IEEE-754
// exceptional conditions except plain rounding:
//
//   - invalid: a NaN operand, Inf-Inf, 0*Inf, 0/0, Inf/Inf. Result NaN.
//   - divide by zero: finite non-zero / 0. Result ±Inf.
//   - overflow: finite operands with an infinite result. Result ±Inf.
//   - underflow: non-zero operands whose product or quotient rounds to zero.
//     Result the smallest subnormal with the sign of the true result.
//   - absorption: in a sum, one operand is smaller than half the ULP of the
//     other and vanishes. Result the larger operand stepped one ULP towards
//     the true sum.

// Add returns a + b.
func Add[T satnum.Float](a, b T, f *satnum.Flag) T {
	switch {
	case IsNaN(a) || IsNaN(b):
		f.Raise()
		return NaN[T]()
	case IsInf(a) && IsInf(b) && SignBit(a) != SignBit(b):
		f.Raise()
		return NaN[T]()
	case IsInf(a) || IsInf(b):
		return a + b
	}
	if small, large, ok := absorbed(a, b); ok {
		f.Raise()
		if SignBit(small) == SignBit(large) {
			if n := NextAway(large); IsFinite(n) {
				return n
			}
			return large
		}
		return NextToward(large)
	}
	r := a + b
	if IsInf(r) {
		f.Raise()
	}
	return r
}

// absorbed reports whether the smaller of two finite non-zero values would
// disappear when added to the larger one.
func absorbed[T satnum.Float](a, b T) (small, large T, ok bool) {
	if a == 0 || b == 0 {
		return a, b, false
	}
	small, large = a, b
	if Abs(a) > Abs(b) {
		small, large = b, a
	}
	return small, large, Abs(small) < ULP(large, nil)/2
}

// Sub returns a - b.
func Sub[T satnum.Float](a, b T, f *satnum.Flag) T {
	return Add(a, Neg(b), f)
}

// Mul returns a * b.
func Mul[T satnum.Float](a, b T, f *satnum.Flag) T {
	switch {
	case IsNaN(a) || IsNaN(b):
		f.Raise()
		return NaN[T]()
	case (IsInf(a) && b == 0) || (IsInf(b) && a == 0):
		f.Raise()
		return NaN[T]()
	case IsInf(a) || IsInf(b):
		return a * b
	}
	r := a * b
	switch {
	case IsInf(r):
		f.Raise()
	case r == 0 && a != 0 && b != 0:
		f.Raise()
		return signed(SmallestNonzero[T](), a, b)
	}
	return r
}

// Div returns num / den.
func Div[T satnum.Float](num, den T, f *satnum.Flag) T {
	switch {
	case IsNaN(num) || IsNaN(den):
		f.Raise()
		return NaN[T]()
	case IsInf(num) && IsInf(den):
		f.Raise()
		return NaN[T]()
	case num == 0 && den == 0:
		f.Raise()
		return NaN[T]()
	case den == 0:
		if IsFinite(num) {
			f.Raise()
		}
		return signed(Inf[T](1), num, den)
	case IsInf(num) || IsInf(den):
		return num / den
	}
	r := num / den
	switch {
	case IsInf(r):
		f.Raise()
	case r == 0 && num != 0:
		f.Raise()
		return signed(SmallestNonzero[T](), num, den)
	}
	return r
}

// signed gives mag the sign of a product or quotient of a and b.
func signed[T satnum.Float](mag, a, b T) T {
	if SignBit(a) != SignBit(b) {
		return Neg(Abs(mag))
	}
	return Abs(mag)
}

// Mod returns the remainder of num divided by a positive den. The result has
// the sign of num and a magnitude in [0, den). A divisor that is not positive,
// a dividend that is not finite or any NaN raises the flag and returns NaN.
func Mod[T satnum.Float](num, den T, f *satnum.Flag) T {
	if IsNaN(num) || IsNaN(den) || !IsFinite(num) || den <= 0 {
		f.Raise()
		return NaN[T]()
	}
	if IsInf(den) {
		return num
	}
	// The remainder is exact and representable in T, so going through float64
	// loses nothing.
	return T(math.Mod(float64(num), float64(den)))
}
