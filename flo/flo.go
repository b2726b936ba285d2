// package flo provides IEEE-754 classification, decomposition and checked
// arithmetic for binary32 and binary64. Everything is worked out from the bit
// patterns of the operands, so the results do not depend on how (or whether)
// the host FPU raises exceptions.
package flo

import (
	"math"

	"github.com/pfcm/satnum"
)

// layout describes how a binary interchange format splits its bits.
type layout struct {
	mant uint // number of explicit significand bits
	exp  uint // number of exponent bits
	bias int
}

var (
	binary32 = layout{mant: 23, exp: 8, bias: 127}
	binary64 = layout{mant: 52, exp: 11, bias: 1023}
)

func layoutOf[T satnum.Float]() layout {
	if satnum.Bits[T]() == 32 {
		return binary32
	}
	return binary64
}

func (l layout) signMask() uint64 { return 1 << (l.mant + l.exp) }
func (l layout) expMask() uint64  { return (1<<l.exp - 1) << l.mant }
func (l layout) mantMask() uint64 { return 1<<l.mant - 1 }

func toBits[T satnum.Float](x T) uint64 {
	if satnum.Bits[T]() == 32 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

func fromBits[T satnum.Float](b uint64) T {
	if satnum.Bits[T]() == 32 {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// split breaks x into its three raw fields, without applying the bias.
func split[T satnum.Float](x T) (sign bool, exponent, significand uint64) {
	l := layoutOf[T]()
	b := toBits(x)
	return b&l.signMask() != 0, (b & l.expMask()) >> l.mant, b & l.mantMask()
}

// IsNaN reports whether x is a NaN of any kind.
func IsNaN[T satnum.Float](x T) bool {
	l := layoutOf[T]()
	_, e, m := split(x)
	return e == l.expMask()>>l.mant && m != 0
}

// IsInf reports whether x is positive or negative infinity.
func IsInf[T satnum.Float](x T) bool {
	l := layoutOf[T]()
	_, e, m := split(x)
	return e == l.expMask()>>l.mant && m == 0
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T satnum.Float](x T) bool {
	l := layoutOf[T]()
	_, e, _ := split(x)
	return e != l.expMask()>>l.mant
}

// IsNormal reports whether x is a finite, non-zero value with a full
// precision significand. Zero is not normal.
func IsNormal[T satnum.Float](x T) bool {
	l := layoutOf[T]()
	_, e, _ := split(x)
	return e != 0 && e != l.expMask()>>l.mant
}

// IsDenormal reports whether x is a non-zero subnormal.
func IsDenormal[T satnum.Float](x T) bool {
	_, e, m := split(x)
	return e == 0 && m != 0
}

// SignBit reports whether the sign bit of x is set. It is true for -0 and for
// NaNs with the sign bit set.
func SignBit[T satnum.Float](x T) bool {
	s, _, _ := split(x)
	return s
}

// NaN returns the canonical quiet NaN of type T, with the sign bit clear.
func NaN[T satnum.Float]() T {
	l := layoutOf[T]()
	return fromBits[T](l.expMask() | 1<<(l.mant-1))
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[T satnum.Float](sign int) T {
	l := layoutOf[T]()
	b := l.expMask()
	if sign < 0 {
		b |= l.signMask()
	}
	return fromBits[T](b)
}

// MaxFinite returns the largest finite value of T.
func MaxFinite[T satnum.Float]() T {
	l := layoutOf[T]()
	return fromBits[T](l.expMask() - 1)
}

// SmallestNonzero returns the smallest positive subnormal of T.
func SmallestNonzero[T satnum.Float]() T {
	return fromBits[T](1)
}

// SmallestNormal returns the smallest positive normal value of T.
func SmallestNormal[T satnum.Float]() T {
	l := layoutOf[T]()
	return fromBits[T](1 << l.mant)
}

// Neg flips the sign bit of x. It never fails, and works on NaN and infinity.
func Neg[T satnum.Float](x T) T {
	l := layoutOf[T]()
	return fromBits[T](toBits(x) ^ l.signMask())
}

// Abs clears the sign bit of x.
func Abs[T satnum.Float](x T) T {
	l := layoutOf[T]()
	return fromBits[T](toBits(x) &^ l.signMask())
}

// CopySign returns a value with the magnitude of mag and the sign bit of sgn.
func CopySign[T satnum.Float](mag, sgn T) T {
	l := layoutOf[T]()
	return fromBits[T](toBits(mag)&^l.signMask() | toBits(sgn)&l.signMask())
}

// Exponent returns the unbiased exponent of x. Subnormals and zero report the
// minimum normal exponent, matching a significand in [0, 1). If x is NaN or
// infinite the flag is raised and 0 returned.
func Exponent[T satnum.Float](x T, f *satnum.Flag) int {
	if !IsFinite(x) {
		f.Raise()
		return 0
	}
	l := layoutOf[T]()
	_, e, _ := split(x)
	if e == 0 {
		return 1 - l.bias
	}
	return int(e) - l.bias
}

// Mantissa returns the magnitude of the significand of x, in [1, 2) for normal
// values and [0, 1) for subnormals and zero, so that
// |x| == Mantissa(x) * 2^Exponent(x). If x is NaN or infinite the flag is
// raised and NaN returned.
func Mantissa[T satnum.Float](x T, f *satnum.Flag) T {
	if !IsFinite(x) {
		f.Raise()
		return NaN[T]()
	}
	l := layoutOf[T]()
	_, e, m := split(x)
	if e == 0 {
		return T(math.Ldexp(float64(m), -int(l.mant)))
	}
	return fromBits[T](m | uint64(l.bias)<<l.mant)
}

// NextAway returns the representable value adjacent to x and further from
// zero. The largest finite values step to infinity. Infinities and NaNs are
// returned unchanged, and zero steps to the smallest subnormal of the same
// sign.
func NextAway[T satnum.Float](x T) T {
	if !IsFinite(x) {
		return x
	}
	return fromBits[T](toBits(x) + 1)
}

// NextToward returns the representable value adjacent to x and nearer to
// zero. Zero and NaN are returned unchanged; infinities step to the largest
// finite value.
func NextToward[T satnum.Float](x T) T {
	if IsNaN(x) || x == 0 {
		return x
	}
	return fromBits[T](toBits(x) - 1)
}

// ULP returns the spacing of the floating point grid at x: 2^(e-p) for normal
// x with exponent e and p significand bits, and the smallest subnormal for
// subnormals and zero. Infinities give +Inf. NaN raises the flag and gives NaN.
func ULP[T satnum.Float](x T, f *satnum.Flag) T {
	if IsNaN(x) {
		f.Raise()
		return NaN[T]()
	}
	if IsInf(x) {
		return Inf[T](1)
	}
	l := layoutOf[T]()
	_, e, _ := split(x)
	if e == 0 {
		return SmallestNonzero[T]()
	}
	if e > uint64(l.mant) {
		return fromBits[T]((e - uint64(l.mant)) << l.mant)
	}
	// The spacing itself is subnormal.
	return fromBits[T](1 << (e - 1))
}

// MaxULP returns the distance from x to the next representable value further
// from zero. It is +Inf for infinities and for the largest finite values, and
// NaN with the flag raised for NaN.
func MaxULP[T satnum.Float](x T, f *satnum.Flag) T {
	if IsNaN(x) {
		f.Raise()
		return NaN[T]()
	}
	if IsInf(x) {
		return Inf[T](1)
	}
	return Abs(NextAway(x) - x)
}

// MinULP returns the distance from x to the next representable value nearer
// to zero. At zero there is nothing nearer, so it reports the smallest
// subnormal. Infinities give +Inf, NaN raises the flag and gives NaN.
func MinULP[T satnum.Float](x T, f *satnum.Flag) T {
	if IsNaN(x) {
		f.Raise()
		return NaN[T]()
	}
	if IsInf(x) {
		return Inf[T](1)
	}
	if x == 0 {
		return SmallestNonzero[T]()
	}
	return Abs(x - NextToward(x))
}
