// package cast converts between numeric types with saturation instead of the
// wrap-around or implementation defined results of a plain Go conversion.
package cast

import (
	"math"

	"github.com/pfcm/satnum"
	"github.com/pfcm/satnum/flo"
)

// To converts s to D. Values that fit are returned exactly, floats going to an
// integer type are truncated toward zero. Out of range values raise the flag
// and saturate to the limits of D: ±Inf for float32, Min or Max for integers.
// NaN raises the flag and becomes 0 in an integer type. Integers going to a
// float type are rounded to nearest and never fail.
func To[D, S satnum.Number](s S, f *satnum.Flag) D {
	switch {
	case satnum.IsFloat[D]():
		return toFloat[D](s, f)
	case satnum.IsFloat[S]():
		return fromFloat[D](float64(s), f)
	case satnum.IsSigned[S]():
		return fromInt[D](int64(s), f)
	}
	return fromUint[D](uint64(s), f)
}

// f32Overflow is the smallest float64 magnitude that rounds to Inf as a
// float32: halfway between MaxFloat32 and 2^128, which rounds up to the even
// neighbour.
const f32Overflow = math.MaxFloat32 + 0x1p103

func toFloat[D, S satnum.Number](s S, f *satnum.Flag) D {
	if !satnum.IsFloat[S]() || satnum.Bits[D]() >= satnum.Bits[S]() {
		return D(s)
	}
	// float64 to float32. Go leaves the result of an out of range conversion
	// up to the implementation, so overflow is handled here.
	x := float64(s)
	if flo.IsFinite(x) && math.Abs(x) >= f32Overflow {
		f.Raise()
		return D(math.Copysign(math.Inf(1), x))
	}
	return D(s)
}

func fromFloat[D satnum.Number](x float64, f *satnum.Flag) D {
	if flo.IsNaN(x) {
		f.Raise()
		return 0
	}
	w := satnum.Bits[D]()
	lo, hi := 0.0, math.Ldexp(1, w)
	if satnum.IsSigned[D]() {
		lo, hi = -math.Ldexp(1, w-1), math.Ldexp(1, w-1)
	}
	t := math.Trunc(x)
	switch {
	case t < lo:
		f.Raise()
		return minOf[D]()
	case t >= hi:
		f.Raise()
		return maxOf[D]()
	case satnum.IsSigned[D]():
		return D(int64(t))
	}
	return D(uint64(t))
}

func fromInt[D satnum.Number](x int64, f *satnum.Flag) D {
	if !satnum.IsSigned[D]() {
		if x < 0 {
			f.Raise()
			return 0
		}
		return fromUint[D](uint64(x), f)
	}
	if lo := int64(minOf[D]()); x < lo {
		f.Raise()
		return D(lo)
	}
	if hi := int64(maxOf[D]()); x > hi {
		f.Raise()
		return D(hi)
	}
	return D(x)
}

func fromUint[D satnum.Number](x uint64, f *satnum.Flag) D {
	if hi := uint64(maxOf[D]()); x > hi {
		f.Raise()
		return D(hi)
	}
	return D(x)
}

// maxOf and minOf are satnum.Max and satnum.Min for an integer D that the
// type checker only knows as a Number.
func maxOf[D satnum.Number]() D {
	w := satnum.Bits[D]()
	if satnum.IsSigned[D]() {
		return D(int64(math.MaxInt64 >> (64 - w)))
	}
	return D(uint64(math.MaxUint64) >> (64 - w))
}

func minOf[D satnum.Number]() D {
	if !satnum.IsSigned[D]() {
		return 0
	}
	return D(int64(math.MinInt64) >> (64 - satnum.Bits[D]()))
}
