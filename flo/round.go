package flo

import (
	"math"

	"github.com/pfcm/satnum"
)

// rem returns the non-negative remainder of v modulo m, in [0, m).
func rem[T satnum.Float](v, m T) T {
	r := T(math.Mod(float64(v), float64(m)))
	if r < 0 {
		r += m
	}
	if r == m {
		// A tiny negative remainder rounded up to m: v is a multiple already.
		r = 0
	}
	return r
}

// roundable checks the operands of the rounding functions. It returns false
// with the flag raised and the fallback result when they cannot be rounded.
func roundable[T satnum.Float](v, m T, f *satnum.Flag) (T, bool) {
	switch {
	case IsNaN(v) || IsNaN(m) || m <= 0 || IsInf(m):
		f.Raise()
		return NaN[T](), false
	case IsInf(v):
		f.Raise()
		return v, false
	}
	return v, true
}

// Floor rounds v down to a multiple of m, which must be positive and finite.
func Floor[T satnum.Float](v, m T, f *satnum.Flag) T {
	if r, ok := roundable(v, m, f); !ok {
		return r
	}
	r := rem(v, m)
	lo := v - r
	if IsInf(lo) {
		// Only possible when m is huge and v is near -MaxFinite.
		f.Raise()
		return v + (m - r)
	}
	return lo
}

// Ceil rounds v up to a multiple of m, which must be positive and finite.
func Ceil[T satnum.Float](v, m T, f *satnum.Flag) T {
	if r, ok := roundable(v, m, f); !ok {
		return r
	}
	r := rem(v, m)
	if r == 0 {
		return v
	}
	lo := v - r
	hi := v + (m - r)
	if IsInf(hi) {
		f.Raise()
		return lo
	}
	return hi
}

// Round rounds v to the nearest multiple of m. Ties go to the greater
// multiple, unless that one overflows.
func Round[T satnum.Float](v, m T, f *satnum.Flag) T {
	if r, ok := roundable(v, m, f); !ok {
		return r
	}
	r := rem(v, m)
	if r == 0 {
		return v
	}
	up := m - r
	lo := v - r
	hi := v + up
	switch {
	case IsInf(lo):
		f.Raise()
		return hi
	case IsInf(hi):
		if r != up {
			f.Raise()
		}
		return lo
	case r < up:
		return lo
	}
	return hi
}

// Sum adds up s from left to right with Add, so every step is checked. An
// empty slice raises the flag and returns NaN.
func Sum[T satnum.Float](s []T, f *satnum.Flag) T {
	if len(s) == 0 {
		f.Raise()
		return NaN[T]()
	}
	acc := s[0]
	for _, v := range s[1:] {
		acc = Add(acc, v, f)
	}
	return acc
}

// Product multiplies s from left to right with Mul. An empty slice raises the
// flag and returns NaN.
func Product[T satnum.Float](s []T, f *satnum.Flag) T {
	if len(s) == 0 {
		f.Raise()
		return NaN[T]()
	}
	acc := s[0]
	for _, v := range s[1:] {
		acc = Mul(acc, v, f)
	}
	return acc
}

// Mean returns the arithmetic mean of s as a float64, for any numeric element
// type. Integers wider than 53 bits are rounded on the way in.
func Mean[T satnum.Number](s []T, f *satnum.Flag) float64 {
	if len(s) == 0 {
		f.Raise()
		return math.NaN()
	}
	acc := 0.0
	for _, v := range s {
		acc = Add(acc, float64(v), f)
	}
	return Div(acc, float64(len(s)), f)
}

// StdDev returns the standard deviation of s. With population set it divides
// by len(s), otherwise by len(s)-1, which needs at least two values.
func StdDev[T satnum.Number](s []T, population bool, f *satnum.Flag) float64 {
	n := len(s)
	if !population {
		n--
	}
	if n < 1 {
		f.Raise()
		return math.NaN()
	}
	mean := Mean(s, f)
	acc := 0.0
	for _, v := range s {
		d := Sub(float64(v), mean, f)
		acc = Add(acc, Mul(d, d, f), f)
	}
	return math.Sqrt(Div(acc, float64(n), f))
}
