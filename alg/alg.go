// package alg has integer powers, roots and logarithms, and the gcd and lcm
// of a set of integers, all checked like package sat.
package alg

import (
	"github.com/pfcm/satnum"
	"github.com/pfcm/satnum/sat"
)

// Pow returns base raised to exp. Anything to the power 0 is 1, including 0.
// A negative exp gives 0, and raises the flag if base is 0. On overflow the
// result saturates towards the sign of the true result.
func Pow[T satnum.Integer](base T, exp int, f *satnum.Flag) T {
	switch {
	case exp == 0:
		return 1
	case exp < 0:
		if base == 0 {
			f.Raise()
		}
		return 0
	case base == 0 || base == 1:
		return base
	}
	negative := base < 0 && exp%2 == 1
	if satnum.IsSigned[T]() && base == -T(1) {
		if negative {
			return base
		}
		return 1
	}
	// |base| >= 2 from here, so this overflows within Bits iterations.
	r := T(1)
	for i := 0; i < exp; i++ {
		var over satnum.Flag
		r = sat.Mul(r, base, &over)
		if over {
			f.Raise()
			if negative {
				return satnum.Min[T]()
			}
			return satnum.Max[T]()
		}
	}
	return r
}

// Log returns the integer part of the base logarithm of value. value must be
// positive and base greater than 1, otherwise the flag is raised and 0
// returned.
func Log[T satnum.Integer](value, base T, f *satnum.Flag) T {
	if value <= 0 || base <= 1 {
		f.Raise()
		return 0
	}
	var n T
	// Comparing against value/base keeps p from ever passing value.
	for p := T(1); p <= value/base; p *= base {
		n++
	}
	return n
}

// GCD returns the greatest common divisor of the non-zero values in s, or 0
// if they are all zero. An empty slice or a negative value raises the flag and
// returns 0.
func GCD[T satnum.Integer](s []T, f *satnum.Flag) T {
	if !natural(s, f) {
		return 0
	}
	var g T
	for _, v := range s {
		if v != 0 {
			g = gcd(g, v)
		}
	}
	return g
}

// LCM returns the least common multiple of the values in s, or 0 if any of
// them is 0. An empty slice or a negative value raises the flag and returns 0.
// If the multiple does not fit, the flag is raised and Max returned.
func LCM[T satnum.Integer](s []T, f *satnum.Flag) T {
	if !natural(s, f) {
		return 0
	}
	for _, v := range s {
		if v == 0 {
			return 0
		}
	}
	l := s[0]
	for _, v := range s[1:] {
		var over satnum.Flag
		l = sat.Mul(l/gcd(l, v), v, &over)
		if over {
			f.Raise()
			return satnum.Max[T]()
		}
	}
	return l
}

// natural checks that s is a non-empty set of non-negative values.
func natural[T satnum.Integer](s []T, f *satnum.Flag) bool {
	if len(s) == 0 {
		f.Raise()
		return false
	}
	for _, v := range s {
		if v < 0 {
			f.Raise()
			return false
		}
	}
	return true
}

// gcd is Euclid's algorithm on non-negative values, with gcd(0, b) = b.
func gcd[T satnum.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
