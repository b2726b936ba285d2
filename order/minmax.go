package order

import "github.com/pfcm/satnum"

// Min returns the smallest value in s. NaNs raise the flag and are skipped;
// if nothing but NaN is left the result is NaN. An empty slice raises the flag
// and returns 0, or NaN for floats.
func Min[T satnum.Number](s []T, f *satnum.Flag) T {
	return extreme(s, -1, f)
}

// Max returns the largest value in s, with the same rules as Min.
func Max[T satnum.Number](s []T, f *satnum.Flag) T {
	return extreme(s, 1, f)
}

// MinPair returns the smaller of a and b. If one of them is NaN the flag is
// raised and the other is returned.
func MinPair[T satnum.Number](a, b T, f *satnum.Flag) T {
	return extreme([]T{a, b}, -1, f)
}

// MaxPair returns the larger of a and b.
func MaxPair[T satnum.Number](a, b T, f *satnum.Flag) T {
	return extreme([]T{a, b}, 1, f)
}

// extreme scans s for the value that compares as want (-1 or 1) against
// everything else. Values that compare equal keep the earliest.
func extreme[T satnum.Number](s []T, want int, f *satnum.Flag) T {
	if len(s) == 0 {
		f.Raise()
		return satnum.Zero[T]()
	}
	var (
		best  T
		found bool
	)
	for _, v := range s {
		switch {
		case isNaN(v):
			f.Raise()
		case !found:
			best, found = v, true
		default:
			if c, _ := compare(v, best); c == want {
				best = v
			}
		}
	}
	if !found {
		return satnum.Zero[T]()
	}
	return best
}

// Clamp pulls x into the closed range between the two bounds, which may be
// given in either order. A NaN anywhere raises the flag and returns NaN.
func Clamp[T satnum.Number](x, a, b T, f *satnum.Flag) T {
	lo, hi, ok := bounds(a, b)
	if !ok || isNaN(x) {
		f.Raise()
		return satnum.Zero[T]()
	}
	if c, _ := compare(x, lo); c < 0 {
		return lo
	}
	if c, _ := compare(x, hi); c > 0 {
		return hi
	}
	return x
}

// InRange reports whether x lies in the closed range between the two bounds,
// which may be given in either order. A NaN anywhere raises the flag and
// returns false.
func InRange[T satnum.Number](x, a, b T, f *satnum.Flag) bool {
	lo, hi, ok := bounds(a, b)
	if !ok || isNaN(x) {
		f.Raise()
		return false
	}
	return Ge(x, lo, f) && Le(x, hi, f)
}

// bounds orders a pair of bounds, ok is false if either is NaN.
func bounds[T satnum.Number](a, b T) (lo, hi T, ok bool) {
	c, ok := compare(a, b)
	if !ok {
		return a, b, false
	}
	if c > 0 {
		return b, a, true
	}
	return a, b, true
}

// isNaN is false for every integer.
func isNaN[T satnum.Number](x T) bool {
	return x != x
}
