package sat

import "github.com/pfcm/satnum"

// bracket returns the multiples of m on either side of v: lo <= v < lo+m.
// r is v - lo. okLo and okHi report whether lo and lo+m fit in T.
func bracket[T satnum.Integer](v, m T) (lo, hi, r T, okLo, okHi bool) {
	r = v % m
	if r < 0 {
		r += m
	}
	var f satnum.Flag
	lo = Sub(v, r, &f)
	okLo = !f.Raised()
	f = false
	hi = Add(v, m-r, &f)
	okHi = !f.Raised()
	return lo, hi, r, okLo, okHi
}

// Floor rounds v down to a multiple of m. m must be positive, otherwise the
// flag is raised and 0 returned. If the multiple below v does not fit, the
// flag is raised and the one above is returned.
func Floor[T satnum.Integer](v, m T, f *satnum.Flag) T {
	if m <= 0 {
		f.Raise()
		return 0
	}
	lo, hi, _, okLo, _ := bracket(v, m)
	if !okLo {
		f.Raise()
		return hi
	}
	return lo
}

// Ceil rounds v up to a multiple of m, saturating downwards like Floor does
// upwards.
func Ceil[T satnum.Integer](v, m T, f *satnum.Flag) T {
	if m <= 0 {
		f.Raise()
		return 0
	}
	lo, hi, r, _, okHi := bracket(v, m)
	if r == 0 {
		return v
	}
	if !okHi {
		f.Raise()
		return lo
	}
	return hi
}

// Round rounds v to the nearest multiple of m. Ties go to the greater
// multiple, or to the smaller one without raising the flag if the greater
// does not fit.
func Round[T satnum.Integer](v, m T, f *satnum.Flag) T {
	if m <= 0 {
		f.Raise()
		return 0
	}
	lo, hi, r, okLo, okHi := bracket(v, m)
	if r == 0 {
		return v
	}
	up := m - r
	switch {
	case r < up:
		if !okLo {
			f.Raise()
			return hi
		}
		return lo
	case !okHi:
		if r != up {
			f.Raise()
		}
		return lo
	}
	return hi
}

// Sum adds up s from left to right, saturating at each step. An empty slice
// raises the flag and returns 0.
func Sum[T satnum.Integer](s []T, f *satnum.Flag) T {
	return fold(s, Add[T], f)
}

// Product multiplies s from left to right, saturating at each step. An empty
// slice raises the flag and returns 0.
func Product[T satnum.Integer](s []T, f *satnum.Flag) T {
	return fold(s, Mul[T], f)
}

func fold[T satnum.Integer](s []T, op func(a, b T, f *satnum.Flag) T, f *satnum.Flag) T {
	if len(s) == 0 {
		f.Raise()
		return 0
	}
	acc := s[0]
	for _, v := range s[1:] {
		acc = op(acc, v, f)
	}
	return acc
}
