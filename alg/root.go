package alg

import "github.com/pfcm/satnum"

// RootRem is the result of Root: Root raised to the index, plus Rem, is the
// radicand.
type RootRem[T satnum.Integer] struct {
	Root, Rem T
}

// Root returns the integer index-th root of radicand, rounded toward zero, and
// the remainder, which has the sign of the radicand.
//
// It fails, raising the flag and returning the zero RootRem, for an even root
// of a negative number, the zeroth root of anything but 0, and a negative
// index unless the radicand is 1, or -1 with an odd index.
func Root[T satnum.Integer](radicand T, index int, f *satnum.Flag) RootRem[T] {
	switch {
	case index == 0:
		if radicand != 0 {
			f.Raise()
		}
		return RootRem[T]{}
	case index < 0:
		// x^-n = r only has integer solutions for r = 1 and r = -1.
		switch {
		case radicand == 1:
			return RootRem[T]{Root: 1}
		case radicand < 0 && radicand == -T(1) && index%2 != 0:
			return RootRem[T]{Root: radicand}
		}
		f.Raise()
		return RootRem[T]{}
	case index == 1:
		return RootRem[T]{Root: radicand}
	case radicand < 0 && index%2 == 0:
		f.Raise()
		return RootRem[T]{}
	}

	// Work on the magnitude in a uint64. Negating through int64 wraps Min to
	// itself, whose uint64 conversion is still the right magnitude.
	mag := uint64(radicand)
	if radicand < 0 {
		mag = uint64(-int64(radicand))
	}
	r := floorRoot(mag, index)
	rem := mag - ipow(r, index)
	if radicand < 0 {
		return RootRem[T]{Root: -T(r), Rem: -T(rem)}
	}
	return RootRem[T]{Root: T(r), Rem: T(rem)}
}

// floorRoot returns the largest r with r^n <= x, for n >= 2. This finds the
// same root as counting up from zero until the next power is too big, in
// O(log x) steps instead of O(root).
func floorRoot(x uint64, n int) uint64 {
	lo, hi := uint64(0), x
	for lo < hi {
		// Rounds up so the loop always moves; hi-lo+1 could overflow.
		mid := lo + (hi-lo)/2 + 1
		if powAtMost(mid, n, x) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// powAtMost reports whether b^n <= limit without overflowing.
func powAtMost(b uint64, n int, limit uint64) bool {
	if b <= 1 {
		return b <= limit
	}
	p := uint64(1)
	for i := 0; i < n; i++ {
		if p > limit/b {
			return false
		}
		p *= b
	}
	return true
}

// ipow is b^n for a result known to fit.
func ipow(b uint64, n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= b
	}
	return p
}
