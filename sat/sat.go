// package sat is checked integer arithmetic. Every operation returns the exact
// result when it fits in the operand type and otherwise raises the flag and
// saturates to the nearest representable value.
//
// The exported functions use satnum.SignedRep. Each one is a thin wrapper
// around a helper that takes the representation as an argument, since under
// one's complement and sign-magnitude the most negative value is -Max rather
// than -Max-1 and results have to be pulled into that narrower range.
package sat

import "github.com/pfcm/satnum"

// limits returns the range of T under rep.
func limits[T satnum.Integer](rep satnum.Rep) (lo, hi T) {
	return satnum.MinFor[T](rep), satnum.Max[T]()
}

// Neg returns -a. For unsigned types only 0 can be negated.
func Neg[T satnum.Integer](a T, f *satnum.Flag) T {
	return neg(a, satnum.SignedRep, f)
}

func neg[T satnum.Integer](a T, rep satnum.Rep, f *satnum.Flag) T {
	if !satnum.IsSigned[T]() {
		if a != 0 {
			f.Raise()
		}
		return 0
	}
	// Every representation has a negative counterpart for each value in
	// [-Max, Max]. Below that is only two's complement Min, or values that do
	// not exist under rep at all.
	if _, hi := limits[T](rep); a < -hi {
		f.Raise()
		return hi
	}
	return -a
}

// Add returns a + b.
func Add[T satnum.Integer](a, b T, f *satnum.Flag) T {
	return add(a, b, satnum.SignedRep, f)
}

func add[T satnum.Integer](a, b T, rep satnum.Rep, f *satnum.Flag) T {
	lo, hi := limits[T](rep)
	switch {
	case b > 0 && a > hi-b:
		f.Raise()
		return hi
	case b < 0 && a < lo-b:
		f.Raise()
		return lo
	}
	return a + b
}

// Sub returns a - b.
func Sub[T satnum.Integer](a, b T, f *satnum.Flag) T {
	return sub(a, b, satnum.SignedRep, f)
}

func sub[T satnum.Integer](a, b T, rep satnum.Rep, f *satnum.Flag) T {
	lo, hi := limits[T](rep)
	switch {
	case b < 0 && a > hi+b:
		f.Raise()
		return hi
	case b > 0 && a < lo+b:
		f.Raise()
		return lo
	}
	return a - b
}

// Mul returns a * b.
func Mul[T satnum.Integer](a, b T, f *satnum.Flag) T {
	return mul(a, b, satnum.SignedRep, f)
}

func mul[T satnum.Integer](a, b T, rep satnum.Rep, f *satnum.Flag) T {
	if a == 0 || b == 0 {
		return 0
	}
	lo, hi := limits[T](rep)
	if !satnum.IsSigned[T]() {
		if a > hi/b {
			f.Raise()
			return hi
		}
		return a * b
	}
	// The quotients truncate toward zero, which is what makes each of these
	// exact for integers: |a| > q/|b| iff |a| > trunc(q/|b|).
	var over, under bool
	switch {
	case a > 0 && b > 0:
		over = a > hi/b
	case a > 0 && b < 0:
		under = b < lo/a
	case a < 0 && b > 0:
		under = a < lo/b
	default:
		over = a < hi/b
	}
	switch {
	case over:
		f.Raise()
		return hi
	case under:
		f.Raise()
		return lo
	}
	return a * b
}

// Div returns a / b truncated toward zero. Division by zero raises the flag
// and returns 0.
func Div[T satnum.Integer](a, b T, f *satnum.Flag) T {
	return div(a, b, satnum.SignedRep, f)
}

func div[T satnum.Integer](a, b T, rep satnum.Rep, f *satnum.Flag) T {
	if b == 0 {
		f.Raise()
		return 0
	}
	if satnum.IsSigned[T]() && b == -T(1) {
		// Two's complement Min / -1 is the only quotient that overflows.
		return neg(a, rep, f)
	}
	return a / b
}

// Mod returns the remainder of a / b, with the sign of a. A zero divisor
// raises the flag and returns 0.
func Mod[T satnum.Integer](a, b T, f *satnum.Flag) T {
	if b == 0 {
		f.Raise()
		return 0
	}
	// Go defines Min % -1 as 0 rather than trapping.
	return a % b
}

// Abs returns |a|, saturated to Max for the one value without a positive
// counterpart.
func Abs[T satnum.Integer](a T, f *satnum.Flag) T {
	return abs(a, satnum.SignedRep, f)
}

func abs[T satnum.Integer](a T, rep satnum.Rep, f *satnum.Flag) T {
	if a >= 0 {
		return a
	}
	return neg(a, rep, f)
}

// CopySign returns a value with the magnitude of mag and the sign of sign.
// For unsigned types it returns mag.
func CopySign[T satnum.Integer](mag, sign T, f *satnum.Flag) T {
	return copySign(mag, sign, satnum.SignedRep, f)
}

func copySign[T satnum.Integer](mag, sign T, rep satnum.Rep, f *satnum.Flag) T {
	if (mag < 0) == (sign < 0) {
		return mag
	}
	return neg(mag, rep, f)
}
