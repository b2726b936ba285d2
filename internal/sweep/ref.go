package sweep

import (
	"math/big"

	"github.com/pfcm/satnum"
)

// The reference implementations compute the exact mathematical result with
// math/big and only then saturate it, so they share nothing with the kernel's
// headroom checks.

func toBig[T satnum.Integer](v T) *big.Int {
	if satnum.IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func fromBig[T satnum.Integer](x *big.Int) T {
	if satnum.IsSigned[T]() {
		return T(x.Int64())
	}
	return T(x.Uint64())
}

// saturate clamps x into T, reporting whether it had to.
func saturate[T satnum.Integer](x *big.Int) (T, bool) {
	switch {
	case x.Cmp(toBig(satnum.Min[T]())) < 0:
		return satnum.Min[T](), true
	case x.Cmp(toBig(satnum.Max[T]())) > 0:
		return satnum.Max[T](), true
	}
	return fromBig[T](x), false
}

func fits[T satnum.Integer](x *big.Int) bool {
	_, over := saturate[T](x)
	return !over
}

// reference returns the expected result and flag of a binary or unary
// operation. Shift counts and exponents are taken from b.
func reference[T satnum.Integer](op string, a, b T) (T, bool) {
	x, y := toBig(a), toBig(b)
	switch op {
	case "add":
		return saturate[T](new(big.Int).Add(x, y))
	case "sub":
		return saturate[T](new(big.Int).Sub(x, y))
	case "mul":
		return saturate[T](new(big.Int).Mul(x, y))
	case "div":
		if b == 0 {
			return 0, true
		}
		return saturate[T](new(big.Int).Quo(x, y))
	case "mod":
		if b == 0 {
			return 0, true
		}
		return saturate[T](new(big.Int).Rem(x, y))
	case "neg":
		return saturate[T](new(big.Int).Neg(x))
	case "lsh":
		return refLsh[T](x, int(b))
	case "rsh":
		return refRsh[T](x, int(b))
	case "pow":
		return refPow[T](x, int(b))
	}
	panic("sweep: no reference for " + op)
}

// refLsh multiplies by the largest power of two up to 2^n that keeps the
// value in range.
func refLsh[T satnum.Integer](x *big.Int, n int) (T, bool) {
	if n < 0 || n >= satnum.Bits[T]() {
		return 0, true
	}
	for k := n; ; k-- {
		if v := new(big.Int).Lsh(x, uint(k)); fits[T](v) {
			return fromBig[T](v), k != n
		}
	}
}

// refRsh divides by the largest power of two up to 2^n that divides x.
func refRsh[T satnum.Integer](x *big.Int, n int) (T, bool) {
	if n < 0 || n >= satnum.Bits[T]() {
		return 0, true
	}
	for k := n; ; k-- {
		d := new(big.Int).Lsh(big.NewInt(1), uint(k))
		q, r := new(big.Int).QuoRem(x, d, new(big.Int))
		if r.Sign() == 0 {
			return fromBig[T](q), k != n
		}
	}
}

func refPow[T satnum.Integer](x *big.Int, e int) (T, bool) {
	switch {
	case e == 0:
		return 1, false
	case e < 0:
		return 0, x.Sign() == 0
	case x.CmpAbs(big.NewInt(1)) > 0 && e > 64:
		// Certainly out of range, only the sign matters.
		if x.Sign() < 0 && e%2 == 1 {
			return satnum.Min[T](), true
		}
		return satnum.Max[T](), true
	}
	return saturate[T](new(big.Int).Exp(x, big.NewInt(int64(e)), nil))
}
