// package satnum is a freestanding kernel of checked and saturating numeric
// operations on fixed width integers and IEEE-754 floats.
//
// Every fallible operation in the subpackages returns a defined value and
// reports problems through a caller supplied *Flag. Results that do not fit
// are saturated to the nearest representable value, so a computation can carry
// on and the flag can be checked once at the end.
//
// The subpackages are layered, leaves first:
//
//	flo    float classification, ULPs and checked float arithmetic
//	order  signedness-safe comparison, min, max, clamp
//	sat    checked integer arithmetic, rounding to multiples, sums
//	alg    integer power, root, log, gcd and lcm
//	cast   saturating conversion between every pair of numeric types
package satnum

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed is the set of signed integer types the kernel operates on.
type Signed interface {
	constraints.Signed
}

// Unsigned is the set of unsigned integer types. uintptr is included by
// constraints.Unsigned but nothing here treats it specially.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is any signed or unsigned integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is binary32 or binary64.
type Float interface {
	constraints.Float
}

// Number is every type the kernel accepts.
type Number interface {
	Integer | Float
}

// Flag is a sticky error indicator. The kernel only ever sets it; it is up to
// the caller to clear it between computations if they want to. A nil *Flag is
// valid everywhere and discards the error.
type Flag bool

// Raise sets the flag. It does nothing on a nil receiver.
func (f *Flag) Raise() {
	if f != nil {
		*f = true
	}
}

// Raised reports whether the flag has been set.
func (f *Flag) Raised() bool {
	return f != nil && bool(*f)
}

func (f *Flag) String() string {
	if f.Raised() {
		return "err"
	}
	return "ok"
}

// Rep identifies how the environment encodes signed integers.
type Rep int

const (
	TwosComplement Rep = iota
	OnesComplement
	SignMagnitude
)

func (r Rep) String() string {
	switch r {
	case TwosComplement:
		return "two's complement"
	case OnesComplement:
		return "one's complement"
	case SignMagnitude:
		return "sign-magnitude"
	}
	return "unknown"
}

// SignedRep is the representation of signed integers in this environment. Go
// defines signed integers as two's complement, but the operations that depend
// on it still branch on this constant rather than assuming.
const SignedRep = TwosComplement

// Bits returns the width of T in bits.
func Bits[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values. It is true for floats.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// Max returns the largest value of the integer type T.
func Max[T Integer]() T {
	if !IsSigned[T]() {
		return ^T(0)
	}
	// 1<<(n-1) wraps to the most negative value, one less wraps back to the
	// most positive.
	return T(1)<<(Bits[T]()-1) - 1
}

// Min returns the smallest value of the integer type T under SignedRep.
func Min[T Integer]() T {
	return MinFor[T](SignedRep)
}

// MinFor returns the smallest value of T under the given representation. Only
// two's complement has a negative value without a positive counterpart.
func MinFor[T Integer](r Rep) T {
	if !IsSigned[T]() {
		return 0
	}
	if r == TwosComplement {
		return -Max[T]() - 1
	}
	return -Max[T]()
}

// Zero returns the fallback value for a failed operation on T: NaN for floats
// and 0 for integers.
func Zero[T Number]() T {
	if IsFloat[T]() {
		nan := nanBits()
		return T(nan)
	}
	return 0
}

// nanBits is kept out of Zero so the float64 conversion is a variable rather
// than a constant; converting a constant NaN is not allowed.
func nanBits() float64 {
	var z float64
	return z / z
}
