package sat

import (
	"math/bits"

	"github.com/pfcm/satnum"
)

// Lsh returns a << n when no information is lost. Unsigned values fail when
// any of their top n bits are set, signed values when the shift would change
// the sign or drop a significant bit. On failure the flag is raised and a is
// shifted as far as it can go. A count outside [0, Bits) raises the flag and
// returns 0.
//
// Negative values keep their value too: Lsh(int8(-3), 5) is -96, while
// Lsh(int8(-3), 6) raises the flag and also returns -96.
func Lsh[T satnum.Integer](a T, n int, f *satnum.Flag) T {
	w := satnum.Bits[T]()
	if n < 0 || n >= w {
		f.Raise()
		return 0
	}
	room := headroom(a, w)
	if n > room {
		f.Raise()
		return a << room
	}
	return a << n
}

// headroom is the largest left shift of a that keeps its value.
func headroom[T satnum.Integer](a T, w int) int {
	if !satnum.IsSigned[T]() {
		return bits.LeadingZeros64(uint64(a)) - (64 - w)
	}
	x := int64(a)
	if x < 0 {
		x = ^x
	}
	// One of the leading zeros of x has to stay behind as the sign bit.
	return bits.LeadingZeros64(uint64(x)) - (64 - w) - 1
}

// Rsh returns a >> n when none of the low n bits are set. On failure the flag
// is raised and a is shifted right past its trailing zeros only. Signed
// shifts are arithmetic. A count outside [0, Bits) raises the flag and
// returns 0.
func Rsh[T satnum.Integer](a T, n int, f *satnum.Flag) T {
	w := satnum.Bits[T]()
	if n < 0 || n >= w {
		f.Raise()
		return 0
	}
	// Sign extension does not touch the low bits, so this is right for
	// negative values too. Zero has 64 trailing zeros, more than any n.
	if tz := bits.TrailingZeros64(uint64(a)); n > tz {
		f.Raise()
		return a >> tz
	}
	return a >> n
}
