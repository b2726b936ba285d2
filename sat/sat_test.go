package sat

import (
	"math"
	"testing"

	"github.com/pfcm/satnum"
)

func TestAddInt8(t *testing.T) {
	for _, c := range []struct {
		a, b int8
		out  int8
		err  bool
	}{
		{0, 0, 0, false},
		{0, 1, 1, false},
		{0, -1, -1, false},
		{1, -1, 0, false},
		{-10, 15, 5, false},
		{100, 50, 127, true},
		{125, 10, 127, true},
		{-126, 10, -116, false},
		{-125, -10, -128, true},
		{127, -128, -1, false},
		{-128, -1, -128, true},
		{127, 0, 127, false},
	} {
		var f satnum.Flag
		if got := Add(c.a, c.b, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Add %d = %d (flag %v), want: %d (flag %v)", c.a, c.b, got, f, c.out, c.err)
		}
		f = false
		if got := Add(c.b, c.a, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Add %d = %d (flag %v), want: %d (flag %v)", c.b, c.a, got, f, c.out, c.err)
		}
	}
}

func TestSubInt16(t *testing.T) {
	for _, c := range []struct {
		a, b int16
		out  int16
		err  bool
	}{
		{5, 3, 2, false},
		{3, 5, -2, false},
		{0, math.MinInt16, math.MaxInt16, true},
		{-1, math.MinInt16, math.MaxInt16, false},
		{math.MinInt16, 1, math.MinInt16, true},
		{math.MaxInt16, -1, math.MaxInt16, true},
		{-1, math.MaxInt16, math.MinInt16, false},
		{-2, math.MaxInt16, math.MinInt16, true},
	} {
		var f satnum.Flag
		if got := Sub(c.a, c.b, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Sub %d = %d (flag %v), want: %d (flag %v)", c.a, c.b, got, f, c.out, c.err)
		}
	}
}

func TestUnsigned(t *testing.T) {
	var f satnum.Flag
	if got := Mul(uint16(300), 200, &f); got != 60000 || f.Raised() {
		t.Errorf("300 Mul 200 = %d (flag %v), want: 60000 (flag false)", got, f)
	}
	if got := Mul(uint16(300), 300, &f); got != math.MaxUint16 || !f.Raised() {
		t.Errorf("300 Mul 300 = %d (flag %v), want: %d (flag true)", got, f, math.MaxUint16)
	}
	f = false
	if got := Sub(uint32(3), 5, &f); got != 0 || !f.Raised() {
		t.Errorf("3 Sub 5 = %d (flag %v), want: 0 (flag true)", got, f)
	}
	f = false
	if got := Add(uint64(math.MaxUint64), 1, &f); got != math.MaxUint64 || !f.Raised() {
		t.Errorf("MaxUint64 Add 1 = %d (flag %v), want: MaxUint64 (flag true)", got, f)
	}
	f = false
	if got := Neg(uint8(0), &f); got != 0 || f.Raised() {
		t.Errorf("Neg(0) = %d (flag %v), want: 0 (flag false)", got, f)
	}
	if got := Neg(uint8(1), &f); got != 0 || !f.Raised() {
		t.Errorf("Neg(1) = %d (flag %v), want: 0 (flag true)", got, f)
	}
}

func TestMulInt8(t *testing.T) {
	for _, c := range []struct {
		a, b int8
		out  int8
		err  bool
	}{
		{0, -128, 0, false},
		{11, 11, 121, false},
		{12, 11, 127, true},
		{-16, 8, -128, false},
		{-17, 8, -128, true},
		{16, -8, -128, false},
		{17, -8, -128, true},
		{-11, -11, 121, false},
		{-12, -11, 127, true},
		{-128, -1, 127, true},
		{-128, 1, -128, false},
		{127, -1, -127, false},
	} {
		var f satnum.Flag
		if got := Mul(c.a, c.b, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Mul %d = %d (flag %v), want: %d (flag %v)", c.a, c.b, got, f, c.out, c.err)
		}
		f = false
		if got := Mul(c.b, c.a, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Mul %d = %d (flag %v), want: %d (flag %v)", c.b, c.a, got, f, c.out, c.err)
		}
	}
}

func TestDivMod(t *testing.T) {
	for _, c := range []struct {
		a, b     int32
		div, mod int32
		err      bool
	}{
		{7, 2, 3, 1, false},
		{-7, 2, -3, -1, false},
		{7, -2, -3, 1, false},
		{-7, -2, 3, -1, false},
		{5, 0, 0, 0, true},
		{math.MinInt32, -1, math.MaxInt32, 0, true},
		{math.MinInt32, 1, math.MinInt32, 0, false},
	} {
		var f satnum.Flag
		got := Div(c.a, c.b, &f)
		if got != c.div || bool(f) != c.err {
			t.Errorf("%d Div %d = %d (flag %v), want: %d (flag %v)", c.a, c.b, got, f, c.div, c.err)
		}
		f = false
		if got := Mod(c.a, c.b, &f); got != c.mod || (c.b == 0) != bool(f) {
			t.Errorf("%d Mod %d = %d (flag %v), want: %d", c.a, c.b, got, f, c.mod)
		}
	}
}

func TestNegAbsCopySign(t *testing.T) {
	var f satnum.Flag
	if got := Neg(int8(5), &f); got != -5 || f.Raised() {
		t.Errorf("Neg(5) = %d, want: -5", got)
	}
	if got := Neg(int8(-127), &f); got != 127 || f.Raised() {
		t.Errorf("Neg(-127) = %d, want: 127", got)
	}
	if got := Neg(int8(-128), &f); got != 127 || !f.Raised() {
		t.Errorf("Neg(-128) = %d (flag %v), want: 127 (flag true)", got, f)
	}
	f = false
	if got := Abs(int64(-9), &f); got != 9 || f.Raised() {
		t.Errorf("Abs(-9) = %d, want: 9", got)
	}
	if got := Abs(int64(math.MinInt64), &f); got != math.MaxInt64 || !f.Raised() {
		t.Errorf("Abs(MinInt64) = %d (flag %v), want: MaxInt64 (flag true)", got, f)
	}
	f = false
	for _, c := range []struct {
		mag, sign, out int16
	}{
		{5, -1, -5},
		{-5, 1, 5},
		{-5, -3, -5},
		{0, -1, 0},
		{math.MinInt16, -1, math.MinInt16},
	} {
		if got := CopySign(c.mag, c.sign, &f); got != c.out {
			t.Errorf("CopySign(%d, %d) = %d, want: %d", c.mag, c.sign, got, c.out)
		}
	}
	if f.Raised() {
		t.Errorf("CopySign raised the flag")
	}
	if got := CopySign(int16(math.MinInt16), 1, &f); got != math.MaxInt16 || !f.Raised() {
		t.Errorf("CopySign(MinInt16, 1) = %d (flag %v), want: MaxInt16 (flag true)", got, f)
	}
	if got := CopySign(uint8(9), 0, nil); got != 9 {
		t.Errorf("CopySign(uint8(9), 0) = %d, want: 9", got)
	}
}

func TestOtherReps(t *testing.T) {
	for _, rep := range []satnum.Rep{satnum.OnesComplement, satnum.SignMagnitude} {
		var f satnum.Flag
		if got := add(int8(-127), -1, rep, &f); got != -127 || !f.Raised() {
			t.Errorf("%v: -127 add -1 = %d (flag %v), want: -127 (flag true)", rep, got, f)
		}
		f = false
		if got := sub(int8(-100), 100, rep, &f); got != -127 || !f.Raised() {
			t.Errorf("%v: -100 sub 100 = %d (flag %v), want: -127 (flag true)", rep, got, f)
		}
		f = false
		if got := mul(int8(-64), 2, rep, &f); got != -127 || !f.Raised() {
			t.Errorf("%v: -64 mul 2 = %d (flag %v), want: -127 (flag true)", rep, got, f)
		}
		f = false
		if got := neg(int8(-127), rep, &f); got != 127 || f.Raised() {
			t.Errorf("%v: neg(-127) = %d (flag %v), want: 127 (flag false)", rep, got, f)
		}
		if got := div(int8(-127), -1, rep, &f); got != 127 || f.Raised() {
			t.Errorf("%v: -127 div -1 = %d (flag %v), want: 127 (flag false)", rep, got, f)
		}
		if got := abs(int8(-127), rep, &f); got != 127 || f.Raised() {
			t.Errorf("%v: abs(-127) = %d (flag %v), want: 127 (flag false)", rep, got, f)
		}
		if got := mul(int8(127), -1, rep, &f); got != -127 || f.Raised() {
			t.Errorf("%v: 127 mul -1 = %d (flag %v), want: -127 (flag false)", rep, got, f)
		}
	}
	// Two's complement gets the extra negative value.
	var f satnum.Flag
	if got := add(int8(-127), -1, satnum.TwosComplement, &f); got != -128 || f.Raised() {
		t.Errorf("two's complement: -127 add -1 = %d (flag %v), want: -128", got, f)
	}
}

func TestSaturationMonotonic(t *testing.T) {
	for _, b := range []int8{28, 50, 100, 127} {
		var f satnum.Flag
		if got := Add(int8(100), b, &f); got != math.MaxInt8 || !f.Raised() {
			t.Errorf("100 Add %d = %d (flag %v), want: 127 (flag true)", b, got, f)
		}
	}
	for _, b := range []int8{3, 10, 100, -128} {
		var f satnum.Flag
		want := int8(math.MinInt8)
		if b < 0 {
			want = math.MaxInt8
		}
		if got := Mul(int8(-64), b, &f); got != want || !f.Raised() {
			t.Errorf("-64 Mul %d = %d (flag %v), want: %d (flag true)", b, got, f, want)
		}
	}
}

func TestStickyFlag(t *testing.T) {
	ops := map[string]func(a, b int8, f *satnum.Flag) int8{
		"Add": Add[int8],
		"Sub": Sub[int8],
		"Mul": Mul[int8],
		"Div": Div[int8],
		"Mod": Mod[int8],
	}
	for name, op := range ops {
		f := satnum.Flag(true)
		op(1, 1, &f)
		if !f.Raised() {
			t.Errorf("%s cleared a raised flag", name)
		}
		// And nil is fine.
		op(100, 0, nil)
	}
}
