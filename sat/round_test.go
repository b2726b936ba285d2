package sat

import (
	"math"
	"testing"

	"github.com/pfcm/satnum"
)

func TestFloorCeilRound(t *testing.T) {
	for _, c := range []struct {
		v, m               int8
		floor, ceil, round int8
	}{
		{7, 2, 6, 8, 8},
		{-7, 2, -8, -6, -6},
		{6, 4, 4, 8, 8},
		{5, 4, 4, 8, 4},
		{7, 4, 4, 8, 8},
		{0, 5, 0, 0, 0},
		{-3, 5, -5, 0, -5},
		{-2, 5, -5, 0, 0},
		{8, 8, 8, 8, 8},
	} {
		var f satnum.Flag
		if got := Floor(c.v, c.m, &f); got != c.floor {
			t.Errorf("Floor(%d, %d) = %d, want: %d", c.v, c.m, got, c.floor)
		}
		if got := Ceil(c.v, c.m, &f); got != c.ceil {
			t.Errorf("Ceil(%d, %d) = %d, want: %d", c.v, c.m, got, c.ceil)
		}
		if got := Round(c.v, c.m, &f); got != c.round {
			t.Errorf("Round(%d, %d) = %d, want: %d", c.v, c.m, got, c.round)
		}
		if f.Raised() {
			t.Errorf("rounding %d to %d raised the flag", c.v, c.m)
		}
	}
}

func TestRoundingOverflow(t *testing.T) {
	check := func(name string, fn func(v, m int8, f *satnum.Flag) int8, v, m, out int8, err bool) {
		t.Helper()
		var f satnum.Flag
		if got := fn(v, m, &f); got != out || bool(f) != err {
			t.Errorf("%s(%d, %d) = %d (flag %v), want: %d (flag %v)", name, v, m, got, f, out, err)
		}
	}
	check("Floor", Floor[int8], -127, 10, -120, true)
	check("Ceil", Ceil[int8], 125, 10, 120, true)
	check("Round", Round[int8], 125, 10, 120, false)
	check("Round", Round[int8], 126, 10, 120, true)
	check("Round", Round[int8], -124, 10, -120, false)
	check("Round", Round[int8], -126, 10, -120, true)
	check("Floor", Floor[int8], 5, 0, 0, true)
	check("Ceil", Ceil[int8], 5, -2, 0, true)
	check("Round", Round[int8], 5, 0, 0, true)

	var f satnum.Flag
	if got := Round(uint8(250), 100, &f); got != 200 || f.Raised() {
		t.Errorf("Round(uint8(250), 100) = %d (flag %v), want: 200 (flag false)", got, f)
	}
}

func TestSumProduct(t *testing.T) {
	var f satnum.Flag
	if got := Sum([]int32{1, 2, 3, -10}, &f); got != -4 || f.Raised() {
		t.Errorf("Sum = %d (flag %v), want: -4", got, f)
	}
	if got := Product([]uint16{2, 3, 4}, &f); got != 24 || f.Raised() {
		t.Errorf("Product = %d (flag %v), want: 24", got, f)
	}
	if got := Sum([]int8{100, 100, -50}, &f); got != 77 || !f.Raised() {
		t.Errorf("Sum(100, 100, -50) = %d (flag %v), want: 77 (flag true)", got, f)
	}
	f = false
	if got := Product([]int64{math.MaxInt64, 2, 0}, &f); got != 0 || !f.Raised() {
		t.Errorf("Product(MaxInt64, 2, 0) = %d (flag %v), want: 0 (flag true)", got, f)
	}
	f = false
	if got := Sum[uint8](nil, &f); got != 0 || !f.Raised() {
		t.Errorf("Sum(nil) = %d (flag %v), want: 0 (flag true)", got, f)
	}
	f = false
	if got := Product([]int16{}, &f); got != 0 || !f.Raised() {
		t.Errorf("Product(empty) = %d (flag %v), want: 0 (flag true)", got, f)
	}
}
