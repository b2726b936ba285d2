package sat

import (
	"testing"

	"github.com/pfcm/satnum"
)

func TestLshUnsigned(t *testing.T) {
	for _, c := range []struct {
		a   uint8
		n   int
		out uint8
		err bool
	}{
		{1, 0, 1, false},
		{1, 7, 0x80, false},
		{0x0f, 4, 0xf0, false},
		{0x0f, 5, 0xf0, true},
		{0x81, 1, 0x81, true},
		{0, 7, 0, false},
		{1, 8, 0, true},
		{1, -1, 0, true},
	} {
		var f satnum.Flag
		if got := Lsh(c.a, c.n, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%#x Lsh %d = %#x (flag %v), want: %#x (flag %v)", c.a, c.n, got, f, c.out, c.err)
		}
	}
}

func TestLshSigned(t *testing.T) {
	for _, c := range []struct {
		a   int16
		n   int
		out int16
		err bool
	}{
		{1, 14, 1 << 14, false},
		{1, 15, 1 << 14, true},
		{-1, 15, -1 << 15, false},
		{-3, 13, -3 << 13, false},
		{-3, 14, -3 << 13, true},
		{0x00ff, 7, 0x7f80, false},
		{0x00ff, 8, 0x7f80, true},
		{0, 15, 0, false},
		{5, 16, 0, true},
	} {
		var f satnum.Flag
		if got := Lsh(c.a, c.n, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Lsh %d = %d (flag %v), want: %d (flag %v)", c.a, c.n, got, f, c.out, c.err)
		}
	}
}

func TestLshNegativeKeepsValue(t *testing.T) {
	var f satnum.Flag
	if got := Lsh(int8(-3), 5, &f); got != -96 || f.Raised() {
		t.Errorf("-3 Lsh 5 = %d (flag %v), want: -96 (flag false)", got, f)
	}
	if got := Lsh(int8(-3), 6, &f); got != -96 || !f.Raised() {
		t.Errorf("-3 Lsh 6 = %d (flag %v), want: -96 (flag true)", got, f)
	}
	f = false
	if got := Lsh(int8(-128), 1, &f); got != -128 || !f.Raised() {
		t.Errorf("-128 Lsh 1 = %d (flag %v), want: -128 (flag true)", got, f)
	}
}

func TestRsh(t *testing.T) {
	for _, c := range []struct {
		a   int32
		n   int
		out int32
		err bool
	}{
		{8, 3, 1, false},
		{8, 4, 1, true},
		{12, 3, 3, true},
		{-8, 3, -1, false},
		{-8, 4, -1, true},
		{-6, 1, -3, false},
		{0, 31, 0, false},
		{1, 32, 0, true},
		{1, -3, 0, true},
	} {
		var f satnum.Flag
		if got := Rsh(c.a, c.n, &f); got != c.out || bool(f) != c.err {
			t.Errorf("%d Rsh %d = %d (flag %v), want: %d (flag %v)", c.a, c.n, got, f, c.out, c.err)
		}
	}
	var f satnum.Flag
	if got := Rsh(uint64(0xf0), 6, &f); got != 0x0f || !f.Raised() {
		t.Errorf("0xf0 Rsh 6 = %#x (flag %v), want: 0xf (flag true)", got, f)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	for a := int8(-128); ; a++ {
		for n := 0; n < 8; n++ {
			var f satnum.Flag
			l := Lsh(a, n, &f)
			if f.Raised() {
				continue
			}
			if back := Rsh(l, n, &f); back != a || f.Raised() {
				t.Errorf("Rsh(Lsh(%d, %d), %d) = %d (flag %v), want: %d", a, n, n, back, f, a)
			}
		}
		if a == 127 {
			break
		}
	}
}
