package sweep

import (
	"fmt"
	"math/big"

	"github.com/pfcm/satnum"
	"github.com/pfcm/satnum/cast"
)

// checkCast converts a into every numeric type and compares each result with
// the saturated exact value, or for floats the nearest float from math/big.
func checkCast[S satnum.Integer](a S) []*Mismatch {
	var ms []*Mismatch
	for _, m := range []*Mismatch{
		castInt[S, int8](a),
		castInt[S, int16](a),
		castInt[S, int32](a),
		castInt[S, int64](a),
		castInt[S, uint8](a),
		castInt[S, uint16](a),
		castInt[S, uint32](a),
		castInt[S, uint64](a),
		castFloat32(a),
		castFloat64(a),
	} {
		if m != nil {
			ms = append(ms, m)
		}
	}
	return ms
}

func castInt[S, D satnum.Integer](a S) *Mismatch {
	var f satnum.Flag
	got := cast.To[D](a, &f)
	want, wantErr := saturate[D](toBig(a))
	if got == want && bool(f) == wantErr {
		return nil
	}
	return castMismatch(a, got, bool(f), want, wantErr)
}

func castFloat32[S satnum.Integer](a S) *Mismatch {
	var f satnum.Flag
	got := cast.To[float32](a, &f)
	want, _ := new(big.Float).SetInt(toBig(a)).Float32()
	if got == want && !f {
		return nil
	}
	return castMismatch(a, got, bool(f), want, false)
}

func castFloat64[S satnum.Integer](a S) *Mismatch {
	var f satnum.Flag
	got := cast.To[float64](a, &f)
	want, _ := new(big.Float).SetInt(toBig(a)).Float64()
	if got == want && !f {
		return nil
	}
	return castMismatch(a, got, bool(f), want, false)
}

func castMismatch[S satnum.Integer, D satnum.Number](a S, got D, gotErr bool, want D, wantErr bool) *Mismatch {
	return &Mismatch{
		Type:     fmt.Sprintf("%T", a),
		Op:       "cast",
		A:        a,
		CastInto: fmt.Sprintf("%T", got),
		Got:      got,
		GotErr:   gotErr,
		Want:     want,
		WantErr:  wantErr,
	}
}
