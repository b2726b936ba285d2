package main

import (
	"fmt"
	"strconv"

	"golang.org/x/text/message"

	"github.com/pfcm/satnum"
	"github.com/pfcm/satnum/alg"
	"github.com/pfcm/satnum/cast"
	"github.com/pfcm/satnum/flo"
	"github.com/pfcm/satnum/order"
	"github.com/pfcm/satnum/sat"
)

var typeKeys = []string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

var opKeys = []string{"add", "sub", "mul", "div", "mod", "cmp", "pow", "root", "log"}

// number is a command line argument in the widest type of its kind.
type number struct {
	kind byte // 'i', 'u' or 'f'
	i    int64
	u    uint64
	f    float64
}

// parse reads s as a Go integer literal if it is one, otherwise as a float.
func parse(s string) (number, error) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return number{kind: 'i', i: i}, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return number{kind: 'u', u: u}, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, fmt.Errorf("%q is not a number", s)
	}
	return number{kind: 'f', f: x}, nil
}

func to[T satnum.Number](n number, f *satnum.Flag) T {
	switch n.kind {
	case 'i':
		return cast.To[T](n.i, f)
	case 'u':
		return cast.To[T](n.u, f)
	}
	return cast.To[T](n.f, f)
}

// format prints floats in their shortest exact form and integers in decimal,
// grouped by p if it is not nil.
func format[T satnum.Number](p *message.Printer, v T) string {
	switch {
	case satnum.IsFloat[T]():
		return strconv.FormatFloat(float64(v), 'g', -1, satnum.Bits[T]())
	case p != nil:
		return p.Sprintf("%d", v)
	}
	return fmt.Sprint(v)
}

type convFunc func(p *message.Printer, n number) (string, satnum.Flag)

type opFunc func(p *message.Printer, a, b number) (string, satnum.Flag)

var conversions = map[string]convFunc{
	"int8":    conversion[int8],
	"int16":   conversion[int16],
	"int32":   conversion[int32],
	"int64":   conversion[int64],
	"uint8":   conversion[uint8],
	"uint16":  conversion[uint16],
	"uint32":  conversion[uint32],
	"uint64":  conversion[uint64],
	"float32": conversion[float32],
	"float64": conversion[float64],
}

var ops = map[string]map[string]opFunc{
	"int8":    intOps[int8](),
	"int16":   intOps[int16](),
	"int32":   intOps[int32](),
	"int64":   intOps[int64](),
	"uint8":   intOps[uint8](),
	"uint16":  intOps[uint16](),
	"uint32":  intOps[uint32](),
	"uint64":  intOps[uint64](),
	"float32": floatOps[float32](),
	"float64": floatOps[float64](),
}

func conversion[T satnum.Number](p *message.Printer, n number) (string, satnum.Flag) {
	var f satnum.Flag
	v := to[T](n, &f)
	return format(p, v), f
}

func intOps[T satnum.Integer]() map[string]opFunc {
	return map[string]opFunc{
		"add":  binary(sat.Add[T]),
		"sub":  binary(sat.Sub[T]),
		"mul":  binary(sat.Mul[T]),
		"div":  binary(sat.Div[T]),
		"mod":  binary(sat.Mod[T]),
		"cmp":  binary(order.Compare[T, T]),
		"pow":  binary(pow[T]),
		"root": root[T],
		"log":  binary(alg.Log[T]),
	}
}

func floatOps[T satnum.Float]() map[string]opFunc {
	return map[string]opFunc{
		"add": binary(flo.Add[T]),
		"sub": binary(flo.Sub[T]),
		"mul": binary(flo.Mul[T]),
		"div": binary(flo.Div[T]),
		"mod": binary(flo.Mod[T]),
		"cmp": binary(order.Compare[T, T]),
	}
}

// binary converts both arguments to T, quietly saturating them, and applies
// op. Only the flag raised by op is returned.
func binary[T, R satnum.Number](op func(a, b T, f *satnum.Flag) R) opFunc {
	return func(p *message.Printer, a, b number) (string, satnum.Flag) {
		var f satnum.Flag
		r := op(to[T](a, nil), to[T](b, nil), &f)
		return format(p, r), f
	}
}

func pow[T satnum.Integer](a, b T, f *satnum.Flag) T {
	return alg.Pow(a, cast.To[int](b, nil), f)
}

func root[T satnum.Integer](p *message.Printer, a, b number) (string, satnum.Flag) {
	var f satnum.Flag
	r := alg.Root(to[T](a, nil), cast.To[int](to[T](b, nil), nil), &f)
	return format(p, r.Root) + " rem " + format(p, r.Rem), f
}
