// package sweep checks the integer kernel against exact math/big reference
// results over whole ranges of operands. The 8 bit types are small enough to
// check every pair; the 16 bit types are sampled with a stride.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/satnum"
	"github.com/pfcm/satnum/alg"
	"github.com/pfcm/satnum/sat"
)

// Ops lists the operations that can be swept, in the order they are run.
var Ops = []string{"add", "sub", "mul", "div", "mod", "neg", "lsh", "rsh", "pow", "cast"}

// unary ops ignore b and are only checked once per a.
var unary = map[string]bool{"neg": true, "cast": true}

// Config says what to sweep.
type Config struct {
	// Bits is the operand width, 8 or 16. Both the signed and the unsigned
	// type of that width are swept.
	Bits int
	// Stride is the step between sampled operand values. Zero means 1 for 8
	// bits and DefaultStride16 for 16 bits.
	Stride int
	// Ops to check, all of Ops if empty.
	Ops []string
	// Limit caps the number of mismatches recorded per type, 0 means no cap.
	// Every mismatch is still counted.
	Limit int
	// Logger gets progress and every recorded mismatch. Nil means no logging.
	Logger *zap.Logger
}

// DefaultStride16 samples about 2500 values of each 16 bit type.
const DefaultStride16 = 27

// blockSize is the number of left operands each worker takes at once.
const blockSize = 16

// Report summarises a sweep.
type Report struct {
	Checked    int64
	Mismatches int64
}

// Mismatch is a kernel result that disagrees with the reference.
type Mismatch struct {
	Type     string
	Op       string
	A, B     any
	Got      any
	GotErr   bool
	Want     any
	WantErr  bool
	CastInto string
}

func (m *Mismatch) Error() string {
	if m.CastInto != "" {
		return fmt.Sprintf("cast %s(%v) to %s = %v (flag %v), want: %v (flag %v)",
			m.Type, m.A, m.CastInto, m.Got, m.GotErr, m.Want, m.WantErr)
	}
	if unary[m.Op] {
		return fmt.Sprintf("%s %s(%v) = %v (flag %v), want: %v (flag %v)",
			m.Type, m.Op, m.A, m.Got, m.GotErr, m.Want, m.WantErr)
	}
	return fmt.Sprintf("%s %s(%v, %v) = %v (flag %v), want: %v (flag %v)",
		m.Type, m.Op, m.A, m.B, m.Got, m.GotErr, m.Want, m.WantErr)
}

// Run sweeps the types and ops in cfg. The returned error combines every
// recorded Mismatch; extract them with multierr.Errors. Bad configuration and
// context cancellation are returned as plain errors.
func Run(ctx context.Context, cfg Config) (Report, error) {
	ops, err := cfg.ops()
	if err != nil {
		return Report{}, err
	}
	if cfg.Stride < 0 {
		return Report{}, fmt.Errorf("stride must not be negative, got %d", cfg.Stride)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var r Report
	var mismatches error
	add := func(rep Report, err error) {
		r.Checked += rep.Checked
		r.Mismatches += rep.Mismatches
		mismatches = multierr.Append(mismatches, err)
	}
	switch cfg.Bits {
	case 8:
		s := stride(cfg.Stride, 1)
		add(sweep(ctx, values[int8](s), ops, cfg.Limit, log))
		add(sweep(ctx, values[uint8](s), ops, cfg.Limit, log))
	case 16:
		s := stride(cfg.Stride, DefaultStride16)
		add(sweep(ctx, values[int16](s), ops, cfg.Limit, log))
		add(sweep(ctx, values[uint16](s), ops, cfg.Limit, log))
	default:
		return Report{}, fmt.Errorf("can only sweep 8 or 16 bits, got %d", cfg.Bits)
	}
	if err := ctx.Err(); err != nil {
		return r, err
	}
	return r, mismatches
}

func (c Config) ops() ([]string, error) {
	if len(c.Ops) == 0 {
		return Ops, nil
	}
	for _, o := range c.Ops {
		if !slices.Contains(Ops, o) {
			return nil, fmt.Errorf("unknown op %q", o)
		}
	}
	return c.Ops, nil
}

func stride(s, def int) int {
	if s == 0 {
		return def
	}
	return s
}

// values returns every stride-th value of T from Min, plus the values next to
// 0, Min and Max.
func values[T satnum.Integer](stride int) []T {
	lo, hi := int64(satnum.Min[T]()), int64(satnum.Max[T]())
	var vs []T
	for v := lo; v <= hi; v += int64(stride) {
		vs = append(vs, T(v))
	}
	for _, v := range []int64{lo, lo + 1, -1, 0, 1, 2, hi - 1, hi} {
		if v >= lo && v <= hi {
			vs = append(vs, T(v))
		}
	}
	slices.Sort(vs)
	return slices.Compact(vs)
}

// sweep checks ops on every pair from vs, spreading blocks of left operands
// across GOMAXPROCS workers.
func sweep[T satnum.Integer](ctx context.Context, vs []T, ops []string, limit int, log *zap.Logger) (Report, error) {
	typ := fmt.Sprintf("%T", T(0))
	log = log.With(zap.String("type", typ))
	log.Info("sweeping", zap.Int("values", len(vs)), zap.Strings("ops", ops))

	var (
		checked, found atomic.Int64
		mu             sync.Mutex
		mismatches     error
	)
	record := func(m *Mismatch) {
		if n := found.Add(1); limit > 0 && n > int64(limit) {
			return
		}
		log.Error("mismatch", zap.Error(m))
		mu.Lock()
		mismatches = multierr.Append(mismatches, m)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(vs); start += blockSize {
		block := vs[start:min(start+blockSize, len(vs))]
		g.Go(func() error {
			var n int64
			for _, a := range block {
				if err := ctx.Err(); err != nil {
					return err
				}
				for _, op := range ops {
					switch {
					case op == "cast":
						for _, m := range checkCast(a) {
							record(m)
						}
						n++
					case unary[op]:
						if m := check(op, a, 0); m != nil {
							record(m)
						}
						n++
					default:
						for _, b := range vs {
							if m := check(op, a, b); m != nil {
								record(m)
							}
						}
						n += int64(len(vs))
					}
				}
			}
			checked.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	r := Report{Checked: checked.Load(), Mismatches: found.Load()}
	log.Info("done", zap.Int64("checked", r.Checked), zap.Int64("mismatches", r.Mismatches))
	return r, mismatches
}

// kernel runs op from the sat and alg packages.
func kernel[T satnum.Integer](op string, a, b T) (T, bool) {
	var f satnum.Flag
	var r T
	switch op {
	case "add":
		r = sat.Add(a, b, &f)
	case "sub":
		r = sat.Sub(a, b, &f)
	case "mul":
		r = sat.Mul(a, b, &f)
	case "div":
		r = sat.Div(a, b, &f)
	case "mod":
		r = sat.Mod(a, b, &f)
	case "neg":
		r = sat.Neg(a, &f)
	case "lsh":
		r = sat.Lsh(a, int(b), &f)
	case "rsh":
		r = sat.Rsh(a, int(b), &f)
	case "pow":
		r = alg.Pow(a, int(b), &f)
	default:
		panic("sweep: no kernel op " + op)
	}
	return r, bool(f)
}

// check compares one kernel result with the reference, returning nil if they
// agree.
func check[T satnum.Integer](op string, a, b T) *Mismatch {
	got, gotErr := kernel(op, a, b)
	want, wantErr := reference(op, a, b)
	if got == want && gotErr == wantErr {
		return nil
	}
	return &Mismatch{
		Type:    fmt.Sprintf("%T", a),
		Op:      op,
		A:       a,
		B:       b,
		Got:     got,
		GotErr:  gotErr,
		Want:    want,
		WantErr: wantErr,
	}
}
