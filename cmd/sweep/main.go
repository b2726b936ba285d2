// sweep checks the checked integer kernel against exact reference results for
// every pair of 8 bit operands, or a strided sample of 16 bit ones.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pfcm/satnum/internal/sweep"
)

var (
	bitsFlag    = flag.Int("bits", 8, "operand width to sweep, 8 or 16")
	strideFlag  = flag.Int("stride", 0, fmt.Sprintf("step between sampled operands. 0 means 1 for 8 bits and %d for 16", sweep.DefaultStride16))
	opsFlag     = flag.String("ops", "", "comma separated list of `operations` to check. Available operations are: "+strings.Join(sweep.Ops, ", ")+". Defaults to all of them")
	limitFlag   = flag.Int("limit", 100, "maximum number of mismatches to report per type, 0 for all of them")
	verboseFlag = flag.Bool("v", false, "log progress as well as mismatches")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sweep: ")
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*verboseFlag)
	if err != nil {
		log.Fatalf("Building logger: %v", err)
	}
	defer logger.Sync()

	var ops []string
	if *opsFlag != "" {
		ops = strings.Split(*opsFlag, ",")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	r, err := sweep.Run(ctx, sweep.Config{
		Bits:   *bitsFlag,
		Stride: *strideFlag,
		Ops:    ops,
		Limit:  *limitFlag,
		Logger: logger,
	})
	switch {
	case err == nil:
		fmt.Printf("%d checks, no mismatches\n", r.Checked)
	case onlyMismatches(err):
		fmt.Printf("%d checks, %d mismatches\n", r.Checked, r.Mismatches)
		logger.Sync()
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}

// onlyMismatches reports whether every error combined in err is a Mismatch,
// rather than a configuration or cancellation problem.
func onlyMismatches(err error) bool {
	for _, e := range multierr.Errors(err) {
		if _, ok := e.(*sweep.Mismatch); !ok {
			return false
		}
	}
	return true
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}
