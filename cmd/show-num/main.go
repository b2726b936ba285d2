// show-num shows what the kernel makes of a number in each numeric type,
// mostly for debugging conversions and saturation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	typesFlag = flag.String("types", "", "comma separated list of `type names` to show. Leave empty to show all types")
	opsFlag   = flag.String("ops", "", "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")
	groupFlag = flag.Bool("group", false, "group the digits of integer results in thousands")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	types, err := parseKeys("type", typeKeys, *typesFlag)
	if err != nil {
		fail(err.Error())
	}
	ops, err := parseKeys("op", opKeys, *opsFlag)
	if err != nil {
		fail(err.Error())
	}

	var nums []number
	for _, arg := range flag.Args() {
		n, err := parse(arg)
		if err != nil {
			fail(err.Error())
		}
		nums = append(nums, n)
	}

	var p *message.Printer
	if *groupFlag {
		p = message.NewPrinter(language.English)
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	show(w, p, types, ops, nums)
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

// parseKeys turns a comma separated list into a set, checking every entry is
// one of all. An empty list selects everything.
func parseKeys(kind string, all []string, list string) (map[string]bool, error) {
	known := make(map[string]bool)
	for _, k := range all {
		known[k] = true
	}
	if list == "" {
		return known, nil
	}
	result := make(map[string]bool)
	for _, k := range strings.Split(list, ",") {
		if !known[k] {
			return nil, fmt.Errorf("unknown %s %q", kind, k)
		}
		result[k] = true
	}
	return result, nil
}

func show(w io.Writer, p *message.Printer, types, ops map[string]bool, nums []number) {
	showConversions(w, p, types, nums[0])
	if len(nums) == 2 {
		fmt.Fprintln(w)
		showConversions(w, p, types, nums[1])
		fmt.Fprintln(w)
		showOps(w, p, types, ops, nums[0], nums[1])
	}
}

func showConversions(w io.Writer, p *message.Printer, types map[string]bool, n number) {
	for _, t := range typeKeys {
		if !types[t] {
			continue
		}
		r, f := conversions[t](p, n)
		fmt.Fprintf(w, "%s\t%s\t%s\n", t, r, &f)
	}
}

func showOps(w io.Writer, p *message.Printer, types, showOps map[string]bool, a, b number) {
	for _, t := range typeKeys {
		if !types[t] {
			continue
		}
		for _, o := range opKeys {
			op, ok := ops[t][o]
			if !showOps[o] || !ok {
				continue
			}
			r, f := op(p, a, b)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t, o, r, &f)
		}
	}
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help)
	os.Exit(1)
}

const help = `show-num shows the same number converted into every numeric type,
along with whether the conversion saturated.
Usage:
	show-num [-types] [-ops] [-group] num [num]

Where num is an integer or floating point literal in Go syntax. If a second
number is provided, both are converted into each type and the results of
various operations between them are shown as well.
`
