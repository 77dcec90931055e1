package main

import (
	"flag"
	"fmt"
	"os"

	"alignctl/internal/align"
	"alignctl/internal/logging"
	"alignctl/internal/scenario"
)

type options struct {
	suite string
	ref   string
	prog  string
	trace bool
}

func main() {
	logging.ConfigureRuntime()
	opts := parseFlags()

	switch {
	case opts.suite != "":
		sum, err := runSuite(opts)
		if err != nil {
			fatalf("%v", err)
		}
		printSummary(sum)
		if !sum.OK() {
			os.Exit(1)
		}
	case opts.ref != "" || opts.prog != "":
		if err := runPair(opts); err != nil {
			fatalf("%v", err)
		}
	default:
		fatalf("nothing to do: pass -suite, or -ref with -prog")
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.suite, "suite", "", "path to a TOML scenario suite")
	flag.StringVar(&opts.ref, "ref", "", "reference sequence literal, e.g. \"1,4,8,9\"")
	flag.StringVar(&opts.prog, "prog", "", "progress sequence literal, e.g. \"0,0,8,0\"")
	flag.BoolVar(&opts.trace, "trace", false, "print before/after tables per scenario")
	flag.Parse()
	return opts
}

func runSuite(opts options) (scenario.Summary, error) {
	cfg, err := loadSuite(opts.suite, suiteConfig{Trace: opts.trace})
	if err != nil {
		return scenario.Summary{}, err
	}
	return scenario.RunSuite(cfg.Scenarios, cfg.Trace, os.Stdout), nil
}

func runPair(opts options) error {
	ref, err := scenario.ParseSeq(opts.ref)
	if err != nil {
		return err
	}
	prog, err := scenario.ParseSeq(opts.prog)
	if err != nil {
		return err
	}
	if opts.trace {
		fmt.Print(scenario.RenderTable(ref, prog))
	}
	got, err := align.Realign(ref, prog)
	if err != nil {
		return err
	}
	if opts.trace {
		fmt.Print(scenario.RenderTable(ref, got))
	}
	fmt.Printf("%q\n", scenario.FormatSeq(got))
	return nil
}

func printSummary(sum scenario.Summary) {
	fmt.Println()
	fmt.Println("Summary")
	fmt.Printf("  Scenarios: run=%d pass=%d fail=%d\n", sum.Run, sum.Passed, sum.Failed)
	if len(sum.Failures) > 0 {
		fmt.Println("  Failed:")
		for _, name := range sum.Failures {
			fmt.Printf("    - %s\n", name)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "alignctl: "+format+"\n", args...)
	os.Exit(1)
}
