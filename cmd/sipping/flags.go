// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -c/--count, -i/--interval, --width, --verbose, --version

package main

import (
	"flag"

	"github.com/mauromedda/sipping/internal/config"
)

type cliArgs struct {
	count    int
	interval float64
	width    int
	verbose  bool
	version  bool
}

func parseFlags() (cliArgs, map[string]bool) {
	var args cliArgs

	flag.IntVar(&args.count, "c", config.DefaultCount, "Number of sip-pings")
	flag.IntVar(&args.count, "count", config.DefaultCount, "Number of sip-pings")
	flag.Float64Var(&args.interval, "i", config.DefaultInterval, "Interval between sip-pings in seconds")
	flag.Float64Var(&args.interval, "interval", config.DefaultInterval, "Interval between sip-pings in seconds")
	flag.IntVar(&args.width, "width", config.DefaultWidth, "Animation width in characters")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return args, set
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
