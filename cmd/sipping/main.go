// ABOUTME: CLI entry point for sipping, the animated sip-ping tool
// ABOUTME: Wires config, asset decode, rendering, signal handling, and the run loop

package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/mauromedda/sipping/internal/animation"
	"github.com/mauromedda/sipping/internal/asset"
	"github.com/mauromedda/sipping/internal/config"
	"github.com/mauromedda/sipping/internal/frames"
	siplog "github.com/mauromedda/sipping/internal/log"
	"github.com/mauromedda/sipping/internal/probe"
	"github.com/mauromedda/sipping/internal/render"
	"github.com/mauromedda/sipping/internal/term"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, set := parseFlags()

	if args.version {
		fmt.Printf("sipping %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, set); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full startup sequence and drives the session.
func run(args cliArgs, set map[string]bool) error {
	if args.verbose {
		siplog.SetLevel(siplog.LevelDebug)
	}

	rest := args.remaining()
	if len(rest) != 1 {
		return fmt.Errorf("expected exactly one target host, got %d arguments", len(rest))
	}
	host := rest[0]

	file, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	cfg := config.Resolve(file)

	// Explicitly set flags win over the config file.
	if set["c"] || set["count"] {
		cfg.Count = args.count
	}
	if set["i"] || set["interval"] {
		cfg.Interval = args.interval
	}
	if set["width"] {
		cfg.Width = args.width
	}

	switch {
	case cfg.Count < 1:
		return fmt.Errorf("count must be at least 1")
	case cfg.Interval < 0:
		return fmt.Errorf("interval must be non-negative")
	case cfg.Width < 4:
		return fmt.Errorf("width must be at least 4")
	}

	// The clink phase needs two cups side by side plus status text.
	width := term.CapWidth(cfg.Width, term.Width())
	siplog.Debug("animation width %d (requested %d)", width, cfg.Width)

	decoded, err := frames.Decode(bytes.NewReader(asset.GIF()))
	if err != nil {
		return fmt.Errorf("loading animation: %w", err)
	}

	sip := renderAll(decoded, width)
	mirror := renderAll(frames.Mirror(decoded), width)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ip := probe.Resolve(ctx, host)
	displayHost := host
	if ip != host {
		displayHost = fmt.Sprintf("%s (%s)", host, ip)
	}
	fmt.Printf("\n  Sip-ping %s...\n\n", displayHost)

	defer term.RestoreOnPanic()
	term.HideCursor(os.Stdout)
	defer term.ShowCursor(os.Stdout)

	ctrl := animation.New(os.Stdout, sip, mirror, probe.SystemPinger{}, host, animation.Options{
		Count:    cfg.Count,
		Interval: time.Duration(cfg.Interval * float64(time.Second)),
		Width:    width,
	})
	st := ctrl.Run(ctx)

	fmt.Print(st.Summary(host))
	return nil
}

// renderAll rasterizes every frame once; the results stay immutable for
// the whole run.
func renderAll(in []*image.NRGBA, width int) [][]string {
	out := make([][]string, len(in))
	for i, f := range in {
		out[i] = render.Frame(f, width)
	}
	return out
}
