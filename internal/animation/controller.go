// ABOUTME: Animation controller driving sip/probe/clink cycles in the terminal
// ABOUTME: Owns in-place redraw bookkeeping, log accumulation, and cancellation

package animation

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mauromedda/sipping/internal/probe"
)

// defaultFrameDelay is the pause between animation frames.
const defaultFrameDelay = 30 * time.Millisecond

// Options configures a Controller run.
type Options struct {
	Count      int           // number of cycles, >= 1
	Interval   time.Duration // pause between cycles
	FrameDelay time.Duration // pause between frames; default 30ms
	Width      int           // animation width in columns, for status alignment
}

// Controller drives Count cycles of {sip animation, probe, clink
// animation, log commit} against a byte-oriented terminal sink. The
// rendered frame sets are immutable for the whole run; only the session
// counters change, one cycle at a time, on a single goroutine.
type Controller struct {
	out    io.Writer
	sip    [][]string // rendered frames, cup alone
	mirror [][]string // rendered frames, horizontally mirrored cup
	pinger probe.Pinger
	host   string
	opts   Options

	// sleep is swapped out by tests to drive cancellation deterministically.
	sleep func(ctx context.Context, d time.Duration)
}

// New builds a Controller writing to out. sip and mirror must be
// non-empty and hold frames of identical line counts.
func New(out io.Writer, sip, mirror [][]string, p probe.Pinger, host string, opts Options) *Controller {
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = defaultFrameDelay
	}
	return &Controller{
		out:    out,
		sip:    sip,
		mirror: mirror,
		pinger: p,
		host:   host,
		opts:   opts,
		sleep:  ctxSleep,
	}
}

// Run executes the session until Count cycles complete or ctx is
// cancelled. Cancellation is observed at phase and frame boundaries
// only; an interrupted cycle commits no log line. The returned Stats
// cover whatever was attempted.
func (c *Controller) Run(ctx context.Context) Stats {
	var st Stats
	rows := len(c.sip[0])

	// Reserve the animation region plus one status line so the first
	// cursor-up lands on a row this process owns.
	io.WriteString(c.out, strings.Repeat("\n", rows+1))

	for seq := 0; seq < c.opts.Count; seq++ {
		if ctx.Err() != nil {
			break
		}
		st.Sent++

		// The log grows below the animation, so every redraw must climb
		// over the committed lines as well.
		up := rows + 1 + st.LogLines
		sipText := fmt.Sprintf("Sip-ping #%d...", seq+1)

		if !c.playSip(ctx, sipText, up, st.LogLines) || ctx.Err() != nil {
			break
		}

		res := c.pinger.Ping(ctx, c.host)
		if res.Success {
			st.Received++
			st.Times = append(st.Times, res.TimeMs)
		}
		status := c.statusFor(sipText, res)

		if !c.playClink(ctx, status, up, st.LogLines) || ctx.Err() != nil {
			break
		}

		// Advance one row: the status text becomes a permanent log line.
		io.WriteString(c.out, "\n")
		st.LogLines++

		if seq < c.opts.Count-1 {
			c.sleep(ctx, c.opts.Interval)
		}
	}

	return st
}

// playSip renders each frame alone. Returns false once cancellation is
// observed, before any partial frame is written.
func (c *Controller) playSip(ctx context.Context, text string, up, logLines int) bool {
	for _, frame := range c.sip {
		if ctx.Err() != nil {
			return false
		}
		c.drawSip(frame, text, up, logLines)
		c.sleep(ctx, c.opts.FrameDelay)
	}
	return true
}

// playClink renders each frame beside its mirror with the result status.
func (c *Controller) playClink(ctx context.Context, status string, up, logLines int) bool {
	for i := range c.sip {
		if ctx.Err() != nil {
			return false
		}
		c.drawClink(c.sip[i], c.mirror[i], status, up, logLines)
		c.sleep(ctx, c.opts.FrameDelay)
	}
	return true
}

// ctxSleep pauses for d or until ctx is cancelled, whichever comes first.
func ctxSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
