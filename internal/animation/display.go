// ABOUTME: Terminal redraw helpers for the sip and clink phases
// ABOUTME: Rewrites the animation region in place with clear-to-end-of-line

package animation

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/sipping/internal/probe"
)

var (
	clinkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	spillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

// cursorUp moves the cursor up n rows; no-op for n <= 0.
func cursorUp(n int) string {
	if n > 0 {
		return fmt.Sprintf("\x1b[%dA", n)
	}
	return ""
}

// drawSip rewrites the animation region with one solo frame, skips the
// committed log lines, and rewrites the transient status line. Every
// line clears to end-of-line so a previous longer render leaves nothing
// behind. The single write keeps the redraw flicker-free.
func (c *Controller) drawSip(frame []string, text string, up, logLines int) {
	var b strings.Builder
	b.WriteString(cursorUp(up))
	for _, line := range frame {
		fmt.Fprintf(&b, "  %s\x1b[K\n", line)
	}
	b.WriteString(strings.Repeat("\n", logLines))
	fmt.Fprintf(&b, "  %s\x1b[K\n", text)
	io.WriteString(c.out, b.String())
}

// drawClink rewrites the region with the frame and its mirror side by
// side, sharing the same cursor bookkeeping as drawSip.
func (c *Controller) drawClink(left, right []string, text string, up, logLines int) {
	var b strings.Builder
	b.WriteString(cursorUp(up))
	for i := range left {
		b.WriteString("  ")
		b.WriteString(left[i])
		b.WriteString(" ")
		if i < len(right) {
			b.WriteString(right[i])
		}
		b.WriteString("\x1b[K\n")
	}
	b.WriteString(strings.Repeat("\n", logLines))
	fmt.Fprintf(&b, "  %s\x1b[K\n", text)
	io.WriteString(c.out, b.String())
}

// statusFor builds the clink-phase status line. The result marker is
// padded out to the column where the mirrored cup starts.
func (c *Controller) statusFor(sipText string, res probe.Result) string {
	pad := c.opts.Width + 1 - runewidth.StringWidth(sipText)
	if pad < 1 {
		pad = 1
	}
	sep := strings.Repeat(" ", pad)

	if res.Success {
		return fmt.Sprintf("%s%s%s %.0fms TTL=%d",
			sipText, sep, clinkStyle.Render("Clink!"), res.TimeMs, res.TTL)
	}
	return fmt.Sprintf("%s%s%s %s",
		sipText, sep, spillStyle.Render("Spill!"), res.Reason)
}
