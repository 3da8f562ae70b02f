// ABOUTME: Per-run probe statistics and the end-of-run summary formatter
// ABOUTME: A cycle counts as sent once its sip phase starts

package animation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var summaryStyle = lipgloss.NewStyle().Bold(true)

// Stats accumulates probe outcomes across a session. LogLines is the
// number of permanently committed status lines; it only grows, and an
// interrupted cycle never contributes to it.
type Stats struct {
	Sent     int
	Received int
	LogLines int
	Times    []float64
}

// Loss returns the spill percentage over all sent cycles.
func (s Stats) Loss() float64 {
	if s.Sent == 0 {
		return 0
	}
	return float64(s.Sent-s.Received) / float64(s.Sent) * 100
}

// MinAvgMax returns round-trip aggregates; ok is false when no probe
// succeeded.
func (s Stats) MinAvgMax() (min, avg, max float64, ok bool) {
	if len(s.Times) == 0 {
		return 0, 0, 0, false
	}
	min, max = s.Times[0], s.Times[0]
	var sum float64
	for _, t := range s.Times {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
		sum += t
	}
	return min, sum / float64(len(s.Times)), max, true
}

// Summary formats the ping-style statistics block for host.
func (s Stats) Summary(host string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", summaryStyle.Render(fmt.Sprintf("* Sip-ping statistics for %s *", host)))
	fmt.Fprintf(&b, "    %d sip, %d clink, %.0f%% spill\n", s.Sent, s.Received, s.Loss())
	if min, avg, max, ok := s.MinAvgMax(); ok {
		fmt.Fprintf(&b, "    min/avg/max = %.0f/%.0f/%.0f ms\n", min, avg, max)
	}
	return b.String()
}
