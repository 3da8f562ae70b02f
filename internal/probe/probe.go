// ABOUTME: Single-shot ping probe shelling out to the system ping binary
// ABOUTME: Parses round-trip time and TTL from output with locale tolerance

package probe

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mauromedda/sipping/internal/log"
)

// defaultTimeout bounds the ping subprocess when the caller's context
// carries no deadline.
const defaultTimeout = 5 * time.Second

// Result is the outcome of one probe. Exactly one of the two shapes is
// populated: Success with TimeMs/TTL, or !Success with Reason.
type Result struct {
	Success bool
	TimeMs  float64
	TTL     int
	Reason  string
}

// Pinger performs one network round-trip probe. Implementations never
// return an error; failures fold into Result.Reason.
type Pinger interface {
	Ping(ctx context.Context, host string) Result
}

// SystemPinger probes by running the platform's ping command once.
type SystemPinger struct{}

// Ping runs a single ping against host and parses its output. The
// subprocess is bounded by the context, with a 5-second default timeout
// applied when the context has no deadline.
func (SystemPinger) Ping(ctx context.Context, host string) Result {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "ping", "-n", "1", "-w", "2000", host)
	} else {
		cmd = exec.CommandContext(ctx, "ping", "-c", "1", "-W", "2", host)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	out := stdout.String()
	log.Debug("ping %s: err=%v output=%q", host, err, out)

	// The ping binary exits non-zero on loss but may still print a reply
	// line, so the output is parsed regardless of the exit status.
	if res, ok := parseOutput(out); ok {
		return res
	}
	if err != nil && ctx.Err() == nil {
		if _, isExit := err.(*exec.ExitError); !isExit {
			// Could not run ping at all (e.g. binary missing).
			return Result{Reason: err.Error()}
		}
	}
	return Result{Reason: "Request timed out"}
}

var (
	// Accepts both . and , as decimal separator for locale tolerance.
	timeRe = regexp.MustCompile(`(?i)time[=<](\d+[.,]?\d*)\s*ms`)
	ttlRe  = regexp.MustCompile(`(?i)ttl[=](\d+)`)
)

// parseOutput extracts round-trip time and TTL from ping output. The
// second return value reports whether a reply was found at all.
func parseOutput(out string) (Result, bool) {
	tm := timeRe.FindStringSubmatch(out)
	if tm == nil {
		return Result{}, false
	}

	ms, err := strconv.ParseFloat(strings.ReplaceAll(tm[1], ",", "."), 64)
	if err != nil {
		return Result{}, false
	}

	ttl := 0
	if m := ttlRe.FindStringSubmatch(out); m != nil {
		ttl, _ = strconv.Atoi(m[1])
	}

	return Result{Success: true, TimeMs: ms, TTL: ttl}, true
}
