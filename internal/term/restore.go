// ABOUTME: RestoreOnPanic recovers from panics, re-shows the cursor, and exits
// ABOUTME: Intended for use as a deferred call in the main goroutine

package term

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main once the cursor
// has been hidden. On panic it restores cursor visibility, prints the
// panic value and stack trace, then exits with code 1.
func RestoreOnPanic() {
	r := recover()
	if r == nil {
		return
	}

	ShowCursor(os.Stdout)

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
