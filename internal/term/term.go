// ABOUTME: Terminal width detection and cursor visibility control
// ABOUTME: Backed by golang.org/x/term; width is sampled once per run

package term

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"

	// defaultWidth is assumed when stdout is not a terminal.
	defaultWidth = 80

	// statusReserve is the number of columns kept free for the gap between
	// the two side-by-side animations and the status text.
	statusReserve = 30

	// minAnimWidth is the narrowest animation that still reads as a cup.
	minAnimWidth = 4
)

// Width returns the current terminal column count, or a default when
// stdout is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// CapWidth clamps the requested animation width so two side-by-side
// animations plus status text fit in termCols. The cap only applies when
// it is positive and below the request; the floor is minAnimWidth.
func CapWidth(want, termCols int) int {
	max := (termCols - statusReserve) / 2
	if max > 0 && want > max {
		if max < minAnimWidth {
			return minAnimWidth
		}
		return max
	}
	return want
}

// HideCursor makes the cursor invisible on w.
func HideCursor(w io.Writer) {
	io.WriteString(w, hideCursor)
}

// ShowCursor restores cursor visibility on w.
func ShowCursor(w io.Writer) {
	io.WriteString(w, showCursor)
}
