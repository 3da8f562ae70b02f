// ABOUTME: Escape-minimizing color state machine for one rendered line
// ABOUTME: Emits SGR sequences only when the required fg/bg pair changes

package render

import (
	"fmt"
	"strings"
)

const reset = "\x1b[0m"

// rgb is an 8-bit color triple. Alpha never participates in escape
// emission, so it is stripped before colors reach the state machine.
type rgb struct {
	r, g, b uint8
}

// span is the color requirement of a single glyph column: an optional
// foreground and an optional background. The zero span is blank.
type span struct {
	fg, bg rgb
	hasFG  bool
	hasBG  bool
}

// colorState tracks the fg/bg pair currently in effect on a line. It is
// reset (zero value) at the start of every line and passed explicitly to
// the line renderer, keeping the encoding independently testable.
type colorState struct {
	cur    span
	active bool
}

// apply writes the escape sequences needed before a glyph with the given
// color requirement. Unchanged requirements emit nothing; a transition to
// blank emits one reset; a color change emits one reset (if colored)
// followed by exactly one combined 24-bit set sequence.
func (s *colorState) apply(b *strings.Builder, c span) {
	if c == s.cur {
		return
	}
	if !c.hasFG {
		if s.active {
			b.WriteString(reset)
			s.active = false
		}
	} else {
		if s.active {
			b.WriteString(reset)
		}
		if c.hasBG {
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm",
				c.fg.r, c.fg.g, c.fg.b, c.bg.r, c.bg.g, c.bg.b)
		} else {
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", c.fg.r, c.fg.g, c.fg.b)
		}
		s.active = true
	}
	s.cur = c
}

// finish emits the trailing reset if the line ends while colored.
func (s *colorState) finish(b *strings.Builder) {
	if s.active {
		b.WriteString(reset)
		s.active = false
	}
	s.cur = span{}
}
