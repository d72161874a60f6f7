package display

import (
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap breaks text at word boundaries so lines fit a DefaultWidth
// terminal. ANSI escape sequences pass through without counting toward
// the width.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
