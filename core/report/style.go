package report

import "github.com/jedib0t/go-pretty/v6/text"

// Style carries the color and mark set for the text renderer. Callers
// inject it so the same renderer serves terminals, logs, and tests.
type Style struct {
	Heading text.Colors
	Good    text.Colors
	Bad     text.Colors
	Note    text.Colors

	Check string
	Cross string
}

// DefaultStyle is the colored terminal style.
func DefaultStyle() Style {
	return Style{
		Heading: text.Colors{text.FgYellow},
		Good:    text.Colors{text.FgGreen},
		Bad:     text.Colors{text.FgRed},
		Note:    text.Colors{text.FgYellow},
		Check:   "✓",
		Cross:   "✗",
	}
}

// PlainStyle renders without any color codes, for piped output.
func PlainStyle() Style {
	return Style{
		Check: "✓",
		Cross: "✗",
	}
}
