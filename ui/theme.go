package ui

import (
	"strings"

	"github.com/gookit/color"
)

var colorNames = map[string]color.Color{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgGray,
}

// Theme colours the terminal output. A disabled theme prints plain text.
type Theme struct {
	Enabled bool
	Own     color.Style
	Other   color.Style
	Header  color.Style
	Error   color.Style
	Muted   color.Style
}

// NewTheme builds a theme from colour names. Unknown names fall back to
// cyan for own messages and white for the others.
func NewTheme(enabled bool, own, other string) Theme {
	return Theme{
		Enabled: enabled,
		Own:     color.New(named(own, color.FgCyan), color.OpBold),
		Other:   color.New(named(other, color.FgWhite)),
		Header:  color.New(color.BgBlack, color.FgGreen),
		Error:   color.New(color.FgRed),
		Muted:   color.New(color.FgGray),
	}
}

func (t Theme) paint(style color.Style, text string) string {
	if !t.Enabled {
		return text
	}
	return style.Render(text)
}

func named(name string, fallback color.Color) color.Color {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return fallback
}
