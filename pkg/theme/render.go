package theme

import "github.com/fatih/color"

// Renderer styles s in color c.
type Renderer func(c Color, s string) string

var attributes = map[Color]color.Attribute{
	Red:     color.FgRed,
	Green:   color.FgGreen,
	Yellow:  color.FgYellow,
	Blue:    color.FgBlue,
	Magenta: color.FgMagenta,
	Cyan:    color.FgCyan,
	White:   color.FgWhite,
}

// ANSI wraps s in SGR escape sequences regardless of whether the output is a terminal.
func ANSI(c Color, s string) string {
	attr, ok := attributes[c]
	if !ok {
		return s
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(s)
}

// Auto behaves like [ANSI] unless color output is disabled, either because NO_COLOR is set or
// because stdout is not a terminal.
func Auto(c Color, s string) string {
	if color.NoColor {
		return s
	}
	return ANSI(c, s)
}

// Plain never styles text.
func Plain(_ Color, s string) string {
	return s
}
