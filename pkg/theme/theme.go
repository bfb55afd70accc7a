// Package theme maps a command's nesting depth and a help-text role to a terminal color.
//
// A [Theme] is a fixed, depth-indexed table of [Palette] entries that wraps around, so every depth
// has a palette. Colors are rendered by a [Renderer], which keeps the concrete escape-sequence
// backend swappable.
package theme

// Role is a styling slot within help output.
type Role int

const (
	// RoleCommand styles command names, including breadcrumb segments and the [command] token.
	RoleCommand Role = iota
	// RoleOption styles option terms and the [options] token.
	RoleOption
	// RoleArgument styles positional argument names.
	RoleArgument
)

func (r Role) String() string {
	switch r {
	case RoleCommand:
		return "command"
	case RoleOption:
		return "option"
	case RoleArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Color is a symbolic terminal color. The zero value, None, leaves text unstyled.
type Color int

const (
	None Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

func (c Color) String() string {
	switch c {
	case None:
		return "none"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Palette holds the role colors used at one depth.
type Palette struct {
	Command  Color
	Option   Color
	Argument Color
}

// Color returns the palette's color for role r.
func (p Palette) Color(r Role) Color {
	switch r {
	case RoleCommand:
		return p.Command
	case RoleOption:
		return p.Option
	case RoleArgument:
		return p.Argument
	default:
		return None
	}
}

// Style transforms plain text into styled text.
type Style func(string) string

// Theme is a depth-indexed palette table.
type Theme struct {
	// Palettes is indexed by depth modulo its length. An empty table disables color.
	Palettes []Palette

	// Render turns a color into escape sequences. If nil, [Auto] is used.
	Render Renderer
}

// Default cycles yellow/cyan/magenta and green/blue/red with period 4, rendered only when the
// terminal supports color.
var Default = Theme{
	Palettes: []Palette{
		{Command: Yellow, Option: Cyan, Argument: Magenta},
		{Command: Green, Option: Blue, Argument: Red},
		{Command: Yellow, Option: Cyan, Argument: Magenta},
		{Command: Green, Option: Blue, Argument: Red},
	},
	Render: Auto,
}

// At returns the palette for depth. Negative depths are treated as 0.
func (t Theme) At(depth int) Palette {
	if len(t.Palettes) == 0 {
		return Palette{}
	}
	if depth < 0 {
		depth = 0
	}
	return t.Palettes[depth%len(t.Palettes)]
}

// Style returns the styling function for role r at depth.
func (t Theme) Style(depth int, r Role) Style {
	c := t.At(depth).Color(r)
	render := t.Render
	if render == nil {
		render = Auto
	}
	return func(s string) string {
		return render(c, s)
	}
}

// WithRenderer returns a copy of t that renders colors with r.
func (t Theme) WithRenderer(r Renderer) Theme {
	t.Render = r
	return t
}
