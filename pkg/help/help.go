package help

import (
	"regexp"
	"strings"

	"github.com/mfridman/colorcli/pkg/textutil"
	"github.com/mfridman/colorcli/pkg/theme"
)

const (
	// DefaultWidth is the page width used when none is configured.
	DefaultWidth = 80

	itemIndentWidth    = 2
	itemSeparatorWidth = 2
	// Descriptions narrower than this are left unwrapped.
	minColumnWidth = 40
)

// manuallyFormatted matches text with a line break followed by indentation.
var manuallyFormatted = regexp.MustCompile(`\n[ \t]+`)

// Options configures a [Formatter].
type Options struct {
	// Width is the page width in columns. If zero, [DefaultWidth] is used.
	Width int

	// Theme colors terms by depth. If nil, [theme.Default] is used.
	Theme *theme.Theme

	// Depths caches node depths. If nil, the shared [Depths] resolver is used.
	Depths *DepthResolver
}

// Formatter renders help pages. It holds no per-render state and may be reused.
type Formatter struct {
	width  int
	theme  theme.Theme
	depths *DepthResolver
}

// New returns a Formatter configured by opts. The options parameter may be nil, in which case
// default values are used.
func New(opts *Options) *Formatter {
	f := &Formatter{
		width:  DefaultWidth,
		theme:  theme.Default,
		depths: Depths,
	}
	if opts == nil {
		return f
	}
	if opts.Width > 0 {
		f.width = opts.Width
	}
	if opts.Theme != nil {
		f.theme = *opts.Theme
	}
	if opts.Depths != nil {
		f.depths = opts.Depths
	}
	return f
}

// Width returns the page width.
func (f *Formatter) Width() int {
	return f.width
}

// Depth returns the depth of n, 0 for the root command.
func (f *Formatter) Depth(n Node) int {
	return f.depths.Depth(n)
}

func (f *Formatter) style(n Node, r theme.Role) theme.Style {
	return f.theme.Style(f.Depth(n), r)
}

// FormatHelp returns the complete help page of n: usage line, description, then the Arguments,
// Options, Global Options and Commands sections. Empty sections are omitted.
func (f *Formatter) FormatHelp(n Node) string {
	termWidth := f.PadWidth(n)

	sections := []string{"Usage: " + f.CommandUsage(n)}
	if desc := n.Description(); desc != "" {
		sections = append(sections, f.wrap(desc, f.width, 0))
	}

	var items []string
	for _, a := range f.VisibleArguments(n) {
		items = append(items, f.FormatItem(f.ArgumentTerm(n, a), termWidth, argumentDescription(a)))
	}
	sections = appendSection(sections, "Arguments:", items)

	items = nil
	for _, o := range n.Options() {
		items = append(items, f.FormatItem(f.OptionTerm(n, o), termWidth, o.Description))
	}
	sections = appendSection(sections, "Options:", items)

	items = nil
	for _, g := range f.globalOptions(n) {
		items = append(items, f.FormatItem(f.globalOptionTerm(g), termWidth, g.Description))
	}
	sections = appendSection(sections, "Global Options:", items)

	items = nil
	for _, c := range n.Commands() {
		items = append(items, f.FormatItem(f.SubcommandTerm(c), termWidth, summary(c)))
	}
	sections = appendSection(sections, "Commands:", items)

	return strings.TrimRight(strings.Join(sections, "\n\n"), "\n")
}

// FormatItem lays out one list entry. The term is padded to termWidth plus a two column gap,
// measured in visible columns, and the description is wrapped to the page width with continuation
// lines aligned under its first line. Without a description the term is returned unchanged.
func (f *Formatter) FormatItem(term string, termWidth int, description string) string {
	if description == "" {
		return term
	}
	indent := termWidth + itemSeparatorWidth
	padded := textutil.PadRight(term, max(indent, textutil.Width(term)+itemSeparatorWidth))
	return padded + f.wrap(description, f.width-itemIndentWidth, indent)
}

// wrap breaks text to fit width columns when it starts at column indent, indenting continuation
// lines by indent spaces. Manually formatted text and text that would be squeezed into fewer than
// minColumnWidth columns is only re-indented.
func (f *Formatter) wrap(text string, width, indent int) string {
	columnWidth := width - indent
	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if columnWidth < minColumnWidth || manuallyFormatted.MatchString(text) {
		return strings.Join(paragraphs, "\n"+strings.Repeat(" ", indent))
	}
	var lines []string
	for _, p := range paragraphs {
		wrapped := textutil.Wrap(p, columnWidth)
		if len(wrapped) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapped...)
	}
	pad := strings.Repeat(" ", indent)
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func appendSection(sections []string, title string, items []string) []string {
	if len(items) == 0 {
		return sections
	}
	return append(sections, title+"\n"+textutil.Indent(strings.Join(items, "\n"), itemIndentWidth))
}

func argumentDescription(a Argument) string {
	if a.Default == "" {
		return a.Description
	}
	return joinNonEmpty(a.Description, "(default: "+a.Default+")")
}
