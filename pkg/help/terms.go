package help

import (
	"strings"

	"github.com/mfridman/colorcli/pkg/textutil"
	"github.com/mfridman/colorcli/pkg/theme"
)

// CommandUsage returns the usage line of n, without the "Usage: " prefix.
//
// Each breadcrumb segment is styled with the command color of its own depth. Options are styled
// at the depth of n and the [command] token at the depth of its children. A custom usage string
// replaces the generated tokens and is used verbatim.
func (f *Formatter) CommandUsage(n Node) string {
	depth := f.Depth(n)

	// Walk exactly depth steps; the resolver already rejected cyclic chains.
	breadcrumb := make([]string, depth)
	p := n
	for d := depth - 1; d >= 0; d-- {
		p = p.Parent()
		breadcrumb[d] = f.theme.Style(d, theme.RoleCommand)(p.Name())
	}

	tokens := n.Usage()
	if tokens == "" {
		tokens = f.usageTokens(n, depth)
	}
	name := f.theme.Style(depth, theme.RoleCommand)(displayName(n))
	return joinNonEmpty(strings.Join(breadcrumb, " "), name, tokens)
}

func (f *Formatter) usageTokens(n Node, depth int) string {
	var tokens []string
	if len(n.Options()) > 0 {
		tokens = append(tokens, f.theme.Style(depth, theme.RoleOption)("[options]"))
	}
	if len(n.Commands()) > 0 {
		tokens = append(tokens, f.theme.Style(depth+1, theme.RoleCommand)("[command]"))
	}
	argStyle := f.theme.Style(depth, theme.RoleArgument)
	for _, a := range n.Arguments() {
		tokens = append(tokens, argStyle(HumanReadableArgName(a)))
	}
	return strings.Join(tokens, " ")
}

// SubcommandTerm returns the one-line summary of n used in its parent's command listing. It ignores
// custom usage strings and nested commands.
func (f *Formatter) SubcommandTerm(n Node) string {
	depth := f.Depth(n)
	name := f.theme.Style(depth, theme.RoleCommand)(displayName(n))
	var options string
	if hasNonHelpOption(n) {
		options = f.theme.Style(depth, theme.RoleOption)("[options]")
	}
	argStyle := f.theme.Style(depth, theme.RoleArgument)
	args := make([]string, 0, len(n.Arguments()))
	for _, a := range n.Arguments() {
		args = append(args, argStyle(HumanReadableArgName(a)))
	}
	return joinNonEmpty(name, options, strings.Join(args, " "))
}

// OptionTerm styles the framework's term for o, an option of n.
func (f *Formatter) OptionTerm(n Node, o Option) string {
	return f.style(n, theme.RoleOption)(o.Term)
}

// ArgumentTerm styles the name of a, an argument of n.
func (f *Formatter) ArgumentTerm(n Node, a Argument) string {
	return f.style(n, theme.RoleArgument)(a.Name)
}

// VisibleArguments returns the arguments listed in the Arguments section: all declared arguments
// if any of them is documented, otherwise none.
func (f *Formatter) VisibleArguments(n Node) []Argument {
	args := n.Arguments()
	for _, a := range args {
		if a.Description != "" || a.Default != "" {
			return args
		}
	}
	return nil
}

// globalOption is a persistent option inherited from the ancestor at depth.
type globalOption struct {
	Option
	depth int
}

// globalOptions returns the persistent options of the ancestors of n, nearest ancestor first. An
// option shadowed by one closer to n is skipped.
func (f *Formatter) globalOptions(n Node) []globalOption {
	seen := make(map[string]bool)
	for _, o := range n.Options() {
		seen[o.Term] = true
	}
	var out []globalOption
	p := n
	for d := f.Depth(n) - 1; d >= 0; d-- {
		p = p.Parent()
		for _, o := range p.Options() {
			if !o.Persistent || o.Help || seen[o.Term] {
				continue
			}
			seen[o.Term] = true
			out = append(out, globalOption{Option: o, depth: d})
		}
	}
	return out
}

func (f *Formatter) globalOptionTerm(g globalOption) string {
	return f.theme.Style(g.depth, theme.RoleOption)(g.Term)
}

// LongestOptionTermLength returns the widest visible option term of n.
func (f *Formatter) LongestOptionTermLength(n Node) int {
	longest := 0
	for _, o := range n.Options() {
		longest = max(longest, textutil.Width(f.OptionTerm(n, o)))
	}
	return longest
}

// LongestGlobalOptionTermLength returns the widest inherited option term of n.
func (f *Formatter) LongestGlobalOptionTermLength(n Node) int {
	longest := 0
	for _, g := range f.globalOptions(n) {
		longest = max(longest, textutil.Width(f.globalOptionTerm(g)))
	}
	return longest
}

// LongestSubcommandTermLength returns the widest visible subcommand term of n.
func (f *Formatter) LongestSubcommandTermLength(n Node) int {
	longest := 0
	for _, c := range n.Commands() {
		longest = max(longest, textutil.Width(f.SubcommandTerm(c)))
	}
	return longest
}

// LongestArgumentTermLength returns the widest visible argument term of n.
func (f *Formatter) LongestArgumentTermLength(n Node) int {
	longest := 0
	for _, a := range f.VisibleArguments(n) {
		longest = max(longest, textutil.Width(f.ArgumentTerm(n, a)))
	}
	return longest
}

// PadWidth returns the term column width shared by every section of the help page of n.
func (f *Formatter) PadWidth(n Node) int {
	return max(
		f.LongestOptionTermLength(n),
		f.LongestGlobalOptionTermLength(n),
		f.LongestSubcommandTermLength(n),
		f.LongestArgumentTermLength(n),
	)
}
