// Package help renders colorized, column-aligned help pages for a tree of commands.
//
// The package never parses arguments or runs commands. A CLI framework exposes each command as a
// [Node] and calls a [Formatter] in place of its own help rendering. Colors come from a
// [theme.Theme] indexed by the command's depth in the tree, and all column arithmetic uses the
// visible width of styled text so ANSI escape sequences never disturb alignment.
package help

import "strings"

// Node is a read-only view of one command in a command tree.
//
// Implementations must be comparable and stable for the lifetime of the tree: node identity keys
// the depth cache. A struct wrapping a pointer to the framework's command type is typical.
type Node interface {
	Name() string
	Aliases() []string
	// Parent returns nil for the root command.
	Parent() Node
	Description() string
	// Usage returns a custom usage string that replaces the generated usage tokens, or "".
	Usage() string
	// Arguments returns the declared positional arguments in order.
	Arguments() []Argument
	// Options returns the visible options, including the implicit help option.
	Options() []Option
	// Commands returns the visible subcommands in declaration order.
	Commands() []Node
}

// Summarizer is implemented by nodes that have a short summary for their parent's command listing
// in addition to the full description shown on their own help page.
type Summarizer interface {
	Summary() string
}

func summary(n Node) string {
	if s, ok := n.(Summarizer); ok {
		if v := s.Summary(); v != "" {
			return v
		}
	}
	return n.Description()
}

// Argument is a declared positional argument.
type Argument struct {
	Name        string
	Required    bool
	Variadic    bool
	Description string
	Default     string
}

// Option is a visible option of a command.
type Option struct {
	// Term is the flag specification produced by the framework, e.g. "-v, --verbose" or
	// "--output <file>".
	Term        string
	Description string
	// Help marks the implicit help option.
	Help bool
	// Persistent options are also accepted by descendant commands and listed as global options
	// in their help.
	Persistent bool
}

// HumanReadableArgName returns <name> for required and [name] for optional arguments, with "..."
// appended to the name of variadic arguments.
func HumanReadableArgName(a Argument) string {
	name := a.Name
	if a.Variadic {
		name += "..."
	}
	if a.Required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

func displayName(n Node) string {
	name := n.Name()
	if aliases := n.Aliases(); len(aliases) > 0 && aliases[0] != "" {
		name += "|" + aliases[0]
	}
	return name
}

func hasNonHelpOption(n Node) bool {
	for _, o := range n.Options() {
		if !o.Help {
			return true
		}
	}
	return false
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
