package cli

import (
	"flag"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mfridman/colorcli/pkg/help"
	"github.com/mfridman/colorcli/pkg/theme"
)

// depths caches the depth of every command rendered by this package.
var depths = help.Depths

// DefaultUsage returns the help text of the command selected by the last [Parse], or of c itself
// if it has not been parsed. The page is wrapped to 80 columns and colored with [theme.Default].
//
// Parent commands are linked by [Parse]; rendering a subcommand of a tree that was never parsed
// shows it as a root command.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	cmd, _ := c.terminal()
	return usage(cmd, 0, nil)
}

func usage(cmd *Command, width int, th *theme.Theme) string {
	if cmd.UsageFunc != nil {
		return cmd.UsageFunc(cmd)
	}
	f := help.New(&help.Options{
		Width:  width,
		Theme:  th,
		Depths: depths,
	})
	return f.FormatHelp(cmd.node())
}

// terminalWidth returns the column count of w if it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

var helpOption = help.Option{
	Term:        "-h, --help",
	Description: "display help for command",
	Help:        true,
}

// commandNode exposes a Command to the help renderer.
type commandNode struct {
	cmd *Command
}

var _ help.Node = commandNode{}

func (c *Command) node() help.Node {
	return commandNode{cmd: c}
}

func (n commandNode) Name() string        { return n.cmd.Name }
func (n commandNode) Aliases() []string   { return n.cmd.Aliases }
func (n commandNode) Description() string { return n.cmd.ShortHelp }
func (n commandNode) Usage() string       { return n.cmd.Usage }

func (n commandNode) Parent() help.Node {
	if n.cmd.parent == nil {
		return nil
	}
	return n.cmd.parent.node()
}

func (n commandNode) Arguments() []help.Argument {
	args := make([]help.Argument, 0, len(n.cmd.ArgsMetadata))
	for _, a := range n.cmd.ArgsMetadata {
		args = append(args, help.Argument{
			Name:        a.Name,
			Required:    a.Required,
			Variadic:    a.Variadic,
			Description: a.ShortHelp,
			Default:     a.Default,
		})
	}
	return args
}

// Options lists the command's flags in lexical order followed by the implicit help flag. Every flag
// is inherited by subcommands.
func (n commandNode) Options() []help.Option {
	metadata := make(map[string]FlagMetadata, len(n.cmd.FlagsMetadata))
	for _, m := range n.cmd.FlagsMetadata {
		metadata[m.Name] = m
	}
	var opts []help.Option
	if n.cmd.Flags != nil {
		n.cmd.Flags.VisitAll(func(f *flag.Flag) {
			m := metadata[f.Name]
			if m.Hidden {
				return
			}
			opts = append(opts, help.Option{
				Term:        flagTerm(f),
				Description: flagDescription(f, m.Required),
				Persistent:  true,
			})
		})
	}
	return append(opts, helpOption)
}

func (n commandNode) Commands() []help.Node {
	var cmds []help.Node
	for _, sub := range n.cmd.SubCommands {
		if !sub.Hidden {
			cmds = append(cmds, sub.node())
		}
	}
	return cmds
}

// flagTerm returns "-x" for single-letter flags and "--name" otherwise, followed by a value
// placeholder for flags that take one.
func flagTerm(f *flag.Flag) string {
	term := "--" + f.Name
	if len(f.Name) == 1 {
		term = formatFlagName(f.Name)
	}
	if name, _ := flag.UnquoteUsage(f); name != "" {
		term += " <" + name + ">"
	}
	return term
}

func flagDescription(f *flag.Flag, required bool) string {
	_, desc := flag.UnquoteUsage(f)
	if !isZeroValue(f.DefValue) {
		desc += " (default: " + f.DefValue + ")"
	}
	if required {
		desc += " (required)"
	}
	return strings.TrimSpace(desc)
}

func isZeroValue(value string) bool {
	switch value {
	case "", "false", "0", "0s", "[]":
		return true
	}
	return false
}
