// Package cobrahelp renders help for [github.com/spf13/cobra] command trees with the colorized,
// depth-themed layout of package help.
//
//	root := &cobra.Command{Use: "app"}
//	cobrahelp.Install(root, nil)
package cobrahelp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mfridman/colorcli/pkg/help"
)

// Install replaces the help and usage functions of root, and so of every descendant that doesn't
// set its own, with a [help.Formatter] configured by opts. The options parameter may be nil.
func Install(root *cobra.Command, opts *help.Options) {
	f := help.New(opts)
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), f.FormatHelp(NewNode(cmd)))
	})
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		_, err := fmt.Fprintln(cmd.OutOrStderr(), f.FormatHelp(NewNode(cmd)))
		return err
	})
}

// NewNode returns the help view of cmd.
func NewNode(cmd *cobra.Command) help.Node {
	return node{cmd: cmd}
}

type node struct {
	cmd *cobra.Command
}

func (n node) Name() string      { return n.cmd.Name() }
func (n node) Aliases() []string { return n.cmd.Aliases }
func (n node) Summary() string   { return n.cmd.Short }

// Usage is always generated; the Use line only contributes argument names.
func (n node) Usage() string { return "" }

func (n node) Parent() help.Node {
	if !n.cmd.HasParent() {
		return nil
	}
	return node{cmd: n.cmd.Parent()}
}

func (n node) Description() string {
	if n.cmd.Long != "" {
		return n.cmd.Long
	}
	return n.cmd.Short
}

// Arguments parses the placeholders that follow the command name in the Use line, e.g.
// "deploy <env> [services...]".
func (n node) Arguments() []help.Argument {
	fields := strings.Fields(n.cmd.Use)
	if len(fields) < 2 {
		return nil
	}
	var args []help.Argument
	for _, field := range fields[1:] {
		var a help.Argument
		switch {
		case strings.HasPrefix(field, "<") && strings.HasSuffix(field, ">"):
			a.Required = true
		case strings.HasPrefix(field, "[") && strings.HasSuffix(field, "]"):
		default:
			continue
		}
		name := field[1 : len(field)-1]
		if strings.HasSuffix(name, "...") {
			a.Variadic = true
			name = strings.TrimSuffix(name, "...")
		}
		switch strings.ToLower(name) {
		case "", "flags", "options", "command":
			continue
		}
		a.Name = name
		args = append(args, a)
	}
	return args
}

func (n node) Options() []help.Option {
	var (
		opts    []help.Option
		hasHelp bool
	)
	persistent := n.cmd.PersistentFlags()
	n.cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		isHelp := f.Name == "help"
		hasHelp = hasHelp || isHelp
		opts = append(opts, help.Option{
			Term:        flagTerm(f),
			Description: flagDescription(f),
			Help:        isHelp,
			Persistent:  persistent.Lookup(f.Name) != nil,
		})
	})
	// Cobra registers the help flag lazily, on the command being executed.
	if !hasHelp {
		opts = append(opts, help.Option{
			Term:        "-h, --help",
			Description: "help for " + n.cmd.Name(),
			Help:        true,
		})
	}
	return opts
}

func (n node) Commands() []help.Node {
	var cmds []help.Node
	for _, sub := range n.cmd.Commands() {
		if sub.IsAvailableCommand() {
			cmds = append(cmds, node{cmd: sub})
		}
	}
	return cmds
}

func flagTerm(f *pflag.Flag) string {
	term := "--" + f.Name
	if f.Shorthand != "" && f.ShorthandDeprecated == "" {
		term = "-" + f.Shorthand + ", " + term
	}
	if varname, _ := pflag.UnquoteUsage(f); varname != "" {
		term += " <" + varname + ">"
	}
	return term
}

func flagDescription(f *pflag.Flag) string {
	_, usage := pflag.UnquoteUsage(f)
	switch f.DefValue {
	case "", "false", "0", "0s", "[]":
	default:
		usage += " (default: " + f.DefValue + ")"
	}
	if f.Deprecated != "" {
		usage += " (deprecated: " + f.Deprecated + ")"
	}
	return strings.TrimSpace(usage)
}
