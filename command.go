package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mfridman/colorcli/pkg/suggest"
)

// NoExecError is returned when a command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.path())
}

// Command represents a CLI command or subcommand within the application's command hierarchy.
type Command struct {
	// Name is always a single word representing the command's name. It is used to identify the
	// command in the command hierarchy and in help text.
	Name string

	// Aliases are alternative single-word names the command can be invoked by. The first alias is
	// shown next to the name in help text, e.g. "build|b".
	Aliases []string

	// Usage replaces the generated usage tokens that follow the command path in help text.
	//
	// Example: "[flags] <text...>"
	Usage string

	// ShortHelp is a brief description of the command's purpose. It is displayed in the help text
	// when the command is shown.
	ShortHelp string

	// UsageFunc is an optional function that can be used to generate a custom usage string for the
	// command. It receives the current command and should return the complete help text.
	UsageFunc func(*Command) string

	// Flags holds the command-specific flag definitions. Each command maintains its own flag set
	// for parsing arguments. Flags are inherited by subcommands.
	Flags *flag.FlagSet
	// FlagsMetadata is an optional list of flag information to extend the FlagSet with additional
	// metadata. This is useful for tracking required or hidden flags.
	FlagsMetadata []FlagMetadata

	// ArgsMetadata describes the positional arguments the command accepts, in order. It drives the
	// usage line and the Arguments section of the help text, and required arguments are checked
	// during parsing.
	ArgsMetadata []ArgMetadata

	// SubCommands is a list of nested commands that exist under this command.
	SubCommands []*Command

	// Hidden commands can be invoked but are not listed in their parent's help text.
	Hidden bool

	// Exec defines the command's execution logic. It receives the current application [State] and
	// returns an error if execution fails. This function is called when [Run] is invoked on the
	// command.
	Exec func(ctx context.Context, s *State) error

	state  *State
	parent *Command
}

func (c *Command) terminal() (*Command, *State) {
	if c.state == nil || len(c.state.commandPath) == 0 {
		return c, c.state
	}

	// Get the last command in the path - this is our terminal command
	terminalCmd := c.state.commandPath[len(c.state.commandPath)-1]
	return terminalCmd, c.state
}

// path returns the space-separated names from the root command down to c.
func (c *Command) path() string {
	var names []string
	for cmd := c; cmd != nil; cmd = cmd.parent {
		names = append([]string{cmd.Name}, names...)
	}
	return strings.Join(names, " ")
}

// FlagMetadata holds additional metadata for a flag, such as whether it is required.
type FlagMetadata struct {
	// Name is the flag's name. Must match the flag name in the flag set.
	Name string

	// Required indicates whether the flag is required.
	Required bool

	// Hidden flags are parsed as usual but not listed in help text.
	Hidden bool
}

// ArgMetadata describes a positional argument.
type ArgMetadata struct {
	// Name is the argument's name as shown in help text, e.g. "file".
	Name string

	// Required arguments must be provided. They must precede optional ones.
	Required bool

	// Variadic arguments consume all remaining positional arguments. Only the last argument may be
	// variadic.
	Variadic bool

	// ShortHelp describes the argument in the Arguments section of the help text.
	ShortHelp string

	// Default is the value the command uses when an optional argument is omitted. It is only
	// displayed in help text.
	Default string
}

// FlagsFunc is a helper function that creates a new [flag.FlagSet] and applies the given function
// to it. Intended for use in command definitions to simplify flag setup. Example usage:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	    f.String("output", "", "output file")
//	    f.Int("count", 0, "number of items")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// matches reports whether name is the command's name or one of its aliases.
func (c *Command) matches(name string) bool {
	if strings.EqualFold(c.Name, name) {
		return true
	}
	for _, alias := range c.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// findSubCommand searches for a subcommand by name or alias and returns it if found. Returns nil if
// no such subcommand exists.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if sub.matches(name) {
			return sub
		}
	}
	return nil
}

func (c *Command) formatUnknownCommandError(unknownCmd string) error {
	var known []suggest.Candidate
	for _, sub := range c.SubCommands {
		if sub.Hidden {
			continue
		}
		known = append(known, suggest.Candidate{Name: sub.Name, Aliases: sub.Aliases})
	}
	suggestions := suggest.FindSimilar(unknownCmd, known, 3)
	if len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q. Did you mean one of these?\n\t%s",
			unknownCmd,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("unknown command %q", unknownCmd)
}

func formatFlagName(name string) string {
	return "-" + name
}

func getCommandPath(commands []*Command) string {
	var commandPath []string
	for _, c := range commands {
		commandPath = append(commandPath, c.Name)
	}
	return strings.Join(commandPath, " ")
}
