package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mfridman/xflag"
)

// Parse traverses the command hierarchy and parses arguments. It returns an error if parsing fails
// at any point.
//
// This function is the main entry point for parsing command-line arguments and should be called
// with the root command and the arguments to parse, typically os.Args[1:]. Once parsing is
// complete, the root command is ready to be executed with the [Run] function.
//
// If a help flag (-h, --help) is encountered, Parse selects the command the help was requested for
// and returns an error wrapping [flag.ErrHelp]. [ParseAndRun] prints the help text in that case.
func Parse(root *Command, args []string) error {
	if root == nil {
		return errors.New("failed to parse: root command is nil")
	}
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	linkCommands(root, false)

	// Reset root state, a command tree may be parsed more than once
	root.state = &State{}
	if root.Flags == nil {
		root.Flags = flag.NewFlagSet(root.Name, flag.ContinueOnError)
	}

	// First split args at the -- delimiter if present
	var argsToParse []string
	var remainingArgs []string
	for i, arg := range args {
		if arg == "--" {
			argsToParse = args[:i]
			remainingArgs = args[i+1:]
			break
		}
	}
	if argsToParse == nil {
		argsToParse = args
	}

	current := root
	commandPath := []*Command{root}

	// First pass: process commands and build the command path. This lets us capture help requests
	// before any flag parsing errors
	for _, arg := range argsToParse {
		if isHelpFlag(arg) {
			root.state.commandPath = commandPath
			return flag.ErrHelp
		}

		// Skip anything that looks like a flag
		if strings.HasPrefix(arg, "-") {
			continue
		}

		// Try to traverse to subcommand
		if len(current.SubCommands) > 0 {
			if sub := current.findSubCommand(arg); sub != nil {
				if sub.Flags == nil {
					sub.Flags = flag.NewFlagSet(sub.Name, flag.ContinueOnError)
				}
				current = sub
				commandPath = append(commandPath, sub)
				continue
			}
			return current.formatUnknownCommandError(arg)
		}
		break
	}
	root.state.commandPath = commandPath

	if current.Exec == nil && len(current.SubCommands) == 0 && current != root {
		return &NoExecError{Command: current}
	}

	// Create combined flags with all parent flags
	combinedFlags := flag.NewFlagSet(root.Name, flag.ContinueOnError)
	combinedFlags.SetOutput(io.Discard)

	// Add flags in reverse order for proper precedence
	for i := len(commandPath) - 1; i >= 0; i-- {
		cmd := commandPath[i]
		if cmd.Flags != nil {
			cmd.Flags.VisitAll(func(f *flag.Flag) {
				if combinedFlags.Lookup(f.Name) == nil {
					combinedFlags.Var(f.Value, f.Name, f.Usage)
				}
			})
		}
	}

	// Let ParseToEnd handle the flag parsing
	if err := xflag.ParseToEnd(combinedFlags, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", current.Name, err)
	}

	if err := checkRequiredFlags(current, argsToParse); err != nil {
		return err
	}

	// Skip past command names in remaining args from flag parsing
	parsed := combinedFlags.Args()
	startIdx := 0
	for _, arg := range parsed {
		if startIdx+1 >= len(commandPath) || !commandPath[startIdx+1].matches(arg) {
			break
		}
		startIdx++
	}

	// Combine remaining parsed args and everything after delimiter
	var finalArgs []string
	if startIdx < len(parsed) {
		finalArgs = append(finalArgs, parsed[startIdx:]...)
	}
	if len(remainingArgs) > 0 {
		finalArgs = append(finalArgs, remainingArgs...)
	}
	if err := checkRequiredArgs(current, finalArgs); err != nil {
		return err
	}
	root.state.Args = finalArgs

	return nil
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--h" || arg == "-help" || arg == "--help"
}

// checkRequiredFlags inspects the args for the presence of every required flag of cmd.
func checkRequiredFlags(cmd *Command, args []string) error {
	var missingFlags []string
	for _, flagMetadata := range cmd.FlagsMetadata {
		if !flagMetadata.Required {
			continue
		}
		found := false
		for _, arg := range args {
			// Match either -flag or --flag
			if arg == "-"+flagMetadata.Name || arg == "--"+flagMetadata.Name ||
				strings.HasPrefix(arg, "-"+flagMetadata.Name+"=") ||
				strings.HasPrefix(arg, "--"+flagMetadata.Name+"=") {
				found = true
				break
			}
		}
		if !found {
			missingFlags = append(missingFlags, formatFlagName(flagMetadata.Name))
		}
	}
	if len(missingFlags) > 0 {
		msg := "required flag"
		if len(missingFlags) > 1 {
			msg += "s"
		}
		return fmt.Errorf("command %q: %s %q not set", cmd.path(), msg, strings.Join(missingFlags, ", "))
	}
	return nil
}

func checkRequiredArgs(cmd *Command, args []string) error {
	for i, arg := range cmd.ArgsMetadata {
		if arg.Required && i >= len(args) {
			return fmt.Errorf("command %q: missing required argument %q", cmd.path(), arg.Name)
		}
	}
	return nil
}

// linkCommands points every subcommand at its parent. Commands that move to a different parent, and
// their descendants, have their cached help depth dropped.
func linkCommands(c *Command, moved bool) {
	if moved {
		depths.Forget(c.node())
	}
	for _, sub := range c.SubCommands {
		subMoved := moved || sub.parent != c
		sub.parent = c
		linkCommands(sub, subMoved)
	}
}

func validateCommands(root *Command, path []*Command) error {
	names := getCommandPath(path)
	if root.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", names)
	}
	if slices.Contains(path, root) {
		return fmt.Errorf("command %q appears in its own path %q", root.Name, names)
	}
	// Ensure name has no spaces
	if strings.Contains(root.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", root.Name)
	}
	for _, alias := range root.Aliases {
		if alias == "" || strings.Contains(alias, " ") {
			return fmt.Errorf("command %q: alias %q must be a single word", root.Name, alias)
		}
	}

	// Add current command to path for nested validation
	currentPath := append(slices.Clone(path), root)
	if err := validateMetadata(root, getCommandPath(currentPath)); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, sub := range root.SubCommands {
		if sub == nil {
			return fmt.Errorf("command %q: nil subcommand", getCommandPath(currentPath))
		}
		for _, name := range append([]string{sub.Name}, sub.Aliases...) {
			key := strings.ToLower(name)
			if seen[key] {
				return fmt.Errorf("command %q: duplicate subcommand name or alias %q", getCommandPath(currentPath), name)
			}
			seen[key] = true
		}
	}

	// Recursively validate all subcommands
	for _, sub := range root.SubCommands {
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}

func validateMetadata(c *Command, path string) error {
	for _, flagMetadata := range c.FlagsMetadata {
		if c.Flags == nil || c.Flags.Lookup(flagMetadata.Name) == nil {
			kind := "flag"
			if flagMetadata.Required {
				kind = "required flag"
			}
			return fmt.Errorf("command %q: internal error: %s %s not found in flag set",
				path, kind, formatFlagName(flagMetadata.Name))
		}
	}
	optional := false
	for i, arg := range c.ArgsMetadata {
		if arg.Name == "" || strings.Contains(arg.Name, " ") {
			return fmt.Errorf("command %q: argument name %q must be a single word", path, arg.Name)
		}
		if arg.Variadic && i != len(c.ArgsMetadata)-1 {
			return fmt.Errorf("command %q: only the last argument can be variadic, got %q", path, arg.Name)
		}
		if arg.Required && optional {
			return fmt.Errorf("command %q: required argument %q follows an optional argument", path, arg.Name)
		}
		if !arg.Required {
			optional = true
		}
	}
	return nil
}
