package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mfridman/colorcli/pkg/theme"
)

// ParseAndRun parses the command hierarchy and runs the command. A convenience function that
// combines [Parse] and [Run] into a single call. See [Parse] and [Run] for more details.
//
// If help was requested, the help text of the selected command is written to the standard output
// stream and an error wrapping [flag.ErrHelp] is returned.
func ParseAndRun(
	ctx context.Context,
	root *Command,
	args []string,
	options *RunOptions,
) error {
	if err := Parse(root, args); err != nil {
		if errors.Is(err, flag.ErrHelp) && root.state != nil {
			cmd, _ := root.terminal()
			return showHelp(cmd, checkAndSetRunOptions(options))
		}
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// HelpWidth is the page width help text is wrapped to. If zero, the width of the terminal
	// attached to Stdout is used, falling back to 80 columns.
	HelpWidth int

	// HelpTheme colors help text by command depth. If nil, [theme.Default] is used, which only
	// emits color when the output is a terminal and NO_COLOR is unset.
	HelpTheme *theme.Theme
}

// Run executes the current command. It returns an error if the command has not been parsed or if
// the command has no execution function.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, root *Command, options *RunOptions) error {
	if root == nil || root.state == nil || len(root.state.commandPath) == 0 {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)
	cmd, state := root.terminal()
	updateState(state, options)

	// Commands that only group subcommands print their help
	if cmd.Exec == nil {
		if cmd == root || len(cmd.SubCommands) > 0 {
			return showHelp(cmd, options)
		}
		return &NoExecError{Command: cmd}
	}

	if err := cmd.Exec(ctx, state); err != nil {
		if cliErr := (*Error)(nil); errors.As(err, &cliErr) && cliErr.code == ErrShowHelp {
			_ = showHelp(cmd, options)
		}
		return err
	}
	return nil
}

// showHelp writes the help text of cmd to the output stream and returns [flag.ErrHelp].
func showHelp(cmd *Command, opt *RunOptions) error {
	width := opt.HelpWidth
	if width <= 0 {
		width = terminalWidth(opt.Stdout)
	}
	if _, err := fmt.Fprintln(opt.Stdout, usage(cmd, width, opt.HelpTheme)); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return flag.ErrHelp
}

func updateState(s *State, opt *RunOptions) {
	if s.Stdin == nil {
		s.Stdin = opt.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = opt.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = opt.Stderr
	}
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
