package cli

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfridman/colorcli/pkg/textutil"
	"github.com/mfridman/colorcli/pkg/theme"
)

func newAppCommand() *Command {
	return &Command{
		Name:      "app",
		ShortHelp: "Builds the project",
		Flags: FlagsFunc(func(f *flag.FlagSet) {
			f.Bool("verbose", false, "enable verbose output")
		}),
		SubCommands: []*Command{
			{
				Name:      "build",
				Aliases:   []string{"b"},
				ShortHelp: "compile sources",
				Exec:      func(ctx context.Context, s *State) error { return nil },
			},
		},
	}
}

func renderHelp(t *testing.T, root *Command, th theme.Theme, args ...string) string {
	t.Helper()
	output := bytes.NewBuffer(nil)
	err := ParseAndRun(context.Background(), root, args, &RunOptions{
		Stdout:    output,
		HelpWidth: 80,
		HelpTheme: &th,
	})
	require.ErrorIs(t, err, flag.ErrHelp)
	return output.String()
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	plain := theme.Default.WithRenderer(theme.Plain)
	colored := theme.Default.WithRenderer(theme.ANSI)

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		expected := strings.Join([]string{
			"Usage: app [options] [command]",
			"",
			"Builds the project",
			"",
			"Options:",
			"  --verbose   enable verbose output",
			"  -h, --help  display help for command",
			"",
			"Commands:",
			"  build|b     compile sources",
			"",
		}, "\n")
		assert.Equal(t, expected, renderHelp(t, newAppCommand(), plain, "--help"))
	})
	t.Run("root colored", func(t *testing.T) {
		t.Parallel()
		out := renderHelp(t, newAppCommand(), colored, "-h")
		firstLine := strings.SplitN(out, "\n", 2)[0]
		assert.Equal(t,
			"Usage: "+theme.ANSI(theme.Yellow, "app")+" "+theme.ANSI(theme.Cyan, "[options]")+" "+theme.ANSI(theme.Green, "[command]"),
			firstLine,
		)
		assert.Equal(t, renderHelp(t, newAppCommand(), plain, "-h"), textutil.Strip(out))
	})
	t.Run("subcommand by alias", func(t *testing.T) {
		t.Parallel()
		expected := strings.Join([]string{
			"Usage: app build|b [options]",
			"",
			"compile sources",
			"",
			"Options:",
			"  -h, --help  display help for command",
			"",
			"Global Options:",
			"  --verbose   enable verbose output",
			"",
		}, "\n")
		assert.Equal(t, expected, renderHelp(t, newAppCommand(), plain, "b", "--help"))
	})
	t.Run("nested breadcrumb colors", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name: "app",
			SubCommands: []*Command{{
				Name: "remote",
				SubCommands: []*Command{{
					Name: "add",
					Exec: func(ctx context.Context, s *State) error { return nil },
				}},
			}},
		}
		out := renderHelp(t, root, colored, "remote", "add", "--help")
		firstLine := strings.SplitN(out, "\n", 2)[0]
		expected := "Usage: " +
			theme.ANSI(theme.Yellow, "app") + " " +
			theme.ANSI(theme.Green, "remote") + " " +
			theme.ANSI(theme.Yellow, "add") + " " +
			theme.ANSI(theme.Cyan, "[options]")
		assert.Equal(t, expected, firstLine)
	})
	t.Run("flags and arguments", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name:      "cp",
			ShortHelp: "Copy files",
			Flags: FlagsFunc(func(f *flag.FlagSet) {
				f.Int("n", 3, "number of retries")
				f.String("output", "", "write a report to `file`")
				f.Bool("secret", false, "not shown")
				f.String("mode", "", "copy mode")
			}),
			FlagsMetadata: []FlagMetadata{
				{Name: "secret", Hidden: true},
				{Name: "mode", Required: true},
			},
			ArgsMetadata: []ArgMetadata{
				{Name: "source", Required: true, ShortHelp: "file to copy"},
				{Name: "dest", ShortHelp: "target directory", Default: "."},
			},
			Exec: func(ctx context.Context, s *State) error { return nil },
		}
		expected := strings.Join([]string{
			"Usage: cp [options] <source> [dest]",
			"",
			"Copy files",
			"",
			"Arguments:",
			"  source           file to copy",
			"  dest             target directory (default: .)",
			"",
			"Options:",
			"  --mode <string>  copy mode (required)",
			"  -n <int>         number of retries (default: 3)",
			"  --output <file>  write a report to file",
			"  -h, --help       display help for command",
			"",
		}, "\n")
		assert.Equal(t, expected, renderHelp(t, root, plain, "--help"))
	})
	t.Run("hidden command not listed", func(t *testing.T) {
		t.Parallel()
		root := newAppCommand()
		root.SubCommands[0].Hidden = true
		out := renderHelp(t, root, plain, "--help")
		assert.NotContains(t, out, "Commands:")
		assert.NotContains(t, out, "[command]")
	})
	t.Run("usage func", func(t *testing.T) {
		t.Parallel()
		root := newAppCommand()
		root.UsageFunc = func(c *Command) string { return "custom help for " + c.Name }
		assert.Equal(t, "custom help for app\n", renderHelp(t, root, plain, "--help"))
	})
}

func TestDefaultUsage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DefaultUsage(nil))

	root := newAppCommand()
	require.NoError(t, Parse(root, []string{"build"}))
	out := textutil.Strip(DefaultUsage(root))
	assert.True(t, strings.HasPrefix(out, "Usage: app build|b [options]"), out)
	// Rendering is stable across calls.
	assert.Equal(t, DefaultUsage(root), DefaultUsage(root))
}

func TestLinkCommandsForgetsMovedDepths(t *testing.T) {
	t.Parallel()

	leaf := &Command{Name: "leaf", Exec: func(ctx context.Context, s *State) error { return nil }}
	a := &Command{Name: "a", SubCommands: []*Command{leaf}}
	require.NoError(t, Parse(a, nil))
	require.Equal(t, 1, depths.Depth(leaf.node()))

	b := &Command{Name: "b", SubCommands: []*Command{{Name: "mid", SubCommands: []*Command{leaf}}}}
	require.NoError(t, Parse(b, nil))
	assert.Equal(t, 2, depths.Depth(leaf.node()))
}
