// Package cli provides a lightweight framework for building command-line applications. It features
// nested subcommand support, flexible flag parsing and colorized help text.
//
// Help pages are rendered by package [github.com/mfridman/colorcli/pkg/help]: the usage line,
// arguments, options and subcommands are aligned in columns, and names are colored by how deeply
// the command is nested, so a subcommand's help stands apart from its parent's. Color is only
// emitted when the output is a terminal and NO_COLOR is unset.
//
// The package prioritizes simplicity and ease of use, making it an ideal foundation for CLI
// applications that don't require the overhead of larger frameworks.
package cli
