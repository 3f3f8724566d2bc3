// Package cmd implements the CLI application to estimate investments.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&estimateCmd{}, "apartment")
	c.Register(&scheduleCmd{}, "apartment")

	c.Register(&sweepCmd{}, "equity")
	c.Register(&fetchCmd{}, "equity")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "")
}

// printMarkdown renders markdown for the terminal. On any rendering problem
// it falls back to the raw markdown, which is readable enough.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
