package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eladshoshani/Investments/agent"
	"github.com/eladshoshani/Investments/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	estimateFlags
}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short one-line synopsis of the command.
func (*assistCmd) Synopsis() string {
	return "Discuss the apartment estimate with an AI advisor."
}

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `assist [estimate flags] [initial question]:
  Computes the apartment estimate and starts an interactive session with an
  AI advisor seeded with the resulting report.

  Requires Gemini credentials in the environment (GEMINI_API_KEY).
`
}

// SetFlags sets the flags for the command.
func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.estimateFlags.register(f)
}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	summary, err := c.summary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not compute the estimate: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.EstimateMarkdown(summary)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(report)
	a := agent.New(os.Stdout, os.Stdin, advisor)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
