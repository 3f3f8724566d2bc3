// Package agent implements the interactive AI assistant behind the assist
// command. It wraps a Gemini chat seeded with the rendered reports so the
// advisor can discuss the user's actual numbers.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Expert
}

// New creates a new Agent around the given advisor.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout) and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, advisor *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
	}
}

// Start creates the underlying Gemini chat session.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	return a.Advisor.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
//
// Extra prompts are consumed before reading from the user, which lets the
// command line pass an initial question.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Advisor.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to invest assist. Type 'bye' to exit.")

	// REPL loop
	for {
		// Print the prompt
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
