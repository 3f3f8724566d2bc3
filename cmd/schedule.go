package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/eladshoshani/Investments/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd implements the "schedule" command.
type scheduleCmd struct {
	estimateFlags
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "prints the mortgage amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `invest schedule [-buy-price <price>] [-rate <rate>] [-loan-years <n>] ...

  Prints the year-by-year amortization schedule of the mortgage: remaining
  balance and cumulative interest after each year of constant installments.

`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.estimateFlags.register(f)
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := c.mortgage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid mortgage: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := renderer.ScheduleMarkdown(m.Loan(), "ILS")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not compute the schedule: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)

	return subcommands.ExitSuccess
}
