package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eladshoshani/Investments"
	"github.com/eladshoshani/Investments/renderer"
	"github.com/google/subcommands"
)

// sweepCmd implements the "sweep" command.
type sweepCmd struct {
	file         string
	horizons     string
	buyingPeriod int
	moneyMarket  float64
	capital      float64
	plotFile     string
}

func (*sweepCmd) Name() string { return "sweep" }
func (*sweepCmd) Synopsis() string {
	return "compares lump-sum and DCA entries over every historical start month"
}
func (*sweepCmd) Usage() string {
	return `invest sweep -file <prices.csv> [-horizons 2,5,10,25] [-buying-period <months>] [-plot out.png]

  Replays a lump-sum entry and a dollar-cost-averaging entry at every
  historical start month of the price series, for each investment horizon,
  and reports the distribution of realized returns.

Usage Examples:
# Sweep the S&P 500 history with a one year buying period.
$ invest sweep -file SPX.csv -buying-period 12

# Write the per-entry-point returns chart next to the report.
$ invest sweep -file SPX.csv -plot sweep.png

`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file with Date and Close columns")
	f.StringVar(&c.horizons, "horizons", "", "comma-separated investment horizons in years (default 2,5,10,25)")
	f.IntVar(&c.buyingPeriod, "buying-period", 12, "months over which the DCA plan buys in")
	f.Float64Var(&c.moneyMarket, "money-market", 0.03, "annual rate earned by capital waiting to be invested")
	f.Float64Var(&c.capital, "capital", 100_000, "capital to deploy")
	f.StringVar(&c.plotFile, "plot", "", "write a PNG chart of the per-entry-point returns to this file")
}

// parseHorizons parses the -horizons flag. An empty flag means the defaults.
func (c *sweepCmd) parseHorizons() ([]int, error) {
	if c.horizons == "" {
		return nil, nil
	}
	var years []int
	for _, field := range strings.Split(c.horizons, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid horizon %q: %w", field, err)
		}
		years = append(years, y)
	}
	return years, nil
}

func (c *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintf(os.Stderr, "Error: -file is required. Fetch one with 'invest fetch'.\n")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening prices file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	series, err := investments.ImportPrices(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading prices file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	years, err := c.parseHorizons()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	plan := investments.DCAPlan{
		BuyingPeriodMonths: c.buyingPeriod,
		MoneyMarketRate:    c.moneyMarket,
		InitialCapital:     c.capital,
	}
	report, err := investments.NewSweepReport(series, years, plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not compute the sweep: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SweepMarkdown(report))

	if c.plotFile != "" {
		out, err := os.Create(c.plotFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating plot file %q: %v\n", c.plotFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := renderer.SweepPNG(out, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing plot file %q: %v\n", c.plotFile, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote returns chart to %s\n", c.plotFile)
	}

	return subcommands.ExitSuccess
}
