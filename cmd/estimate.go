package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/eladshoshani/Investments"
	"github.com/eladshoshani/Investments/renderer"
	"github.com/google/subcommands"
)

// estimateFlags are the apartment deal parameters, shared by every command
// that needs a mortgage and a set of assumptions. Defaults describe a typical
// Tel-Aviv area deal so that a bare `invest estimate` prints something
// meaningful to start tweaking from.
type estimateFlags struct {
	buyPrice      float64
	assessedValue float64
	financing     float64
	rate          float64
	loanYears     int

	termYears   int
	growth      float64
	yield       float64
	stepYears   int
	market      float64
	buyExpenses float64
	sellRate    float64
	replacement float64
	policy      string
}

func (e *estimateFlags) register(f *flag.FlagSet) {
	f.Float64Var(&e.buyPrice, "buy-price", 1_930_000, "negotiated purchase price")
	f.Float64Var(&e.assessedValue, "assessed-value", 1_900_000, "assessor's valuation of the apartment")
	f.Float64Var(&e.financing, "financing", 0.75, "share of the purchase financed by the mortgage, within [0, 1]")
	f.Float64Var(&e.rate, "rate", 0.045, "annual mortgage interest rate")
	f.IntVar(&e.loanYears, "loan-years", 25, "mortgage term in years")

	f.IntVar(&e.termYears, "years", 7, "investment term in years, until the apartment is sold")
	f.Float64Var(&e.growth, "growth", 0.065, "annual apartment price growth")
	f.Float64Var(&e.yield, "yield", 0.023, "annual rent as a share of the assessed value")
	f.IntVar(&e.stepYears, "rent-step", 1, "years between rent increases")
	f.Float64Var(&e.market, "market", 0.075, "annual market alternative return, net of tax")
	f.Float64Var(&e.buyExpenses, "buy-expenses", 100_000, "purchase expenses: lawyer, broker, purchase tax")
	f.Float64Var(&e.sellRate, "sell-rate", investments.DefaultSellExpenseRate, "share of the sell price lost to sale expenses")
	f.Float64Var(&e.replacement, "replacement", 3_150_000, "current value of the replacement apartment (Pinuy-Binuy); 0 projects from the purchase price")
	f.StringVar(&e.policy, "policy", investments.DeductBalanceOnly.String(), "interest policy: 'balance' or 'balance+interest'")
}

// mortgage builds the Mortgage from the flags.
func (e *estimateFlags) mortgage() (investments.Mortgage, error) {
	return investments.NewMortgage(e.buyPrice, e.assessedValue, e.financing, e.rate, e.loanYears)
}

// assumptions builds the Assumptions from the flags.
func (e *estimateFlags) assumptions() (investments.Assumptions, error) {
	policy, err := investments.ParseInterestPolicy(e.policy)
	if err != nil {
		return investments.Assumptions{}, err
	}
	a := investments.Assumptions{
		TermYears:       e.termYears,
		PriceGrowth:     e.growth,
		RentYield:       e.yield,
		RentStepYears:   e.stepYears,
		MarketReturn:    e.market,
		BuyExpenses:     e.buyExpenses,
		SellExpenseRate: e.sellRate,
		Policy:          policy,
	}
	if e.replacement > 0 {
		a.Replacement = &e.replacement
	}
	return a, nil
}

// summary runs the estimate from the flags.
func (e *estimateFlags) summary() (*investments.InvestmentSummary, error) {
	m, err := e.mortgage()
	if err != nil {
		return nil, err
	}
	a, err := e.assumptions()
	if err != nil {
		return nil, err
	}
	return investments.Estimate(m, a)
}

// estimateCmd implements the "estimate" command.
type estimateCmd struct {
	estimateFlags
	format string
}

func (*estimateCmd) Name() string { return "estimate" }
func (*estimateCmd) Synopsis() string {
	return "estimates the return on buying, renting out and selling an apartment"
}
func (*estimateCmd) Usage() string {
	return `invest estimate [-buy-price <price>] [-years <n>] [-format markdown|json] ...

  Estimates the average annual return of buying an apartment with a mortgage,
  renting it out for the investment term, and selling it at the end. The
  alternative of investing the same cashflows in the market is charged as an
  opportunity cost.

Usage Examples:
# Estimate with the default deal parameters.
$ invest estimate

# Same deal held for 10 years, as JSON.
$ invest estimate -years 10 -format json

`
}

func (c *estimateCmd) SetFlags(f *flag.FlagSet) {
	c.estimateFlags.register(f)
	f.StringVar(&c.format, "format", "markdown", "output format: 'markdown' or 'json'")
}

func (c *estimateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, err := c.summary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not compute the estimate: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not encode the estimate: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
	case "markdown":
		printMarkdown(renderer.EstimateMarkdown(summary))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q: must be 'markdown' or 'json'\n", c.format)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
