package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eladshoshani/Investments"
	"github.com/eladshoshani/Investments/date"
	"github.com/google/subcommands"
)

const eodhdAPIToken = "EODHD_API_TOKEN"

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	ticker    string
	from      string
	to        string
	output    string
	tokenFlag string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches historical closing prices from EODHD" }
func (*fetchCmd) Usage() string {
	return `invest fetch -ticker <ticker> [-from <date>] [-to <date>] [-o <file.csv>]

  Fetches end-of-day closing prices from eodhd.com and writes them as a CSV
  file suitable for 'invest sweep'.

  Requires the ` + eodhdAPIToken + ` environment variable to be set or passed
  as a flag. A .env file in the working directory is honored.

Usage Examples:
# Full S&P 500 history to SPX.csv.
$ invest fetch -ticker GSPC.INDX -o SPX.csv

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "GSPC.INDX", "EODHD ticker to fetch")
	f.StringVar(&c.from, "from", "1900-01-01", "first date to fetch")
	f.StringVar(&c.to, "to", date.Today().String(), "last date to fetch")
	f.StringVar(&c.output, "o", "", "output CSV file (default stdout)")
	f.StringVar(&c.tokenFlag, "api-token", "", "EODHD API token. This flag takes precedence over the "+eodhdAPIToken+" environment variable. You can get one at https://eodhd.com/")
}

// apiToken retrieves the EODHD API token from the command-line flag or the
// environment variable. It prioritizes the flag.
func (c *fetchCmd) apiToken() string {
	if c.tokenFlag == "" {
		c.tokenFlag = os.Getenv(eodhdAPIToken)
	}
	return c.tokenFlag
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token := c.apiToken()
	if token == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API token is not set. Use -api-token flag or the %s environment variable\n", eodhdAPIToken)
		return subcommands.ExitFailure
	}

	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -from date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -to date: %v\n", err)
		return subcommands.ExitUsageError
	}

	series, err := investments.FetchPrices(c.ticker, token, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch from eodhd.com: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := investments.ExportPrices(w, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d closing prices for %s to %s\n", series.Len(), c.ticker, c.output)
	}
	return subcommands.ExitSuccess
}
