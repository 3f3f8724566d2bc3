// Package renderer renders the calculators' results to markdown and charts.
package renderer

import (
	"fmt"
	"strings"

	"github.com/eladshoshani/Investments"
)

// EstimateMarkdown renders an apartment investment summary to a markdown
// string.
func EstimateMarkdown(s *investments.InvestmentSummary) string {
	var b strings.Builder

	m := func(v float64) string { return investments.M(v, s.Currency).String() }

	fmt.Fprintf(&b, "# Apartment Investment Estimate\n\n")
	fmt.Fprintf(&b, "Average annual return: **%s** over %d years\n\n", s.AvgAnnualReturn(), s.TermYears)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Initial capital | %s |\n", m(s.InitialCapital))
	fmt.Fprintf(&b, "| Final capital | %s |\n", m(s.FinalCapital))
	fmt.Fprintf(&b, "| Buy price | %s |\n", m(s.BuyPrice))
	fmt.Fprintf(&b, "| Sell price | %s |\n", m(s.SellPrice))
	fmt.Fprintf(&b, "| Interest paid on mortgage | %s |\n", m(s.InterestPaid))
	fmt.Fprintf(&b, "| Loss from cashflows | %s |\n", m(s.OpportunityCost))

	fmt.Fprintf(&b, "\n## Monthly cashflows (distinct)\n\n")
	fmt.Fprintln(&b, "| Cashflow |")
	fmt.Fprintln(&b, "|---:|")
	for _, c := range s.DistinctCashflows {
		fmt.Fprintf(&b, "| %s |\n", investments.M(c, s.Currency).SignedString())
	}

	return b.String()
}
