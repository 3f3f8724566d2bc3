package renderer

import (
	"fmt"
	"strings"

	"github.com/eladshoshani/Investments"
)

// ScheduleMarkdown renders the amortization schedule of a loan to a markdown
// table, one row per year.
func ScheduleMarkdown(loan investments.Loan, currency string) (string, error) {
	var b strings.Builder

	m := func(v float64) string { return investments.M(v, currency).String() }

	fmt.Fprintf(&b, "# Amortization Schedule\n\n")
	fmt.Fprintf(&b, "%s over %d years at %s, monthly payment %s.\n\n",
		m(loan.Principal()), loan.TermYears(), investments.AsPercent(loan.AnnualRate()), m(loan.MonthlyPayment()))

	fmt.Fprintln(&b, "| Year | Remaining balance | Cumulative interest |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	for year := 1; year <= loan.TermYears(); year++ {
		state, err := loan.ScheduleAt(year * 12)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", year, m(state.Balance), m(state.TotalInterest))
	}

	return b.String(), nil
}
