package investments

import "fmt"

// InterestPolicy selects what the sale proceeds are reduced by on top of the
// sale expenses and the opportunity cost of the monthly cashflows.
//
// The interest embedded in the monthly installments already depressed every
// monthly cashflow, so deducting it again from the proceeds double-counts it;
// some insist on seeing it anyway. Both readings are kept selectable.
type InterestPolicy int

const (
	// DeductBalanceOnly deducts only the remaining mortgage balance.
	DeductBalanceOnly InterestPolicy = iota
	// DeductBalanceAndInterest additionally deducts the cumulative interest
	// paid over the investment term.
	DeductBalanceAndInterest
)

func (p InterestPolicy) String() string {
	switch p {
	case DeductBalanceOnly:
		return "balance"
	case DeductBalanceAndInterest:
		return "balance+interest"
	default:
		return "unknown"
	}
}

// ParseInterestPolicy parses a string into an InterestPolicy.
func ParseInterestPolicy(s string) (InterestPolicy, error) {
	switch s {
	case "balance":
		return DeductBalanceOnly, nil
	case "balance+interest":
		return DeductBalanceAndInterest, nil
	default:
		return 0, fmt.Errorf("unknown interest policy: %q", s)
	}
}
