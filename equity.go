package investments

import (
	"fmt"
	"iter"
)

// Strategy computes the realized fractional return of an entry strategy over
// a window of monthly closing prices.
type Strategy interface {
	// Name identifies the strategy in reports.
	Name() string
	// Validate rejects a misconfigured strategy before any window is run.
	Validate() error
	// Return is the realized fractional return for the window starting at
	// start and spanning periodMonths monthly closes.
	Return(prices []float64, start, periodMonths int) (float64, error)
}

// checkWindow validates a price window request.
func checkWindow(prices []float64, start, periodMonths int) error {
	if periodMonths < 1 {
		return fmt.Errorf("invalid investment period %d months: must be at least 1", periodMonths)
	}
	if start < 0 || start+periodMonths > len(prices) {
		return fmt.Errorf("window [%d, %d) out of price series bounds [0, %d)", start, start+periodMonths, len(prices))
	}
	return nil
}

// LumpSum deposits all capital at the first month of the window.
type LumpSum struct{}

func (LumpSum) Name() string    { return "Lump-Sum" }
func (LumpSum) Validate() error { return nil }

// Return is the price change over the window, relative to the entry price.
func (LumpSum) Return(prices []float64, start, periodMonths int) (float64, error) {
	if err := checkWindow(prices, start, periodMonths); err != nil {
		return 0, err
	}
	entry := prices[start]
	exit := prices[start+periodMonths-1]
	return (exit - entry) / entry, nil
}

// DCAPlan stages the entry over a buying period: the capital sits in a
// money-market holding and an equal fraction of the remaining balance is
// converted to equity every month.
//
// The monthly amount is balance/monthsRemaining, not a fixed sum, so the
// capital is fully deployed by the end of the buying period whatever its
// length. With BuyingPeriodMonths == 1 the plan degenerates to a lump sum.
type DCAPlan struct {
	BuyingPeriodMonths int     // months over which the capital is deployed
	MoneyMarketRate    float64 // annual return of the holding fund, e.g. 0.03
	InitialCapital     float64 // capital at the start of the window
}

func (DCAPlan) Name() string { return "DCA" }

func (p DCAPlan) Validate() error {
	if p.BuyingPeriodMonths < 1 {
		return fmt.Errorf("invalid buying period %d months: must be at least 1", p.BuyingPeriodMonths)
	}
	if p.InitialCapital <= 0 {
		return fmt.Errorf("invalid initial capital %.2f: must be positive", p.InitialCapital)
	}
	return nil
}

// Return simulates the staged entry over the window. The investment period
// may exceed the buying period; the remainder is fully invested and idle.
func (p DCAPlan) Return(prices []float64, start, periodMonths int) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := checkWindow(prices, start, periodMonths); err != nil {
		return 0, err
	}
	if p.BuyingPeriodMonths > periodMonths {
		return 0, fmt.Errorf("buying period %d months exceeds investment period %d months", p.BuyingPeriodMonths, periodMonths)
	}

	rate := monthlyRate(p.MoneyMarketRate)
	balance := p.InitialCapital
	var shares float64
	for i := 0; i < p.BuyingPeriodMonths; i++ {
		balance *= 1 + rate
		invested := balance / float64(p.BuyingPeriodMonths-i)
		balance -= invested
		shares += invested / prices[start+i]
	}
	final := shares * prices[start+periodMonths-1]
	return (final - p.InitialCapital) / p.InitialCapital, nil
}

// Sweep evaluates the strategy at every possible historical entry point for
// the given horizon: one sample per start index 0..len(prices)-periodMonths-1.
// The sequence is lazy, finite and restartable.
func Sweep(prices []float64, periodMonths int, s Strategy) (iter.Seq[float64], error) {
	if periodMonths < 1 {
		return nil, fmt.Errorf("invalid investment period %d months: must be at least 1", periodMonths)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(float64) bool) {
		for start := 0; start < len(prices)-periodMonths; start++ {
			// start indexes are valid windows by construction
			r, err := s.Return(prices, start, periodMonths)
			if err != nil {
				return
			}
			if !yield(r) {
				return
			}
		}
	}, nil
}
