package investments

import (
	"fmt"
	"slices"

	"github.com/eladshoshani/Investments/date"
)

// DefaultHorizonYears are the investment horizons under study.
var DefaultHorizonYears = []int{2, 5, 10, 25}

// StrategyReturns holds the per-entry-point return samples of one strategy
// over one horizon, with their summary statistics.
type StrategyReturns struct {
	Strategy string
	Returns  []float64
	Stats    Stats
}

// HorizonReport compares the strategies over a single investment horizon.
type HorizonReport struct {
	Years   int
	Entries []date.Date // entry month per sample
	LumpSum StrategyReturns
	DCA     StrategyReturns
}

// SweepReport compares lump-sum and DCA entries across every historical
// entry point, one section per horizon.
type SweepReport struct {
	Samples  int // number of monthly closes in the series
	Horizons []HorizonReport
}

// NewSweepReport sweeps the monthly closes of the series for each horizon,
// comparing a lump-sum entry against the given DCA plan.
//
// A horizon too long for the series yields an empty section rather than an
// error: the sweep simply has no entry point to report on.
func NewSweepReport(series *PriceSeries, horizonYears []int, plan DCAPlan) (*SweepReport, error) {
	if len(horizonYears) == 0 {
		horizonYears = DefaultHorizonYears
	}
	monthly := series.Monthly()
	prices := monthly.Closes()
	days := make([]date.Date, 0, monthly.Len())
	for day := range monthly.Values() {
		days = append(days, day)
	}

	report := &SweepReport{Samples: len(prices)}
	for _, years := range horizonYears {
		if years < 1 {
			return nil, fmt.Errorf("invalid investment horizon %d years: must be at least 1", years)
		}
		period := years * 12
		if plan.BuyingPeriodMonths > period {
			return nil, fmt.Errorf("buying period %d months exceeds the %d year horizon", plan.BuyingPeriodMonths, years)
		}

		lumpSeq, err := Sweep(prices, period, LumpSum{})
		if err != nil {
			return nil, err
		}
		dcaSeq, err := Sweep(prices, period, plan)
		if err != nil {
			return nil, err
		}

		h := HorizonReport{
			Years:   years,
			LumpSum: StrategyReturns{Strategy: LumpSum{}.Name(), Stats: Describe(lumpSeq)},
			DCA:     StrategyReturns{Strategy: plan.Name(), Stats: Describe(dcaSeq)},
		}
		for r := range lumpSeq {
			h.LumpSum.Returns = append(h.LumpSum.Returns, r)
		}
		for r := range dcaSeq {
			h.DCA.Returns = append(h.DCA.Returns, r)
		}
		if n := len(h.LumpSum.Returns); n > 0 {
			h.Entries = slices.Clone(days[:n])
		}
		report.Horizons = append(report.Horizons, h)
	}
	return report, nil
}
