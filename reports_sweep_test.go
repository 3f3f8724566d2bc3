package investments

import (
	"testing"
	"time"

	"github.com/eladshoshani/Investments/date"
)

// syntheticSeries builds a monthly series growing 1% per month from 100.
func syntheticSeries(months int) *PriceSeries {
	s := &PriceSeries{}
	price := 100.0
	for i := 0; i < months; i++ {
		s.Append(date.New(1990, time.January+time.Month(i), 28), price)
		price *= 1.01
	}
	return s
}

func TestNewSweepReport(t *testing.T) {
	series := syntheticSeries(60)
	plan := DCAPlan{BuyingPeriodMonths: 6, MoneyMarketRate: 0.03, InitialCapital: 1_000_000}
	report, err := NewSweepReport(series, []int{1, 2}, plan)
	if err != nil {
		t.Fatalf("NewSweepReport() error = %v", err)
	}
	if report.Samples != 60 {
		t.Errorf("Samples = %d, want 60", report.Samples)
	}
	if len(report.Horizons) != 2 {
		t.Fatalf("Horizons = %d, want 2", len(report.Horizons))
	}
	for _, h := range report.Horizons {
		want := 60 - h.Years*12
		if len(h.LumpSum.Returns) != want {
			t.Errorf("%d year lump-sum samples = %d, want %d", h.Years, len(h.LumpSum.Returns), want)
		}
		if len(h.DCA.Returns) != want {
			t.Errorf("%d year DCA samples = %d, want %d", h.Years, len(h.DCA.Returns), want)
		}
		if len(h.Entries) != want {
			t.Errorf("%d year entry dates = %d, want %d", h.Years, len(h.Entries), want)
		}
		// On a steadily rising series the lump-sum always beats the staged
		// entry: it holds the full position from the cheapest month.
		if h.LumpSum.Stats.Mean <= h.DCA.Stats.Mean {
			t.Errorf("%d year: lump-sum mean %v should beat DCA mean %v on a rising series",
				h.Years, h.LumpSum.Stats.Mean, h.DCA.Stats.Mean)
		}
	}
}

func TestNewSweepReport_HorizonTooLong(t *testing.T) {
	series := syntheticSeries(24)
	plan := DCAPlan{BuyingPeriodMonths: 6, InitialCapital: 1000}
	report, err := NewSweepReport(series, []int{5}, plan)
	if err != nil {
		t.Fatalf("NewSweepReport() error = %v", err)
	}
	if n := len(report.Horizons[0].LumpSum.Returns); n != 0 {
		t.Errorf("5 year horizon over 24 months yielded %d samples, want 0", n)
	}
}

func TestNewSweepReport_Invalid(t *testing.T) {
	series := syntheticSeries(24)
	plan := DCAPlan{BuyingPeriodMonths: 6, InitialCapital: 1000}
	if _, err := NewSweepReport(series, []int{0}, plan); err == nil {
		t.Errorf("zero horizon expected an error")
	}
	if _, err := NewSweepReport(series, []int{1}, DCAPlan{BuyingPeriodMonths: 24, InitialCapital: 1}); err == nil {
		t.Errorf("buying period beyond horizon expected an error")
	}
}
