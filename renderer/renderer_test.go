package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/eladshoshani/Investments"
	"github.com/eladshoshani/Investments/date"
)

func testSummary(t *testing.T) *investments.InvestmentSummary {
	t.Helper()
	m, err := investments.NewMortgage(1_930_000, 1_900_000, 0.75, 0.045, 25)
	if err != nil {
		t.Fatal(err)
	}
	replacement := 3_150_000.0
	s, err := investments.Estimate(m, investments.Assumptions{
		TermYears:       7,
		PriceGrowth:     0.065,
		RentYield:       0.023,
		RentStepYears:   1,
		MarketReturn:    0.075,
		BuyExpenses:     100_000,
		SellExpenseRate: investments.DefaultSellExpenseRate,
		Replacement:     &replacement,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testSweepReport(t *testing.T) *investments.SweepReport {
	t.Helper()
	series := &investments.PriceSeries{}
	price := 100.0
	for i := 0; i < 48; i++ {
		series.Append(date.New(2000, time.January+time.Month(i), 28), price)
		price *= 1.005
	}
	report, err := investments.NewSweepReport(series, []int{1, 2}, investments.DCAPlan{
		BuyingPeriodMonths: 6,
		MoneyMarketRate:    0.03,
		InitialCapital:     1_000_000,
	})
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestEstimateMarkdown(t *testing.T) {
	md := EstimateMarkdown(testSummary(t))
	for _, want := range []string{"# Apartment Investment Estimate", "Initial capital", "Sell price", "Average annual return"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown is missing %q:\n%s", want, md)
		}
	}
}

func TestSweepMarkdown(t *testing.T) {
	md := SweepMarkdown(testSweepReport(t))
	for _, want := range []string{"## 1 Year Investment Period", "## 2 Year Investment Period", "Lump-Sum", "DCA", "| Strategy | Mean | Std |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown is missing %q:\n%s", want, md)
		}
	}
}

func TestScheduleMarkdown(t *testing.T) {
	loan, err := investments.NewLoan(1_425_000, 0.045, 25)
	if err != nil {
		t.Fatal(err)
	}
	md, err := ScheduleMarkdown(loan, "ILS")
	if err != nil {
		t.Fatalf("ScheduleMarkdown() error = %v", err)
	}
	if got := strings.Count(md, "\n| "); got < 25 {
		t.Errorf("schedule has %d rows, want one per year (25)", got)
	}
}

func TestSweepPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := SweepPNG(&buf, testSweepReport(t)); err != nil {
		t.Fatalf("SweepPNG() error = %v", err)
	}
	// PNG magic header
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("output does not look like a PNG (%d bytes)", buf.Len())
	}
}
