package investments

import (
	"fmt"
	"math"
	"slices"
)

// DefaultSellExpenseRate is the broker and lawyer fee on the sale price,
// 2.5% plus VAT.
const DefaultSellExpenseRate = 0.025 * 1.18

// Assumptions is the pure configuration of an apartment investment estimate.
// No field is mutated after construction.
//
// The calculation ignores taxes and inflation: a single apartment sale is
// tax-free in Israel, and the market return should be supplied net of tax.
type Assumptions struct {
	TermYears       int     // investment term until the apartment is sold
	PriceGrowth     float64 // annual apartment price growth, e.g. 0.065
	RentYield       float64 // annual rent as a share of the assessed value, e.g. 0.023
	RentStepYears   int     // number of years between rent increases, >= 1
	MarketReturn    float64 // annual market alternative return, net of tax
	BuyExpenses     float64 // lawyer, broker, purchase tax, etc.
	SellExpenseRate float64 // share of the sell price lost to sale expenses

	// Replacement is the current value of the replacement apartment for
	// Pinuy-Binuy deals: the sale price is projected from it instead of the
	// purchase price. Nil means the purchase price is the base.
	Replacement *float64

	// Policy selects whether the cumulative mortgage interest is deducted
	// from the sale proceeds on top of the remaining balance.
	Policy InterestPolicy
}

// Validate rejects assumptions that would make the downstream formulas
// undefined.
func (a Assumptions) Validate() error {
	if a.TermYears < 1 {
		return fmt.Errorf("invalid investment term %d years: must be at least 1", a.TermYears)
	}
	if a.RentStepYears < 1 {
		return fmt.Errorf("invalid rent increase interval %d years: must be at least 1", a.RentStepYears)
	}
	if a.RentYield < 0 || a.RentYield > 1 {
		return fmt.Errorf("invalid rent yield %.4f: must be within [0, 1]", a.RentYield)
	}
	if a.SellExpenseRate < 0 || a.SellExpenseRate > 1 {
		return fmt.Errorf("invalid sell expense rate %.4f: must be within [0, 1]", a.SellExpenseRate)
	}
	if a.Replacement != nil && *a.Replacement <= 0 {
		return fmt.Errorf("invalid replacement value %.2f: must be positive", *a.Replacement)
	}
	return nil
}

// SellExpenses returns the cost of selling at the given price.
func (a Assumptions) SellExpenses(sellPrice float64) float64 {
	return sellPrice * a.SellExpenseRate
}

// saleBase is the value the sale price is projected from.
func (a Assumptions) saleBase(m Mortgage) float64 {
	if a.Replacement != nil {
		return *a.Replacement
	}
	return m.BuyPrice()
}

// InvestmentSummary is the read-only result of an apartment estimate.
type InvestmentSummary struct {
	InitialCapital    float64
	FinalCapital      float64
	TermYears         int
	BuyPrice          float64
	SellPrice         float64
	InterestPaid      float64   // cumulative mortgage interest over the term
	DistinctCashflows []float64 // distinct monthly cashflows, sorted, cent-rounded
	OpportunityCost   float64   // net foregone market gains from the cashflows
	Currency          string
}

// AvgAnnualReturn is the geometric average annual return of the investment.
// It is recomputed from the capital figures, not stored.
func (s *InvestmentSummary) AvgAnnualReturn() Percent {
	return AsPercent(math.Pow(s.FinalCapital/s.InitialCapital, 1/float64(s.TermYears)) - 1)
}

func (s *InvestmentSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("avgAnnualReturn", s.AvgAnnualReturn().String())
	w.Append("initialCapital", M(s.InitialCapital, s.Currency))
	w.Append("finalCapital", M(s.FinalCapital, s.Currency))
	w.Append("investmentTermYears", s.TermYears)
	w.Append("buyPrice", M(s.BuyPrice, s.Currency))
	w.Append("sellPrice", M(s.SellPrice, s.Currency))
	w.Append("interestPaidOnMortgage", M(s.InterestPaid, s.Currency))
	w.Append("monthlyDistinctCashflows", s.DistinctCashflows)
	w.Append("totalLossFromCashflows", M(s.OpportunityCost, s.Currency))
	return w.MarshalJSON()
}

// Estimate computes the return on buying an apartment, renting it out for the
// investment term, and selling it.
//
// The steps are:
//  1. Project the sale price from the purchase price (or the replacement
//     apartment value) at the assumed annual growth.
//  2. Build the monthly cashflows (rent minus installment) and charge the
//     negative ones as missed market gains.
//  3. Net the sale price against sale expenses, the mortgage end state and
//     the cashflow opportunity cost.
//  4. Derive the average annual return from the capital before and after.
func Estimate(m Mortgage, a Assumptions) (*InvestmentSummary, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	sellPrice := a.saleBase(m) * math.Pow(1+a.PriceGrowth, float64(a.TermYears))

	cashflows, err := MonthlyCashflows(m, a)
	if err != nil {
		return nil, err
	}
	opportunityCost := OpportunityCost(cashflows, a.MarketReturn)

	initialCapital := a.BuyExpenses + (m.BuyPrice() - m.Amount())
	if initialCapital <= 0 {
		return nil, fmt.Errorf("invalid initial capital %.2f: buy expenses plus equity must be positive", initialCapital)
	}

	end, err := m.Loan().ScheduleAt(a.TermYears * 12)
	if err != nil {
		return nil, fmt.Errorf("mortgage schedule at end of term: %w", err)
	}

	finalCapital := sellPrice - a.SellExpenses(sellPrice) - end.Balance - opportunityCost
	if a.Policy == DeductBalanceAndInterest {
		finalCapital -= end.TotalInterest
	}

	return &InvestmentSummary{
		InitialCapital:    initialCapital,
		FinalCapital:      finalCapital,
		TermYears:         a.TermYears,
		BuyPrice:          m.BuyPrice(),
		SellPrice:         sellPrice,
		InterestPaid:      end.TotalInterest,
		DistinctCashflows: distinct(cashflows),
		OpportunityCost:   opportunityCost,
		Currency:          "ILS",
	}, nil
}

// distinct returns the sorted distinct cent-rounded values of the cashflows.
func distinct(cashflows []float64) []float64 {
	out := make([]float64, 0, len(cashflows))
	for _, c := range cashflows {
		out = append(out, roundCents(c))
	}
	slices.Sort(out)
	return slices.Compact(out)
}
