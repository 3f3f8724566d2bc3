package investments

import "math"

// monthlyRate converts an effective annual rate into the equivalent monthly
// compounding rate.
func monthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// MonthlyCashflows builds the signed monthly cashflows (rent minus mortgage
// installment) over the investment term, month 1..TermYears*12.
//
// Rent starts at assessedValue*RentYield/12 and steps up by the accumulated
// price growth after every RentStepYears-th year; the installment is constant.
func MonthlyCashflows(m Mortgage, a Assumptions) ([]float64, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	payment := m.MonthlyPayment()
	rent := m.AssessedValue() * a.RentYield / 12

	cashflows := make([]float64, 0, a.TermYears*12)
	for year := 1; year <= a.TermYears; year++ {
		for month := 0; month < 12; month++ {
			cashflows = append(cashflows, rent-payment)
		}
		if year%a.RentStepYears == 0 {
			rent *= math.Pow(1+a.PriceGrowth, float64(a.RentStepYears))
		}
	}
	return cashflows, nil
}

// OpportunityCost walks the cashflows once and returns the net market return
// the investor gave up by holding the apartment.
//
// A negative month is money the investor had to inject instead of investing
// it; a positive month is money returned and assumed invested. Both balances
// compound monthly at the market rate after that month's contribution, and
// the net is missed gains minus actual gains.
func OpportunityCost(cashflows []float64, marketReturn float64) float64 {
	rate := monthlyRate(marketReturn)
	var missed, gained float64
	for _, cashflow := range cashflows {
		if cashflow < 0 {
			missed -= cashflow
		} else {
			gained += cashflow
		}
		missed *= 1 + rate
		gained *= 1 + rate
	}
	return missed - gained
}
