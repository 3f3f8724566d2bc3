package investments

import "math"

// approx reports whether two floats are equal within tol.
func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ptr is a helper to build optional float fields from consts.
func ptr(v float64) *float64 { return &v }

// exampleMortgage is the worked example used across the tests: the original
// Pinuy-Binuy deal the calculator was written for.
func exampleMortgage() Mortgage {
	m, err := NewMortgage(1_930_000, 1_900_000, 0.75, 0.045, 25)
	if err != nil {
		panic(err)
	}
	return m
}

func exampleAssumptions() Assumptions {
	return Assumptions{
		TermYears:       7,
		PriceGrowth:     0.065,
		RentYield:       0.023,
		RentStepYears:   1,
		MarketReturn:    0.075,
		BuyExpenses:     100_000,
		SellExpenseRate: DefaultSellExpenseRate,
		Replacement:     ptr(3_150_000),
	}
}
