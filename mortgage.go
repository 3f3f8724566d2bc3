package investments

import "fmt"

// Mortgage describes the financing of an apartment purchase.
//
// The loan is sized on the lesser of the negotiated purchase price and the
// assessor's valuation: banks finance against the valuation but never lend
// more than the financing share of what was actually paid.
type Mortgage struct {
	buyPrice      float64
	assessedValue float64
	financing     float64 // share of the base financed by the bank, e.g. 0.75
	loan          Loan
}

// NewMortgage validates the inputs and derives the underlying Loan.
func NewMortgage(buyPrice, assessedValue, financing, annualRate float64, termYears int) (Mortgage, error) {
	if buyPrice <= 0 {
		return Mortgage{}, fmt.Errorf("invalid buy price %.2f: must be positive", buyPrice)
	}
	if assessedValue <= 0 {
		return Mortgage{}, fmt.Errorf("invalid assessed value %.2f: must be positive", assessedValue)
	}
	if financing < 0 || financing > 1 {
		return Mortgage{}, fmt.Errorf("invalid financing percentage %.4f: must be within [0, 1]", financing)
	}
	m := Mortgage{buyPrice: buyPrice, assessedValue: assessedValue, financing: financing}
	loan, err := NewLoan(m.Amount(), annualRate, termYears)
	if err != nil {
		return Mortgage{}, err
	}
	m.loan = loan
	return m, nil
}

// Amount returns the loan principal.
func (m Mortgage) Amount() float64 {
	return min(m.buyPrice, m.assessedValue) * m.financing
}

func (m Mortgage) BuyPrice() float64      { return m.buyPrice }
func (m Mortgage) AssessedValue() float64 { return m.assessedValue }
func (m Mortgage) Loan() Loan             { return m.loan }

// MonthlyPayment returns the constant monthly installment of the mortgage.
func (m Mortgage) MonthlyPayment() float64 { return m.loan.MonthlyPayment() }
