package investments

import (
	"fmt"
	"math"
)

// Loan is a fixed-rate, equal-installment loan. Immutable once constructed.
type Loan struct {
	principal  float64
	annualRate float64
	termYears  int
}

// NewLoan validates the loan parameters and returns a Loan.
func NewLoan(principal, annualRate float64, termYears int) (Loan, error) {
	if principal < 0 {
		// a zero principal is a degenerate but valid all-cash purchase
		return Loan{}, fmt.Errorf("invalid loan principal %.2f: must not be negative", principal)
	}
	if annualRate < 0 {
		return Loan{}, fmt.Errorf("invalid loan interest rate %.4f: must not be negative", annualRate)
	}
	if termYears < 1 {
		return Loan{}, fmt.Errorf("invalid loan term %d years: must be at least 1", termYears)
	}
	return Loan{principal: principal, annualRate: annualRate, termYears: termYears}, nil
}

func (l Loan) Principal() float64  { return l.principal }
func (l Loan) AnnualRate() float64 { return l.annualRate }
func (l Loan) TermYears() int      { return l.termYears }

// TermMonths returns the total number of monthly installments.
func (l Loan) TermMonths() int { return l.termYears * 12 }

// monthlyRate is the per-installment interest rate. The annual rate is
// a nominal rate compounded monthly, as mortgage rates are quoted.
func (l Loan) monthlyRate() float64 { return l.annualRate / 12 }

// MonthlyPayment returns the constant monthly installment.
// With a zero rate it degenerates to principal/months, exactly.
func (l Loan) MonthlyPayment() float64 {
	n := float64(l.TermMonths())
	r := l.monthlyRate()
	if r == 0 {
		return l.principal / n
	}
	return l.principal * r / (1 - math.Pow(1+r, -n))
}

// LoanState is the amortization schedule evaluated at a month offset.
type LoanState struct {
	Balance       float64 // remaining principal
	TotalInterest float64 // cumulative interest paid so far
}

// ScheduleAt evaluates the amortization schedule after monthsElapsed
// installments, in [0, TermMonths].
func (l Loan) ScheduleAt(monthsElapsed int) (LoanState, error) {
	if monthsElapsed < 0 || monthsElapsed > l.TermMonths() {
		return LoanState{}, fmt.Errorf("schedule month %d out of range [0, %d]", monthsElapsed, l.TermMonths())
	}
	k := float64(monthsElapsed)
	r := l.monthlyRate()
	payment := l.MonthlyPayment()
	if r == 0 {
		return LoanState{Balance: l.principal - payment*k}, nil
	}
	// Closed-form annuity balance: P(1+r)^k - A((1+r)^k - 1)/r.
	growth := math.Pow(1+r, k)
	balance := l.principal*growth - payment*(growth-1)/r
	if monthsElapsed == l.TermMonths() {
		balance = 0 // the closed form leaves float noise on the last installment
	}
	interest := payment*k - (l.principal - balance)
	return LoanState{Balance: balance, TotalInterest: interest}, nil
}
