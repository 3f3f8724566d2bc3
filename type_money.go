package investments

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
//
// Calculations in this package run on float64 (compounding formulas need
// math.Pow); Money is the presentation type the reports are built from.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money value from a float amount and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money value formatted with its currency symbol.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) AsFloat() float64   { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	rounded := m.value.Round(int32(m.currency().Fraction))
	w.Append("amount", rounded)
	return w.MarshalJSON()
}

// roundCents rounds a float amount to two decimals, exactly.
//
// Distinct-cashflow lists are deduplicated on the rounded value so that two
// flows differing only by float noise collapse into one entry.
func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
