package investments

import "fmt"

// Percent is a percentage value: Percent(21) renders as "21.00%".
type Percent float64

// AsPercent converts a fractional return (0.21) into a Percent (21).
func AsPercent(fraction float64) Percent { return Percent(100 * fraction) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
