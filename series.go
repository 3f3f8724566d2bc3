package investments

import (
	"iter"
	"slices"
	"sort"

	"github.com/eladshoshani/Investments/date"
)

// PriceSeries stores a chronological series of closing prices, each
// associated with a specific date. Dates are unique and the series is always
// sorted. Read-only once loaded.
type PriceSeries struct {
	days   []date.Date
	closes []float64
}

// Len returns the number of prices in the series.
func (s *PriceSeries) Len() int { return len(s.days) }

// chronological is a private implementation to keep the series sorted.
type chronological struct{ *PriceSeries }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.closes[i], s.closes[j] = s.closes[j], s.closes[i]
}

// Append adds a closing price to the series.
//
// An existing price at that date is overwritten.
func (s *PriceSeries) Append(on date.Date, close float64) *PriceSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		// Found a point at that exact same day; the last data wins.
		s.closes[i] = close
		return s
	}
	s.days, s.closes = append(s.days, on), append(s.closes, close)
	sort.Sort(chronological{s})
	return s
}

// Values returns an iterator over all date/price pairs, in chronological order.
func (s *PriceSeries) Values() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.closes[i]) {
				return
			}
		}
	}
}

// Closes returns a copy of the closing prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	return slices.Clone(s.closes)
}

// First returns the earliest date in the series, or the zero Date when empty.
func (s *PriceSeries) First() date.Date {
	if len(s.days) == 0 {
		return date.Date{}
	}
	return s.days[0]
}

// Monthly resamples the series to one price per calendar month, keeping the
// last observed price of each month.
func (s *PriceSeries) Monthly() *PriceSeries {
	out := &PriceSeries{
		days:   make([]date.Date, 0, len(s.days)),
		closes: make([]float64, 0, len(s.closes)),
	}
	for i, day := range s.days {
		if i+1 < len(s.days) && day.SameMonth(s.days[i+1]) {
			continue
		}
		out.days = append(out.days, day)
		out.closes = append(out.closes, s.closes[i])
	}
	return out
}
