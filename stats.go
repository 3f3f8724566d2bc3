package investments

import (
	"iter"
	"math"
)

// Stats summarizes a sequence of fractional return samples.
type Stats struct {
	N    int
	Mean float64
	Std  float64 // population standard deviation
	Min  float64
	Max  float64
}

// Describe consumes the samples and computes their summary statistics.
func Describe(samples iter.Seq[float64]) Stats {
	var s Stats
	var sum float64
	s.Min = math.Inf(1)
	s.Max = math.Inf(-1)
	var values []float64
	for v := range samples {
		values = append(values, v)
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.N = len(values)
	if s.N == 0 {
		return Stats{}
	}
	s.Mean = sum / float64(s.N)
	var sq float64
	for _, v := range values {
		d := v - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(s.N))
	return s
}
