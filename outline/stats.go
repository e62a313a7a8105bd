package outline

import "sort"

// Analyze computes the font-size percentile ranking over the distinct sizes
// present in spans, plus the arithmetic mean size. Each distinct size maps
// to rank/(n-1) ascending, or 1.0 when only one distinct size exists.
// Returns zeroed statistics for an empty span list.
func Analyze(spans []Span) Stats {
	if len(spans) == 0 {
		return Stats{Percentile: map[float64]float64{}}
	}

	seen := make(map[float64]bool)
	var sizes []float64
	var sum float64
	for _, s := range spans {
		sum += s.Size
		if !seen[s.Size] {
			seen[s.Size] = true
			sizes = append(sizes, s.Size)
		}
	}
	sort.Float64s(sizes)

	n := len(sizes)
	pct := make(map[float64]float64, n)
	for i, size := range sizes {
		if n > 1 {
			pct[size] = float64(i) / float64(n-1)
		} else {
			pct[size] = 1.0
		}
	}

	return Stats{
		Sizes:      sizes,
		Percentile: pct,
		AvgSize:    sum / float64(len(spans)),
	}
}
