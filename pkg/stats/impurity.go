package stats

import "math"

// Counts tallies labels into a slice indexed by class. Negative labels are ignored.
func Counts(labels []int) []int {
	n := 0
	for _, l := range labels {
		if l+1 > n {
			n = l + 1
		}
	}
	counts := make([]int, n)
	for _, l := range labels {
		if l >= 0 {
			counts[l]++
		}
	}
	return counts
}

// Gini returns 1 - sum(p_c^2) over the empirical class frequencies.
func Gini(labels []int) float64 { return GiniFromCounts(Counts(labels)) }

// Entropy returns -sum(p_c log2 p_c); empty classes contribute 0.
func Entropy(labels []int) float64 { return EntropyFromCounts(Counts(labels)) }

// GiniFromCounts is Gini on pre-tallied class counts.
func GiniFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	sq := 0.0
	for _, c := range counts {
		p := float64(c) / n
		sq += p * p
	}
	return 1 - sq
}

// EntropyFromCounts is Entropy on pre-tallied class counts.
func EntropyFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		res -= p * math.Log2(p)
	}
	return res
}
