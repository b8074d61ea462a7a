package system

import "slices"

// Tally counts how many balls left the board through each bin.
type Tally struct {
	counts []int
	total  int
}

// NewTally creates an empty tally with one counter per bin.
func NewTally(bins int) *Tally {
	return &Tally{counts: make([]int, bins)}
}

// Record adds one ball to bin. Out-of-range bins are ignored.
func (t *Tally) Record(bin int) {
	if bin < 0 || bin >= len(t.counts) {
		return
	}
	t.counts[bin]++
	t.total++
}

// Counts returns a copy of the per-bin counts.
func (t *Tally) Counts() []int {
	return slices.Clone(t.counts)
}

// Count returns the count for one bin.
func (t *Tally) Count(bin int) int {
	return t.counts[bin]
}

// Bins returns the number of bins.
func (t *Tally) Bins() int {
	return len(t.counts)
}

// Total returns the number of recorded balls.
func (t *Tally) Total() int {
	return t.total
}

// Max returns the largest bin count.
func (t *Tally) Max() int {
	if len(t.counts) == 0 {
		return 0
	}
	return slices.Max(t.counts)
}

// Normalized returns each count divided by the largest, for drawing bars.
// All zeros when nothing has been recorded.
func (t *Tally) Normalized() []float64 {
	out := make([]float64, len(t.counts))
	m := t.Max()
	if m == 0 {
		return out
	}
	for i, c := range t.counts {
		out[i] = float64(c) / float64(m)
	}
	return out
}

// Mean returns the average bin index of recorded balls.
func (t *Tally) Mean() float64 {
	if t.total == 0 {
		return 0
	}
	sum := 0
	for i, c := range t.counts {
		sum += i * c
	}
	return float64(sum) / float64(t.total)
}

// Reset clears all counts.
func (t *Tally) Reset() {
	clear(t.counts)
	t.total = 0
}
