package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	tally := NewTally(4)

	assert.Equal(t, 4, tally.Bins())
	assert.Equal(t, 0, tally.Total())
	assert.Equal(t, 0, tally.Max())
	assert.Equal(t, []float64{0, 0, 0, 0}, tally.Normalized())
	assert.Equal(t, 0.0, tally.Mean())

	tally.Record(1)
	tally.Record(1)
	tally.Record(2)
	tally.Record(3)
	tally.Record(-1) // ignored
	tally.Record(4)  // ignored

	assert.Equal(t, []int{0, 2, 1, 1}, tally.Counts())
	assert.Equal(t, 2, tally.Count(1))
	assert.Equal(t, 4, tally.Total())
	assert.Equal(t, 2, tally.Max())
	assert.Equal(t, []float64{0, 1, 0.5, 0.5}, tally.Normalized())
	assert.InDelta(t, 7.0/4.0, tally.Mean(), 1e-9)

	counts := tally.Counts()
	counts[0] = 99
	assert.Equal(t, 0, tally.Count(0), "Counts returns a copy")

	tally.Reset()
	assert.Equal(t, 0, tally.Total())
	assert.Equal(t, []int{0, 0, 0, 0}, tally.Counts())
}

func TestTally_Empty(t *testing.T) {
	tally := NewTally(0)
	assert.Equal(t, 0, tally.Max())
	assert.Empty(t, tally.Normalized())
}
