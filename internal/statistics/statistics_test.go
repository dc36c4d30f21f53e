package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	var s Statistics

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.NoError(t, s.Validate())
}

func TestSingleValue(t *testing.T) {
	var s Statistics
	s.Add(HandResult{NetBB: 2.5, Button: true, Showdown: true, PotBB: 5})

	assert.Equal(t, 1, s.Hands)
	assert.InDelta(t, 2.5, s.Mean(), 1e-9)
	assert.InDelta(t, 2.5, s.Median(), 1e-9)
	assert.Zero(t, s.Variance())
	assert.Equal(t, 1, s.ShowdownWins)
	assert.Equal(t, 1, s.Button.Hands)
	assert.InDelta(t, 5.0, s.MaxPotBB, 1e-9)
}

func TestMultipleValues(t *testing.T) {
	var s Statistics
	for i, v := range []float64{-1, 1, 3, -0.5, 2.5} {
		s.Add(HandResult{NetBB: v, Button: i%2 == 0, Showdown: v > 2})
	}

	assert.Equal(t, 5, s.Hands)
	assert.InDelta(t, 1.0, s.Mean(), 1e-9)
	assert.InDelta(t, 1.0, s.Median(), 1e-9)
	assert.InDelta(t, 3.125, s.Variance(), 1e-9)
	assert.Equal(t, 3, s.Button.Hands)
	assert.Equal(t, 2, s.BigBlind.Hands)
	assert.InDelta(t, 5.5, s.ShowdownBB, 1e-9)
	assert.InDelta(t, -0.5, s.NonShowdownBB, 1e-9)
	assert.Equal(t, 2, s.ShowdownWins)
	assert.Equal(t, 1, s.NonShowdownWins)
	require.NoError(t, s.Validate())

	low, high := s.ConfidenceInterval95()
	assert.Less(t, low, s.Mean())
	assert.Greater(t, high, s.Mean())
}

func TestPercentiles(t *testing.T) {
	var s Statistics
	for i := 1; i <= 5; i++ {
		s.Add(HandResult{NetBB: float64(i)})
	}

	assert.InDelta(t, 1.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 2.0, s.Percentile(0.25), 1e-9)
	assert.InDelta(t, 5.0, s.Percentile(1), 1e-9)
	assert.InDelta(t, 4.6, s.Percentile(0.9), 1e-9)
}

func TestMerge(t *testing.T) {
	var a, b, all Statistics
	for i, v := range []float64{1, -2, 3} {
		r := HandResult{NetBB: v, Button: i == 0}
		a.Add(r)
		all.Add(r)
	}
	for _, v := range []float64{4, -1} {
		r := HandResult{NetBB: v, Showdown: true, PotBB: 8}
		b.Add(r)
		all.Add(r)
	}

	a.Merge(&b)
	assert.Equal(t, all.Running, a.Running)
	assert.Equal(t, all.Button, a.Button)
	assert.Equal(t, all.BigBlind, a.BigBlind)
	assert.Equal(t, all.Values, a.Values)
	assert.InDelta(t, 8.0, a.MaxPotBB, 1e-9)
	require.NoError(t, a.Validate())
}

func TestValidateDetectsMismatch(t *testing.T) {
	var s Statistics
	s.Add(HandResult{NetBB: 1})

	s.ShowdownBB = 3
	assert.ErrorContains(t, s.Validate(), "ledger mismatch")

	s.ShowdownBB = 0
	s.Values = nil
	assert.ErrorContains(t, s.Validate(), "values array length")

	s.Values = []float64{1}
	s.Button.Hands = 1
	assert.ErrorContains(t, s.Validate(), "position hands total")
}
