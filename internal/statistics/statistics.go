// Package statistics summarises per-hand results from simulated sessions in
// big blinds won or lost by the hero seat.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// HandResult is the hero's outcome of a single hand
type HandResult struct {
	NetBB    float64 // big blinds won (positive) or lost
	Button   bool    // hero was on the button (small blind)
	Showdown bool    // hand reached showdown
	PotBB    float64 // final pot in big blinds
}

// Running accumulates sums for a mean and variance
type Running struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

func (r *Running) add(v float64) {
	r.Hands++
	r.SumBB += v
	r.SumBB2 += v * v
}

// Mean returns the average result in big blinds per hand
func (r Running) Mean() float64 {
	if r.Hands == 0 {
		return 0
	}
	return r.SumBB / float64(r.Hands)
}

// Variance returns the sample variance
func (r Running) Variance() float64 {
	if r.Hands < 2 {
		return 0
	}
	mean := r.Mean()
	return (r.SumBB2 - float64(r.Hands)*mean*mean) / float64(r.Hands-1)
}

// StdDev returns the sample standard deviation
func (r Running) StdDev() float64 {
	return math.Sqrt(max(0, r.Variance()))
}

// StdError returns the standard error of the mean
func (r Running) StdError() float64 {
	if r.Hands == 0 {
		return 0
	}
	return r.StdDev() / math.Sqrt(float64(r.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (r Running) ConfidenceInterval95() (float64, float64) {
	mean := r.Mean()
	margin := 1.96 * r.StdError()
	return mean - margin, mean + margin
}

// Statistics tracks the hero's results across hands
type Statistics struct {
	Running
	Values []float64

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64

	Button   Running
	BigBlind Running

	MaxPotBB float64
}

// Add incorporates a hand result
func (s *Statistics) Add(result HandResult) {
	net := result.NetBB
	s.add(net)
	s.Values = append(s.Values, net)

	if result.Showdown {
		s.ShowdownBB += net
		if net > 0 {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += net
		if net > 0 {
			s.NonShowdownWins++
		}
	}

	if result.Button {
		s.Button.add(net)
	} else {
		s.BigBlind.add(net)
	}
	s.MaxPotBB = max(s.MaxPotBB, result.PotBB)
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	for _, pair := range []struct{ dst, src *Running }{
		{&s.Button, &other.Button},
		{&s.BigBlind, &other.BigBlind},
	} {
		pair.dst.Hands += pair.src.Hands
		pair.dst.SumBB += pair.src.SumBB
		pair.dst.SumBB2 += pair.src.SumBB2
	}
	s.MaxPotBB = max(s.MaxPotBB, other.MaxPotBB)
}

// Median returns the median hand result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at p, from 0.0 to 1.0
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the buckets add up
func (s *Statistics) Validate() error {
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if math.Abs(s.SumBB-s.ShowdownBB-s.NonShowdownBB) > 1e-6 {
		return fmt.Errorf("ledger mismatch: total=%.6f showdown=%.6f non-showdown=%.6f",
			s.SumBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Button.Hands+s.BigBlind.Hands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)",
			s.Button.Hands+s.BigBlind.Hands, s.Hands)
	}
	if s.ShowdownWins+s.NonShowdownWins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", s.ShowdownWins+s.NonShowdownWins, s.Hands)
	}
	return nil
}
