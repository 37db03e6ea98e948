// Package sequence holds deterministic, not-crypto-strong number generators.
package sequence

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// DefaultMultiplier is the lambda recommended for the ITA recurrence. Values
// at or near 2.0 fall into short periodic cycles.
const DefaultMultiplier = 1.97

// ErrInvalidArgument is returned when a generator cannot be built from the
// supplied bound, seeds or multiplier.
var ErrInvalidArgument = errors.New("invalid argument")

// ItaSequence is the Itamaraca generator: each value is derived from a
// rolling window of the three most recent values. It is not safe for
// concurrent use; give every stream its own instance.
type ItaSequence struct {
	seeds      [3]float64 // oldest first
	bound      float64
	multiplier float64
}

// NewItaSequence creates a generator with the given bound, initial seed
// window (oldest first) and multiplier. All arguments must be finite.
func NewItaSequence(bound float64, seeds [3]float64, multiplier float64) (*ItaSequence, error) {
	var err error

	if !isFinite(bound) {
		err = multierr.Append(err, fmt.Errorf("%w: bound %v is not finite", ErrInvalidArgument, bound))
	}

	for i, s := range seeds {
		if !isFinite(s) {
			err = multierr.Append(err, fmt.Errorf("%w: seed %d (%v) is not finite", ErrInvalidArgument, i, s))
		}
	}

	if !isFinite(multiplier) {
		err = multierr.Append(err, fmt.Errorf("%w: multiplier %v is not finite", ErrInvalidArgument, multiplier))
	}

	if err != nil {
		return nil, err
	}

	return &ItaSequence{
		seeds:      seeds,
		bound:      bound,
		multiplier: multiplier,
	}, nil
}

// NewItaSequenceFromSlice is NewItaSequence for callers holding a seed slice.
// The slice must contain exactly three values; it is copied.
func NewItaSequenceFromSlice(bound float64, seeds []float64, multiplier float64) (*ItaSequence, error) {
	if len(seeds) != 3 {
		return nil, fmt.Errorf("%w: need exactly 3 seeds, got %d", ErrInvalidArgument, len(seeds))
	}

	return NewItaSequence(bound, [3]float64{seeds[0], seeds[1], seeds[2]}, multiplier)
}

// Next returns the next number in the sequence and shifts it into the seed
// window:
//
//	pn  = |s2 - s0|
//	out = |bound - pn*multiplier|
//	[s0, s1, s2] = [s1, s2, out]
//
// The result is never negative but is not capped at bound.
func (seq *ItaSequence) Next() float64 {
	pn := math.Abs(seq.seeds[2] - seq.seeds[0])
	out := math.Abs(seq.bound - (pn * seq.multiplier))

	seq.seeds[0] = seq.seeds[1]
	seq.seeds[1] = seq.seeds[2]
	seq.seeds[2] = out

	return out
}

// Fill calls Next once for every element of buf.
func (seq *ItaSequence) Fill(buf []float64) {
	for i := range buf {
		buf[i] = seq.Next()
	}
}

// Seeds returns a copy of the current seed window, oldest first.
func (seq *ItaSequence) Seeds() [3]float64 {
	return seq.seeds
}

func (seq *ItaSequence) Bound() float64 {
	return seq.bound
}

func (seq *ItaSequence) Multiplier() float64 {
	return seq.multiplier
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
