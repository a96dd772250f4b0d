// Package sm2 implements the SuperMemo-2 spaced-repetition update used to
// schedule question reviews. The update is a pure function of the prior
// scheduling state and the new recall quality; persistence is the caller's
// concern.
package sm2

import (
	"math"
	"time"
)

const (
	// MinEFactor is the floor every computed ease factor is clamped to.
	MinEFactor = 1.3

	// DefaultEFactor and DefaultInterval are the prior state used for a
	// user's first attempt on a question.
	DefaultEFactor  = 2.5
	DefaultInterval = 1

	// MinQuality and MaxQuality bound the recall score. Values outside the
	// range are a caller contract violation; validate before calling Update.
	MinQuality = 0
	MaxQuality = 5
)

// State is the scheduling state carried on an attempt.
type State struct {
	Interval    int       // days until the next review
	EFactor     float64   // ease factor, >= MinEFactor
	NextAttempt time.Time // date of the next review
}

// DefaultState returns the prior state for a question with no attempt
// history: interval 1, ease 2.5, review due today.
func DefaultState(today time.Time) State {
	return State{
		Interval:    DefaultInterval,
		EFactor:     DefaultEFactor,
		NextAttempt: startOfDay(today),
	}
}

// Update computes the scheduling state for a new attempt with the given
// recall quality, using prior as the latest previous attempt's state.
//
// A repeat attempt (another attempt on the same calendar day as the
// previous one) never moves the schedule: the prior state is returned
// unchanged regardless of quality.
//
// Otherwise the ease factor is recomputed from quality, floored at
// MinEFactor and rounded to two decimals. Quality below 3 resets the
// interval to one day; quality 3 and up grows it: a prior interval of one
// day jumps to six, anything longer is scaled by the new ease factor.
func Update(prior State, quality int, repeat bool, today time.Time) State {
	if repeat {
		return prior
	}

	ef := nextEFactor(prior.EFactor, quality)

	var interval int
	switch {
	case quality < 3:
		interval = 1
	case prior.Interval == DefaultInterval:
		interval = 6
	default:
		interval = int(math.Round(float64(prior.Interval) * ef))
	}

	return State{
		Interval:    interval,
		EFactor:     ef,
		NextAttempt: startOfDay(today).AddDate(0, 0, interval),
	}
}

// nextEFactor applies the SM-2 ease update
// ef' = ef + (0.1 - (5-q)*(0.08 + (5-q)*0.02)), clamped and rounded.
func nextEFactor(ef float64, quality int) float64 {
	q := float64(quality)
	next := ef + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if next < MinEFactor {
		next = MinEFactor
	}
	return math.Round(next*100) / 100
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
