// Package srs implements the three-level familiarity scheduler used by every
// study mode: a term climbs learning → familiar → mastered one step per correct
// answer and falls back one step per incorrect answer.
package srs

import (
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// DefaultUnit is the length of one interval unit in production.
const DefaultUnit = 24 * time.Hour

// Interval units per level. A failed answer is always retried after one unit.
const (
	learningUnits = 1
	familiarUnits = 3
	masteredUnits = 7
	retryUnits    = 1
)

// Advance returns the level that follows current after an answer.
// A nil or unknown level counts as learning.
func Advance(current *domain.FamiliarityLevel, correct bool) domain.FamiliarityLevel {
	level := domain.FamiliarityLearning
	if current != nil && current.IsValid() {
		level = *current
	}

	if correct {
		switch level {
		case domain.FamiliarityLearning:
			return domain.FamiliarityFamiliar
		default:
			return domain.FamiliarityMastered
		}
	}

	switch level {
	case domain.FamiliarityMastered:
		return domain.FamiliarityFamiliar
	default:
		return domain.FamiliarityLearning
	}
}

// IntervalUnits returns how many units a term at level waits before its next review.
func IntervalUnits(level domain.FamiliarityLevel) int {
	switch level {
	case domain.FamiliarityFamiliar:
		return familiarUnits
	case domain.FamiliarityMastered:
		return masteredUnits
	default:
		return learningUnits
	}
}

// Policy converts levels into wall-clock delays. The zero value uses DefaultUnit.
type Policy struct {
	Unit time.Duration
}

// NewPolicy returns a policy with the given unit, falling back to DefaultUnit
// for non-positive values.
func NewPolicy(unit time.Duration) Policy {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return Policy{Unit: unit}
}

func (p Policy) unit() time.Duration {
	if p.Unit <= 0 {
		return DefaultUnit
	}
	return p.Unit
}

// IntervalFor returns the review delay for a term that sits at level.
func (p Policy) IntervalFor(level domain.FamiliarityLevel) time.Duration {
	return time.Duration(IntervalUnits(level)) * p.unit()
}

// Schedule applies one answer: it returns the new level and the delay until
// the next review.
func (p Policy) Schedule(current *domain.FamiliarityLevel, correct bool) (domain.FamiliarityLevel, time.Duration) {
	next := Advance(current, correct)
	if !correct {
		return next, retryUnits * p.unit()
	}
	return next, p.IntervalFor(next)
}
