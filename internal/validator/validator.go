package validator

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
	"github.com/arcanaland/fortune/internal/game"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no error was found
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	State   game.GameState
	Results ValidationResults

	seen map[card.Card]string
}

func NewValidator(state game.GameState) *Validator {
	return &Validator{
		State:   state,
		Results: ValidationResults{},
		seen:    make(map[card.Card]string, card.DeckSize),
	}
}

// Validate checks a game state against the rules every reachable state
// obeys.
func Validate(state game.GameState) ValidationResults {
	return NewValidator(state).Validate()
}

func (v *Validator) Validate() ValidationResults {
	v.validateMajorFoundation()
	v.validateMinorFoundation()
	v.validateReserve()
	v.validateTableau()
	v.validateConservation()
	v.validatePending()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// record registers c as found at where, reporting duplicates
func (v *Validator) record(c card.Card, where string) {
	if prev, ok := v.seen[c]; ok {
		v.errorf("card %s found twice: %s and %s", c, prev, where)
		return
	}
	v.seen[c] = where
}

// validateMajorFoundation checks pile bounds and ordering
func (v *Validator) validateMajorFoundation() {
	f := v.State.Major

	if f.Low != nil {
		if *f.Low < card.MinMajor || *f.Low > card.MaxMajor {
			v.errorf("major foundation low out of range: %d", *f.Low)
			return
		}
		for value := card.MinMajor; value <= *f.Low; value++ {
			v.record(card.MajorArcana{Value: value}, "major foundation")
		}
	}

	if f.High != nil {
		if *f.High < card.MinMajor || *f.High > card.MaxMajor {
			v.errorf("major foundation high out of range: %d", *f.High)
			return
		}
		for value := card.MaxMajor; value >= *f.High; value-- {
			v.record(card.MajorArcana{Value: value}, "major foundation")
		}
	}

	if f.Low != nil && f.High != nil && *f.Low >= *f.High {
		v.errorf("major foundation piles crossed: low %d, high %d", *f.Low, *f.High)
	}
}

// validateMinorFoundation checks the suit counters
func (v *Validator) validateMinorFoundation() {
	for _, suit := range card.Suits {
		counter := v.State.Minor.Counter(suit)
		if counter < game.SuitBase || counter > card.MaxMinor {
			v.errorf("%s counter out of range: %d", suit, counter)
			continue
		}
		for value := card.MinMinor; value <= counter; value++ {
			v.record(card.MinorArcana{Suit: suit, Value: value}, suit.String()+" foundation")
		}
	}
}

// validateReserve checks the card held in the reserve slot
func (v *Validator) validateReserve() {
	c, ok := v.State.Reserve()
	if !ok {
		return
	}
	if !inRange(c) {
		v.errorf("reserve holds an invalid card: %s", c)
		return
	}
	v.record(c, "reserve")
}

// validateTableau checks every card in the columns
func (v *Validator) validateTableau() {
	for i, col := range v.State.Columns() {
		for depth, c := range col {
			if c == nil {
				v.errorf("column %d has an empty slot at depth %d", i, depth)
				continue
			}
			if !inRange(c) {
				v.errorf("column %d holds an invalid card: %s", i, c)
				continue
			}
			v.record(c, fmt.Sprintf("column %d", i))
		}
	}
}

// validateConservation checks that all 70 cards are accounted for
func (v *Validator) validateConservation() {
	if len(v.seen) == card.DeckSize {
		return
	}
	var missing []string
	for _, c := range card.All() {
		if _, ok := v.seen[c]; !ok {
			missing = append(missing, card.ID(c))
		}
	}
	v.errorf("expected %d cards, found %d (missing: %v)", card.DeckSize, len(v.seen), missing)
}

// validatePending warns about cards a cascade should already have absorbed
func (v *Validator) validatePending() {
	if loc, ok := game.FindReadyForFoundation(v.State); ok {
		v.warnf("card at %s is ready for a foundation but was not moved", loc)
	}
}

func inRange(c card.Card) bool {
	switch c := c.(type) {
	case card.MajorArcana:
		return c.Value >= card.MinMajor && c.Value <= card.MaxMajor
	case card.MinorArcana:
		return c.Value >= card.MinMinor && c.Value <= card.MaxMinor
	default:
		return false
	}
}
