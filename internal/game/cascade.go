package game

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
)

// IsReadyForFoundation reports whether c is the next card of one of the
// foundations.
func IsReadyForFoundation(s GameState, c card.Card) bool {
	switch c := c.(type) {
	case card.MajorArcana:
		return s.Major.Accepts(c.Value)
	case card.MinorArcana:
		return c.Value == s.Minor.Next(c.Suit)
	default:
		panic(fmt.Sprintf("game: unknown card type %T", c))
	}
}

// FindReadyForFoundation returns the first location, in scan order, whose
// topmost card can go to a foundation. While the reserve holds a card no
// minor arcana may advance, including the reserved card itself.
func FindReadyForFoundation(s GameState) (Location, bool) {
	blocked := s.Minor.Blocking != nil

	for _, loc := range Locations() {
		c, ok := s.CardAt(loc)
		if !ok {
			continue
		}
		if _, minor := c.(card.MinorArcana); minor && blocked {
			continue
		}
		if IsReadyForFoundation(s, c) {
			return loc, true
		}
	}
	return nil, false
}

// ApplyCascades moves eligible cards to the foundations until none is left.
// Every step removes a card from play, so the loop ends.
func ApplyCascades(s GameState) GameState {
	for {
		loc, ok := FindReadyForFoundation(s)
		if !ok {
			return s
		}

		c, next, ok := s.pop(loc)
		if !ok {
			panic(fmt.Sprintf("game: no card at %s after cascade scan", loc))
		}
		s = next.absorb(c)
	}
}

func (s GameState) absorb(c card.Card) GameState {
	switch c := c.(type) {
	case card.MajorArcana:
		s.Major = s.Major.with(c.Value)
	case card.MinorArcana:
		s.Minor = s.Minor.with(c)
	default:
		panic(fmt.Sprintf("game: unknown card type %T", c))
	}
	return s
}
