package game

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
)

// GameState is the full state of a game. It is a value: operations return
// a new state and never modify the one they were given.
type GameState struct {
	Major   MajorFoundation
	Minor   MinorFoundation
	Tableau Tableau

	// Previous is the state before the last accepted move, used by Undo.
	// Only one step is kept.
	Previous *GameState
}

// NewGameFromTableau returns a state with empty foundations and the given
// columns. No cascade is run.
func NewGameFromTableau(t Tableau) GameState {
	return GameState{
		Minor:   NewMinorFoundation(),
		Tableau: t,
	}
}

// CardAt returns the topmost card at loc
func (s GameState) CardAt(loc Location) (card.Card, bool) {
	switch loc := loc.(type) {
	case Reserve:
		return s.Minor.Blocking, s.Minor.Blocking != nil
	case Column:
		return s.Tableau.Top(int(loc))
	default:
		panic(fmt.Sprintf("game: unknown location %T", loc))
	}
}

// Reserve returns the card parked in the reserve slot
func (s GameState) Reserve() (card.Card, bool) {
	return s.CardAt(Reserve{})
}

// Columns returns the tableau columns, topmost card first
func (s GameState) Columns() [NumColumns][]card.Card {
	return s.Tableau
}

// CardsRemaining returns the number of cards not yet on a foundation
func (s GameState) CardsRemaining() int {
	n := s.Tableau.Len()
	if s.Minor.Blocking != nil {
		n++
	}
	return n
}

// Won reports whether every card reached its foundation
func (s GameState) Won() bool {
	return s.Major.Complete() && s.Minor.Complete() && s.CardsRemaining() == 0
}

// pop removes the topmost card at loc. The second result is false when
// loc holds no card.
func (s GameState) pop(loc Location) (card.Card, GameState, bool) {
	c, ok := s.CardAt(loc)
	if !ok {
		return nil, s, false
	}
	switch loc := loc.(type) {
	case Reserve:
		s.Minor.Blocking = nil
	case Column:
		s.Tableau = s.Tableau.pop(int(loc))
	default:
		panic(fmt.Sprintf("game: unknown location %T", loc))
	}
	return c, s, true
}

func (s GameState) put(c card.Card, loc Location) GameState {
	switch loc := loc.(type) {
	case Reserve:
		s.Minor.Blocking = c
	case Column:
		s.Tableau = s.Tableau.push(int(loc), c)
	default:
		panic(fmt.Sprintf("game: unknown location %T", loc))
	}
	return s
}

// Undo returns the state before the last accepted move. The second result
// is false when there is nothing to undo.
func Undo(s GameState) (GameState, bool) {
	if s.Previous == nil {
		return s, false
	}
	return *s.Previous, true
}

func (s GameState) snapshot() *GameState {
	s.Previous = nil
	return &s
}
