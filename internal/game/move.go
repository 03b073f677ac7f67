package game

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
)

// IsValid reports whether move may be played on s. It has no side effects.
func IsValid(s GameState, move Move) bool {
	if move.Source == move.Target {
		return false
	}

	selected, ok := s.CardAt(move.Source)
	if !ok {
		return false
	}

	switch target := move.Target.(type) {
	case Reserve:
		// Any card may be parked, as long as the slot is free
		return s.Minor.Blocking == nil
	case Column:
		top, ok := s.Tableau.Top(int(target))
		return !ok || card.AreStackable(selected, top)
	default:
		panic(fmt.Sprintf("game: unknown location %T", target))
	}
}

// TryMakeMove plays move if it is valid and then resolves cascades. An
// invalid move is dropped silently, but the cascade still runs.
func TryMakeMove(s GameState, move Move) GameState {
	if !IsValid(s, move) {
		return ApplyCascades(s)
	}

	selected, next, ok := s.pop(move.Source)
	if !ok {
		panic(fmt.Sprintf("game: no card at %s after validation", move.Source))
	}
	next = next.put(selected, move.Target)
	next.Previous = s.snapshot()

	return ApplyCascades(next)
}
