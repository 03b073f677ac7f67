package game

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
)

// MajorFoundation tracks the two major arcana piles. Low is the highest
// value placed going up from 0 and High the lowest value placed going down
// from 21; nil means the pile has not been started.
type MajorFoundation struct {
	Low  *int
	High *int
}

// NextLow returns the value the ascending pile accepts next
func (f MajorFoundation) NextLow() int {
	if f.Low == nil {
		return card.MinMajor
	}
	return *f.Low + 1
}

// NextHigh returns the value the descending pile accepts next
func (f MajorFoundation) NextHigh() int {
	if f.High == nil {
		return card.MaxMajor
	}
	return *f.High - 1
}

// Accepts reports whether value extends either pile
func (f MajorFoundation) Accepts(value int) bool {
	return value == f.NextLow() || value == f.NextHigh()
}

// Placed returns the number of major arcana absorbed so far
func (f MajorFoundation) Placed() int {
	n := 0
	if f.Low != nil {
		n += *f.Low - card.MinMajor + 1
	}
	if f.High != nil {
		n += card.MaxMajor - *f.High + 1
	}
	return n
}

// Complete reports whether all 22 major arcana were absorbed. The low
// pile may end up holding 21 itself when the high pile was never started.
func (f MajorFoundation) Complete() bool {
	return f.Placed() == card.MaxMajor-card.MinMajor+1
}

// with returns the foundation extended by value. Low is tried first. A
// value neither pile accepts means the cascade broke an invariant.
func (f MajorFoundation) with(value int) MajorFoundation {
	switch value {
	case f.NextLow():
		f.Low = &value
	case f.NextHigh():
		f.High = &value
	default:
		panic(fmt.Sprintf("game: major arcana %d does not fit foundation (next low %d, next high %d)",
			value, f.NextLow(), f.NextHigh()))
	}
	return f
}

// MinorFoundation tracks the four suit piles and the reserve slot. Each
// counter holds the highest value absorbed for its suit and starts at 1,
// the implicit ace.
type MinorFoundation struct {
	Coins  int
	Swords int
	Clubs  int
	Cups   int

	// Blocking is the card parked in the reserve, nil when empty
	Blocking card.Card
}

// SuitBase is the counter value of a suit with no card absorbed
const SuitBase = 1

// NewMinorFoundation returns the starting minor foundation
func NewMinorFoundation() MinorFoundation {
	return MinorFoundation{Coins: SuitBase, Swords: SuitBase, Clubs: SuitBase, Cups: SuitBase}
}

// Counter returns the highest value absorbed for suit
func (f MinorFoundation) Counter(suit card.Suit) int {
	switch suit {
	case card.Coins:
		return f.Coins
	case card.Swords:
		return f.Swords
	case card.Clubs:
		return f.Clubs
	case card.Cups:
		return f.Cups
	}
	panic(fmt.Sprintf("game: unknown suit %d", int(suit)))
}

// Next returns the value the suit pile accepts next
func (f MinorFoundation) Next(suit card.Suit) int {
	return f.Counter(suit) + 1
}

// Placed returns the number of minor arcana absorbed so far
func (f MinorFoundation) Placed() int {
	n := 0
	for _, s := range card.Suits {
		n += f.Counter(s) - SuitBase
	}
	return n
}

// Complete reports whether every suit pile reached the king
func (f MinorFoundation) Complete() bool {
	for _, s := range card.Suits {
		if f.Counter(s) != card.MaxMinor {
			return false
		}
	}
	return true
}

// Tops returns the topmost card of each suit pile, or nil for a pile that
// only holds its ace.
func (f MinorFoundation) Tops() map[card.Suit]card.Card {
	tops := make(map[card.Suit]card.Card, len(card.Suits))
	for _, s := range card.Suits {
		if v := f.Counter(s); v > SuitBase {
			tops[s] = card.MinorArcana{Suit: s, Value: v}
		} else {
			tops[s] = nil
		}
	}
	return tops
}

func (f MinorFoundation) with(c card.MinorArcana) MinorFoundation {
	switch c.Suit {
	case card.Coins:
		f.Coins = c.Value
	case card.Swords:
		f.Swords = c.Value
	case card.Clubs:
		f.Clubs = c.Value
	case card.Cups:
		f.Cups = c.Value
	default:
		panic(fmt.Sprintf("game: unknown suit %d", int(c.Suit)))
	}
	return f
}
