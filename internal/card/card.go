package card

import "fmt"

// Suit identifies one of the four minor arcana suits
type Suit int

const (
	Coins Suit = iota
	Swords
	Clubs
	Cups
)

// Suits lists the suits in deck order
var Suits = []Suit{Coins, Swords, Clubs, Cups}

// Value bounds for both families
const (
	MinMajor = 0
	MaxMajor = 21
	MinMinor = 2
	MaxMinor = 13

	// DeckSize is the number of cards in a full deck
	DeckSize = (MaxMajor - MinMajor + 1) + 4*(MaxMinor-MinMinor+1)
)

func (s Suit) String() string {
	switch s {
	case Coins:
		return "coins"
	case Swords:
		return "swords"
	case Clubs:
		return "clubs"
	case Cups:
		return "cups"
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

// Card represents a tarot card. The only implementations are MajorArcana
// and MinorArcana.
type Card interface {
	isCard()
	fmt.Stringer
}

// MajorArcana is one of the 22 trump cards, numbered 0 (The Fool) to 21 (The World)
type MajorArcana struct {
	Value int
}

// MinorArcana is a suited card with a value between 2 and 13
type MinorArcana struct {
	Suit  Suit
	Value int
}

func (MajorArcana) isCard() {}
func (MinorArcana) isCard() {}

func (c MajorArcana) String() string { return c.ID() }
func (c MinorArcana) String() string { return c.ID() }

// All returns every card of the deck in a fixed order: the major arcana
// from 0 to 21, then each suit from 2 to 13.
func All() []Card {
	cards := make([]Card, 0, DeckSize)
	for v := MinMajor; v <= MaxMajor; v++ {
		cards = append(cards, MajorArcana{Value: v})
	}
	for _, s := range Suits {
		for v := MinMinor; v <= MaxMinor; v++ {
			cards = append(cards, MinorArcana{Suit: s, Value: v})
		}
	}
	return cards
}

// AreStackable reports whether one card may be placed on the other.
// Both must belong to the same family (and suit, for minor arcana) and
// their values must differ by exactly one, in either direction.
func AreStackable(a, b Card) bool {
	switch a := a.(type) {
	case MajorArcana:
		b, ok := b.(MajorArcana)
		return ok && adjacent(a.Value, b.Value)
	case MinorArcana:
		b, ok := b.(MinorArcana)
		return ok && a.Suit == b.Suit && adjacent(a.Value, b.Value)
	default:
		panic(fmt.Sprintf("card: unknown card type %T", a))
	}
}

func adjacent(a, b int) bool {
	return a-b == 1 || b-a == 1
}

// Neighbours returns the cards that can be stacked on c
func Neighbours(c Card) []Card {
	var out []Card
	for _, other := range All() {
		if AreStackable(c, other) {
			out = append(out, other)
		}
	}
	return out
}
