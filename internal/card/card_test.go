package card_test

import (
	"testing"

	"github.com/arcanaland/fortune/internal/card"
)

func TestAll_SeventyDistinctCards(t *testing.T) {
	cards := card.All()
	if len(cards) != card.DeckSize || card.DeckSize != 70 {
		t.Fatalf("expected 70 cards, got %d (DeckSize=%d)", len(cards), card.DeckSize)
	}

	seen := make(map[card.Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card: %s", c)
		}
		seen[c] = true
	}
}

func TestAreStackable(t *testing.T) {
	cases := []struct {
		name string
		a, b card.Card
		want bool
	}{
		{"major ascending", card.MajorArcana{Value: 3}, card.MajorArcana{Value: 4}, true},
		{"major descending", card.MajorArcana{Value: 21}, card.MajorArcana{Value: 20}, true},
		{"major gap", card.MajorArcana{Value: 3}, card.MajorArcana{Value: 5}, false},
		{"major same", card.MajorArcana{Value: 3}, card.MajorArcana{Value: 3}, false},
		{"minor same suit", card.MinorArcana{Suit: card.Cups, Value: 7}, card.MinorArcana{Suit: card.Cups, Value: 8}, true},
		{"minor other suit", card.MinorArcana{Suit: card.Cups, Value: 7}, card.MinorArcana{Suit: card.Coins, Value: 8}, false},
		{"cross family", card.MajorArcana{Value: 7}, card.MinorArcana{Suit: card.Cups, Value: 8}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := card.AreStackable(tc.a, tc.b); got != tc.want {
				t.Errorf("AreStackable(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAreStackable_Symmetric(t *testing.T) {
	cards := card.All()
	for _, a := range cards {
		for _, b := range cards {
			if card.AreStackable(a, b) != card.AreStackable(b, a) {
				t.Fatalf("asymmetric stacking for %s and %s", a, b)
			}
		}
	}
}

func TestNeighbours(t *testing.T) {
	if n := card.Neighbours(card.MajorArcana{Value: 0}); len(n) != 1 {
		t.Errorf("expected 1 neighbour for The Fool, got %d", len(n))
	}
	if n := card.Neighbours(card.MinorArcana{Suit: card.Swords, Value: 7}); len(n) != 2 {
		t.Errorf("expected 2 neighbours for seven of swords, got %d", len(n))
	}
}

func TestParse_RoundTripsIDs(t *testing.T) {
	for _, c := range card.All() {
		parsed, err := card.Parse(card.ID(c))
		if err != nil {
			t.Fatalf("parse %s: %v", card.ID(c), err)
		}
		if parsed != c {
			t.Errorf("parse %s: got %s", card.ID(c), parsed)
		}
	}
}

func TestParse_Aliases(t *testing.T) {
	cases := map[string]card.Card{
		"minor_arcana.pentacles.page": card.MinorArcana{Suit: card.Coins, Value: 11},
		"minor_arcana.wands.king":     card.MinorArcana{Suit: card.Clubs, Value: 13},
		"Minor_Arcana.Cups.two":       card.MinorArcana{Suit: card.Cups, Value: 2},
		"major_arcana.0":              card.MajorArcana{Value: 0},
	}
	for id, want := range cases {
		got, err := card.Parse(id)
		if err != nil {
			t.Fatalf("parse %s: %v", id, err)
		}
		if got != want {
			t.Errorf("parse %s: got %s, want %s", id, got, want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, id := range []string{"", "major_arcana.22", "minor_arcana.cups.1", "minor_arcana.stars.2", "minor_arcana.cups.ace", "foo.bar"} {
		if _, err := card.Parse(id); err == nil {
			t.Errorf("expected error for %q", id)
		}
	}
}

func TestNameAndFace(t *testing.T) {
	if got := card.Name(card.MajorArcana{Value: 10}); got != "Wheel of Fortune" {
		t.Errorf("unexpected name: %s", got)
	}
	if got := card.Name(card.MinorArcana{Suit: card.Cups, Value: 12}); got != "Queen of Cups" {
		t.Errorf("unexpected name: %s", got)
	}
	if got := card.Face(card.MinorArcana{Suit: card.Clubs, Value: 11}); got != "J" {
		t.Errorf("unexpected face: %s", got)
	}
	if got := card.Face(card.MinorArcana{Suit: card.Clubs, Value: 9}); got != "9" {
		t.Errorf("unexpected face: %s", got)
	}
	if got := card.Face(card.MajorArcana{Value: 21}); got != "21" {
		t.Errorf("unexpected face: %s", got)
	}
}
