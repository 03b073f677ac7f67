package game

import (
	"math/rand/v2"

	"github.com/arcanaland/fortune/internal/card"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// StdRNG delegates to math/rand/v2 (auto-seeded).
type StdRNG struct{}

func (StdRNG) Intn(n int) int { return rand.IntN(n) }

// SeededRNG is a reproducible RNG for replaying a deal.
type SeededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns an RNG that always yields the same sequence for seed
func NewSeededRNG(seed uint64) *SeededRNG {
	return &SeededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededRNG) Intn(n int) int { return s.r.IntN(n) }

// Shuffle returns a uniformly shuffled copy of cards (Fisher-Yates).
func Shuffle(cards []card.Card, rng RNG) []card.Card {
	out := append([]card.Card(nil), cards...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal shuffles a full deck into a tableau: ten columns of seven cards,
// with column 5 left empty.
func Deal(rng RNG) Tableau {
	deck := Shuffle(card.All(), rng)

	var t Tableau
	next := 0
	for i := 0; i < NumColumns; i++ {
		if i == EmptyColumn {
			continue
		}
		t[i] = deck[next : next+ColumnHeight : next+ColumnHeight]
		next += ColumnHeight
	}
	return t
}

// NewGame deals until no card can go straight to a foundation, so the
// player always has to make the first move.
func NewGame(rng RNG) GameState {
	for {
		s := NewGameFromTableau(Deal(rng))
		if _, ok := FindReadyForFoundation(s); !ok {
			return s
		}
	}
}
