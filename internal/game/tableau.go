package game

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
)

const (
	// NumColumns is the number of tableau columns
	NumColumns = 11
	// EmptyColumn is the column left empty by the deal
	EmptyColumn = 5
	// ColumnHeight is the number of cards dealt to every other column
	ColumnHeight = 7
)

// Tableau holds the columns. The first element of a column is its topmost
// card. Columns are never modified in place: every change builds a new
// slice, so tableaux can be copied by value.
type Tableau [NumColumns][]card.Card

func checkColumn(i int) {
	if i < 0 || i >= NumColumns {
		panic(fmt.Sprintf("game: column %d does not exist", i))
	}
}

// Column returns the cards of column i, topmost first
func (t Tableau) Column(i int) []card.Card {
	checkColumn(i)
	return t[i]
}

// Top returns the topmost card of column i
func (t Tableau) Top(i int) (card.Card, bool) {
	col := t.Column(i)
	if len(col) == 0 {
		return nil, false
	}
	return col[0], true
}

func (t Tableau) pop(i int) Tableau {
	checkColumn(i)
	t[i] = t[i][1:]
	return t
}

func (t Tableau) push(i int, c card.Card) Tableau {
	checkColumn(i)
	col := make([]card.Card, 0, len(t[i])+1)
	col = append(col, c)
	t[i] = append(col, t[i]...)
	return t
}

// Len returns the number of cards left in the tableau
func (t Tableau) Len() int {
	n := 0
	for _, col := range t {
		n += len(col)
	}
	return n
}
