package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Location identifies a place a card can be taken from or put on. The only
// implementations are Column and Reserve.
type Location interface {
	isLocation()
	fmt.Stringer
}

// Column is one of the tableau columns, indexed from 0 to NumColumns-1
type Column int

// Reserve is the single-card slot that feeds the minor arcana foundations
type Reserve struct{}

func (Column) isLocation()  {}
func (Reserve) isLocation() {}

func (c Column) String() string { return "column " + strconv.Itoa(int(c)) }
func (Reserve) String() string  { return "reserve" }

// Locations returns every location in cascade scan order: the reserve
// first, then the columns in ascending order.
func Locations() []Location {
	locs := make([]Location, 0, NumColumns+1)
	locs = append(locs, Reserve{})
	for i := 0; i < NumColumns; i++ {
		locs = append(locs, Column(i))
	}
	return locs
}

// ParseLocation parses a column number or "r" for the reserve
func ParseLocation(s string) (Location, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "r" || s == "reserve" {
		return Reserve{}, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= NumColumns {
		return nil, fmt.Errorf("invalid location %q: expected a column between 0 and %d or 'r'", s, NumColumns-1)
	}
	return Column(i), nil
}

// Move is an attempt to relocate the topmost card at Source onto Target
type Move struct {
	Source Location
	Target Location
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.Source, m.Target)
}
