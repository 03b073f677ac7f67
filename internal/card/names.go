package card

import (
	"fmt"
	"strconv"
	"strings"
)

var majorNames = [...]string{
	"The Fool",
	"The Magician",
	"The High Priestess",
	"The Empress",
	"The Emperor",
	"The Hierophant",
	"The Lovers",
	"The Chariot",
	"Strength",
	"The Hermit",
	"Wheel of Fortune",
	"Justice",
	"The Hanged Man",
	"Death",
	"Temperance",
	"The Devil",
	"The Tower",
	"The Star",
	"The Moon",
	"The Sun",
	"Judgement",
	"The World",
}

// rankWords follows the Arcana Land rank vocabulary. Jack, queen and king
// are stored as page, queen and king.
var rankWords = map[int]string{
	2: "two", 3: "three", 4: "four", 5: "five", 6: "six", 7: "seven",
	8: "eight", 9: "nine", 10: "ten", 11: "page", 12: "queen", 13: "king",
}

// suitAliases maps the Arcana Land suit names onto ours
var suitAliases = map[string]Suit{
	"coins":     Coins,
	"pentacles": Coins,
	"swords":    Swords,
	"clubs":     Clubs,
	"wands":     Clubs,
	"cups":      Cups,
}

// ParseSuit returns the suit with the given name or alias
func ParseSuit(name string) (Suit, error) {
	s, ok := suitAliases[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown suit: %s", name)
	}
	return s, nil
}

// RankWord returns the rank word used in card IDs and names files
func RankWord(value int) string {
	if w, ok := rankWords[value]; ok {
		return w
	}
	return strconv.Itoa(value)
}

// ID returns the canonical ID of the card (e.g. major_arcana.07)
func (c MajorArcana) ID() string {
	return fmt.Sprintf("major_arcana.%02d", c.Value)
}

// ID returns the canonical ID of the card (e.g. minor_arcana.cups.12)
func (c MinorArcana) ID() string {
	return fmt.Sprintf("minor_arcana.%s.%d", c.Suit, c.Value)
}

// ID returns the canonical ID of any card
func ID(c Card) string {
	switch c := c.(type) {
	case MajorArcana:
		return c.ID()
	case MinorArcana:
		return c.ID()
	default:
		panic(fmt.Sprintf("card: unknown card type %T", c))
	}
}

// Parse parses a canonical card ID. Minor arcana accept either a number
// or a rank word, and Arcana Land suit aliases.
func Parse(id string) (Card, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(id)), ".")

	switch {
	case parts[0] == "major_arcana" && len(parts) == 2:
		v, err := strconv.Atoi(parts[1])
		if err != nil || v < MinMajor || v > MaxMajor {
			return nil, fmt.Errorf("invalid major arcana number: %s", parts[1])
		}
		return MajorArcana{Value: v}, nil
	case parts[0] == "minor_arcana" && len(parts) == 3:
		suit, err := ParseSuit(parts[1])
		if err != nil {
			return nil, err
		}
		v, err := parseRank(parts[2])
		if err != nil {
			return nil, err
		}
		return MinorArcana{Suit: suit, Value: v}, nil
	}

	return nil, fmt.Errorf("invalid card ID format: %s", id)
}

func parseRank(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		if v < MinMinor || v > MaxMinor {
			return 0, fmt.Errorf("minor arcana value out of range: %d", v)
		}
		return v, nil
	}
	for v, w := range rankWords {
		if w == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown rank: %s", s)
}

// Name returns the default English name of the card
func Name(c Card) string {
	switch c := c.(type) {
	case MajorArcana:
		if c.Value >= 0 && c.Value < len(majorNames) {
			return majorNames[c.Value]
		}
		return fmt.Sprintf("Major Arcana %02d", c.Value)
	case MinorArcana:
		suit := c.Suit.String()
		return fmt.Sprintf("%s of %s", titleCase(RankWord(c.Value)), titleCase(suit))
	default:
		panic(fmt.Sprintf("card: unknown card type %T", c))
	}
}

// Face returns the short text printed on the card: the number for major
// arcana, and the value with J, Q or K for minor arcana court cards.
func Face(c Card) string {
	switch c := c.(type) {
	case MajorArcana:
		return strconv.Itoa(c.Value)
	case MinorArcana:
		switch c.Value {
		case 11:
			return "J"
		case 12:
			return "Q"
		case 13:
			return "K"
		}
		return strconv.Itoa(c.Value)
	default:
		panic(fmt.Sprintf("card: unknown card type %T", c))
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
