package render

import (
	"strings"
	"testing"

	"github.com/arcanaland/fortune/internal/card"
	"github.com/arcanaland/fortune/internal/config"
	"github.com/arcanaland/fortune/internal/game"
)

func plain(width int) *Renderer {
	return NewRenderer(Options{Color: false, Symbols: config.SymbolsUnicode, Width: width})
}

func TestFace(t *testing.T) {
	r := plain(80)
	cases := map[card.Card]string{
		card.MajorArcana{Value: 17}:                   "17",
		card.MinorArcana{Suit: card.Cups, Value: 12}:  "Q♥",
		card.MinorArcana{Suit: card.Coins, Value: 2}:  "2◉",
		card.MinorArcana{Suit: card.Clubs, Value: 11}: "J♣",
	}
	for c, want := range cases {
		if got := r.Face(c); got != want {
			t.Errorf("Face(%s) = %q, want %q", c, got, want)
		}
	}
}

func TestFace_ASCIISymbols(t *testing.T) {
	r := NewRenderer(Options{Symbols: config.SymbolsASCII})
	if got := r.Face(card.MinorArcana{Suit: card.Swords, Value: 10}); got != "10/" {
		t.Errorf("unexpected face: %q", got)
	}
}

func TestFace_ColorUsesPalette(t *testing.T) {
	r := NewRenderer(Options{Color: true, Symbols: config.SymbolsUnicode})
	got := r.Face(card.MinorArcana{Suit: card.Clubs, Value: 5})
	// #497327
	if !strings.HasPrefix(got, "\x1b[38;2;73;115;39m") {
		t.Errorf("unexpected escape sequence: %q", got)
	}
	if StripAnsi(got) != "5♣" {
		t.Errorf("unexpected visible text: %q", StripAnsi(got))
	}
}

func TestBoard_Grid(t *testing.T) {
	var tab game.Tableau
	tab[0] = []card.Card{card.MajorArcana{Value: 4}, card.MajorArcana{Value: 9}}
	tab[3] = []card.Card{card.MinorArcana{Suit: card.Cups, Value: 7}}
	s := game.NewGameFromTableau(tab)
	s.Minor.Blocking = card.MinorArcana{Suit: card.Swords, Value: 3}

	out := plain(120).Board(s, game.Column(0))
	lines := strings.Split(out, "\n")

	if !strings.Contains(lines[0], "(0/22)") {
		t.Errorf("unexpected major line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[3⚔]") {
		t.Errorf("expected reserved card on minor line: %q", lines[1])
	}
	// Row 0 holds the bottom of each column, row 1 the top of column 0
	if !strings.HasPrefix(lines[4], "9") {
		t.Errorf("expected the buried card first: %q", lines[4])
	}
	if !strings.HasPrefix(lines[5], ">4") {
		t.Errorf("expected the selected topmost card last: %q", lines[5])
	}
}

func TestBoard_NarrowList(t *testing.T) {
	var tab game.Tableau
	tab[2] = []card.Card{card.MajorArcana{Value: 1}, card.MajorArcana{Value: 2}}
	s := game.NewGameFromTableau(tab)

	out := plain(40).Board(s, game.Reserve{})

	if !strings.Contains(out, " 2:  2 1") {
		t.Errorf("expected column 2 listed bottom to top, got:\n%s", out)
	}
	if !strings.Contains(out, ">[  ]") {
		t.Errorf("expected the selected reserve to be marked, got:\n%s", out)
	}
}

func TestDescribe(t *testing.T) {
	lines := plain(80).Describe(card.MinorArcana{Suit: card.Coins, Value: 13})
	joined := strings.Join(lines, "\n")

	for _, want := range []string{"King of Coins", "minor_arcana.coins.13", "Q◉"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in:\n%s", want, joined)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, l := range lines {
		if len(l) > 15 {
			t.Errorf("line too long: %q", l)
		}
	}
	if strings.Join(lines, " ") != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("words lost: %v", lines)
	}
}
