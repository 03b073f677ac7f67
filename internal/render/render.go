package render

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/fortune/internal/card"
	"github.com/arcanaland/fortune/internal/config"
	"github.com/arcanaland/fortune/internal/deck"
	"github.com/arcanaland/fortune/internal/game"
)

// Table colors of the game
const (
	majorHex     = "#eea96b"
	emptySlotHex = "#946e3e"
)

var suitHex = map[card.Suit]string{
	card.Clubs:  "#497327",
	card.Coins:  "#956f3f",
	card.Cups:   "#963728",
	card.Swords: "#326973",
}

var unicodeSymbols = map[card.Suit]string{
	card.Coins:  "◉",
	card.Swords: "⚔",
	card.Clubs:  "♣",
	card.Cups:   "♥",
}

var asciiSymbols = map[card.Suit]string{
	card.Coins:  "$",
	card.Swords: "/",
	card.Clubs:  "&",
	card.Cups:   "U",
}

const (
	cellWidth = 5
	// minBoardWidth is the narrowest terminal that fits the columns side by side
	minBoardWidth = game.NumColumns*cellWidth + 2
)

// Options control how cards are drawn
type Options struct {
	Color   bool
	Symbols string
	Width   int
	Names   *deck.Names
}

// OptionsFromConfig builds options for a config, turning color off when
// out is not a terminal.
func OptionsFromConfig(cfg *config.Config, out *os.File) Options {
	return Options{
		Color:   cfg.Color && IsTerminal(out),
		Symbols: cfg.Symbols,
		Width:   TerminalWidth(out),
	}
}

// Renderer draws game states as text
type Renderer struct {
	opts    Options
	symbols map[card.Suit]string
	palette map[card.Suit]colorful.Color
	major   colorful.Color
	empty   colorful.Color

	label  *colorize.Color
	accent *colorize.Color
}

func NewRenderer(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Names == nil {
		opts.Names = deck.Default()
	}

	r := &Renderer{
		opts:    opts,
		symbols: unicodeSymbols,
		palette: make(map[card.Suit]colorful.Color, len(suitHex)),
		major:   mustHex(majorHex),
		empty:   mustHex(emptySlotHex),
		label:   colorize.New(colorize.FgCyan),
		accent:  colorize.New(colorize.FgHiWhite, colorize.Bold),
	}
	if opts.Symbols == config.SymbolsASCII {
		r.symbols = asciiSymbols
	}
	for suit, hex := range suitHex {
		r.palette[suit] = mustHex(hex)
	}
	if opts.Color {
		r.label.EnableColor()
		r.accent.EnableColor()
	} else {
		r.label.DisableColor()
		r.accent.DisableColor()
	}
	return r
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad palette color %s: %v", s, err))
	}
	return c
}

// Symbol returns the glyph of suit
func (r *Renderer) Symbol(suit card.Suit) string {
	return r.symbols[suit]
}

// Face returns the colored short text of c, e.g. "Q♥" or "17"
func (r *Renderer) Face(c card.Card) string {
	switch c := c.(type) {
	case card.MajorArcana:
		return r.paint(card.Face(c), r.major)
	case card.MinorArcana:
		return r.paint(card.Face(c)+r.Symbol(c.Suit), r.palette[c.Suit])
	default:
		panic(fmt.Sprintf("render: unknown card type %T", c))
	}
}

// paint wraps s in a 24-bit foreground escape sequence
func (r *Renderer) paint(s string, c colorful.Color) string {
	if !r.opts.Color {
		return s
	}
	red, green, blue := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, s)
}

// Board draws the foundations, the reserve and the tableau. selected,
// which may be nil, is highlighted.
func (r *Renderer) Board(s game.GameState, selected game.Location) string {
	var b strings.Builder

	b.WriteString(r.majorFoundation(s.Major))
	b.WriteString("\n")
	b.WriteString(r.minorFoundation(s.Minor, selected))
	b.WriteString("\n\n")

	if r.opts.Width >= minBoardWidth {
		b.WriteString(r.tableauGrid(s.Tableau, selected))
	} else {
		b.WriteString(r.tableauList(s.Tableau, selected))
	}

	return b.String()
}

func (r *Renderer) majorFoundation(f game.MajorFoundation) string {
	low := r.paint("--", r.empty)
	if f.Low != nil {
		low = r.Face(card.MajorArcana{Value: *f.Low})
	}
	high := r.paint("--", r.empty)
	if f.High != nil {
		high = r.Face(card.MajorArcana{Value: *f.High})
	}
	return fmt.Sprintf("%s %s ... %s  (%d/22)",
		r.label.Sprint("Major:  "), low, high, f.Placed())
}

func (r *Renderer) minorFoundation(f game.MinorFoundation, selected game.Location) string {
	var parts []string
	for _, suit := range card.Suits {
		counter := f.Counter(suit)
		if counter == game.SuitBase {
			parts = append(parts, r.paint("A"+r.Symbol(suit), r.palette[suit]))
			continue
		}
		parts = append(parts, r.Face(card.MinorArcana{Suit: suit, Value: counter}))
	}

	reserve := r.paint("[  ]", r.empty)
	if f.Blocking != nil {
		reserve = "[" + r.Face(f.Blocking) + "]"
	}
	if _, ok := selected.(game.Reserve); ok {
		reserve = r.accent.Sprint(">") + reserve
	}

	return fmt.Sprintf("%s %s   %s %s",
		r.label.Sprint("Minor:  "), strings.Join(parts, " "), r.label.Sprint("Reserve (r):"), reserve)
}

// tableauGrid prints the columns side by side. The topmost card of each
// column is on the last line of that column.
func (r *Renderer) tableauGrid(t game.Tableau, selected game.Location) string {
	var b strings.Builder

	height := 1
	for _, col := range t {
		height = max(height, len(col))
	}

	for i := range t {
		b.WriteString(pad(r.label.Sprintf("%d", i), cellWidth))
	}
	b.WriteString("\n")

	for row := 0; row < height; row++ {
		for i, col := range t {
			depth := len(col) - 1 - row
			switch {
			case len(col) == 0 && row == 0:
				b.WriteString(pad(r.paint("..", r.empty), cellWidth))
			case depth < 0:
				b.WriteString(pad("", cellWidth))
			case depth == 0 && selected == game.Column(i):
				b.WriteString(pad(r.accent.Sprint(">")+r.Face(col[depth]), cellWidth))
			default:
				b.WriteString(pad(r.Face(col[depth]), cellWidth))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// tableauList prints one column per line, topmost card last
func (r *Renderer) tableauList(t game.Tableau, selected game.Location) string {
	var b strings.Builder
	for i, col := range t {
		marker := " "
		if selected == game.Column(i) {
			marker = r.accent.Sprint(">")
		}
		faces := make([]string, 0, len(col))
		for depth := len(col) - 1; depth >= 0; depth-- {
			faces = append(faces, r.Face(col[depth]))
		}
		if len(faces) == 0 {
			faces = append(faces, r.paint("..", r.empty))
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, pad(r.label.Sprintf("%d:", i), 3), strings.Join(faces, " "))
	}
	return b.String()
}

// Describe returns the info lines shown for a single card
func (r *Renderer) Describe(c card.Card) []string {
	names := r.opts.Names

	var lines []string
	lines = append(lines, r.label.Sprint("Card: ")+r.accent.Sprint(names.Name(c)))
	lines = append(lines, r.label.Sprint("ID:   ")+card.ID(c))
	lines = append(lines, r.label.Sprint("Face: ")+r.Face(c))

	switch c := c.(type) {
	case card.MajorArcana:
		lines = append(lines, r.label.Sprint("Type: ")+"Major Arcana")
	case card.MinorArcana:
		lines = append(lines, r.label.Sprint("Type: ")+"Minor Arcana")
		lines = append(lines, r.label.Sprint("Suit: ")+fmt.Sprintf("%s %s", c.Suit, r.Symbol(c.Suit)))
	}

	var neighbours []string
	for _, n := range card.Neighbours(c) {
		neighbours = append(neighbours, r.Face(n))
	}
	lines = append(lines, r.label.Sprint("Stacks with: ")+strings.Join(neighbours, ", "))

	if alt := names.AltText(c); alt != "" {
		lines = append(lines, "")
		lines = append(lines, r.label.Sprint("Description:"))
		lines = append(lines, wrapText(alt, r.opts.Width-4)...)
	}

	return lines
}

// TerminalWidth returns the width of f, or 80 when it is not a terminal
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// pad right-pads s to width visible characters
func pad(s string, width int) string {
	visible := utf8.RuneCountInString(StripAnsi(s))
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
