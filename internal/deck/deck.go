package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/fortune/internal/card"
)

// Names holds localized card names and alt text read from an Arcana Land
// names file. Cards without an entry fall back to the default English name.
type Names struct {
	Path string

	names   map[card.Card]string
	altText map[card.Card]string
}

// NameConfig is the layout of a names/<lang>.toml file. Sections mix plain
// names with a nested alt_text table, so values are decoded loosely.
type NameConfig struct {
	MajorArcana map[string]any            `toml:"major_arcana"`
	MinorArcana map[string]map[string]any `toml:"minor_arcana"`
}

// Default returns a Names with no overrides
func Default() *Names {
	return &Names{
		names:   make(map[card.Card]string),
		altText: make(map[card.Card]string),
	}
}

// Load reads names from path. path may be a names TOML file or a deck
// directory, in which case names/en.toml (or the first names file found)
// is used.
func Load(path string) (*Names, error) {
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("names file not found: %s", path)
	}

	if info.IsDir() {
		path, err = findNamesFile(path)
		if err != nil {
			return nil, err
		}
	}

	var config NameConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing names file: %w", err)
	}

	n := Default()
	n.Path = path
	n.loadMajorArcana(config.MajorArcana)
	n.loadMinorArcana(config.MinorArcana)

	return n, nil
}

// findNamesFile locates the language file of a deck directory
func findNamesFile(deckPath string) (string, error) {
	namesDir := filepath.Join(deckPath, "names")

	enTomlPath := filepath.Join(namesDir, "en.toml")
	if _, err := os.Stat(enTomlPath); err == nil {
		return enTomlPath, nil
	}

	entries, err := os.ReadDir(namesDir)
	if err != nil {
		return "", fmt.Errorf("no names directory in %s", deckPath)
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".toml" {
			return filepath.Join(namesDir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no language files found in %s", namesDir)
}

func (n *Names) loadMajorArcana(section map[string]any) {
	for key, raw := range section {
		if key == "alt_text" {
			for num, text := range stringMap(raw) {
				if c, ok := majorFromKey(num); ok {
					n.altText[c] = text
				}
			}
			continue
		}
		name, ok := raw.(string)
		if !ok {
			continue
		}
		if c, ok := majorFromKey(key); ok {
			n.names[c] = name
		}
	}
}

func (n *Names) loadMinorArcana(section map[string]map[string]any) {
	for suitName, ranks := range section {
		suit, err := card.ParseSuit(suitName)
		if err != nil {
			// Suits outside the game (custom decks) are ignored
			continue
		}
		for rank, raw := range ranks {
			if rank == "alt_text" {
				for r, text := range stringMap(raw) {
					if c, ok := minorFromRank(suit, r); ok {
						n.altText[c] = text
					}
				}
				continue
			}
			name, ok := raw.(string)
			if !ok {
				continue
			}
			if c, ok := minorFromRank(suit, rank); ok {
				n.names[c] = name
			}
		}
	}
}

// Name returns the localized name of c
func (n *Names) Name(c card.Card) string {
	if name, ok := n.names[c]; ok && name != "" {
		return name
	}
	return card.Name(c)
}

// AltText returns the description of c, if the names file has one
func (n *Names) AltText(c card.Card) string {
	return n.altText[c]
}

// Len returns the number of localized names loaded
func (n *Names) Len() int {
	return len(n.names)
}

// Helper functions

func majorFromKey(key string) (card.Card, bool) {
	v, err := strconv.Atoi(key)
	if err != nil || v < card.MinMajor || v > card.MaxMajor {
		return nil, false
	}
	return card.MajorArcana{Value: v}, true
}

func minorFromRank(suit card.Suit, rank string) (card.Card, bool) {
	c, err := card.Parse(fmt.Sprintf("minor_arcana.%s.%s", suit, rank))
	if err != nil {
		return nil, false
	}
	return c, true
}

func stringMap(raw any) map[string]string {
	out := make(map[string]string)
	m, ok := raw.(map[string]any)
	if !ok {
		return out
	}
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
