package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/arcanaland/pairs/internal/card"
)

// SchemaVersion is the deck file format version written by Save
const SchemaVersion = "1.0"

// Layout is a dealt deck that can be saved and replayed
type Layout struct {
	ID    string
	Name  string
	Path  string
	Cards []card.Card
}

// NewLayout wraps an ordered deck in a layout with a fresh ID
func NewLayout(name string, cards []card.Card) *Layout {
	return &Layout{
		ID:    uuid.NewString(),
		Name:  name,
		Cards: cards,
	}
}

// Load reads a layout from a deck file and checks the pairing rules
func Load(path string) (*Layout, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var config FileConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}

	layout := &Layout{
		ID:    config.Deck.ID,
		Name:  config.Deck.Name,
		Path:  path,
		Cards: make([]card.Card, 0, len(config.Cards)),
	}

	for _, entry := range config.Cards {
		c, err := entry.Card()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
		}
		layout.Cards = append(layout.Cards, c)
	}

	if err := Check(layout.Cards); err != nil {
		return nil, err
	}

	return layout, nil
}

// Save writes the layout to path, creating parent directories as needed
func (l *Layout) Save(path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating deck directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing deck file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(file).Encode(l.Config()); err != nil {
		return fmt.Errorf("error encoding deck: %w", err)
	}

	l.Path = path
	return nil
}

// Config converts the layout to its file representation
func (l *Layout) Config() FileConfig {
	config := FileConfig{
		Deck: DeckSection{
			ID:            l.ID,
			Name:          l.Name,
			SchemaVersion: SchemaVersion,
		},
		Cards: make([]CardEntry, 0, len(l.Cards)),
	}
	for _, c := range l.Cards {
		config.Cards = append(config.Cards, CardEntry{
			ID:      c.ID,
			Icon:    c.Icon.Name,
			MatchID: c.MatchID,
		})
	}
	return config
}

// Deck file structures
type FileConfig struct {
	Deck  DeckSection `toml:"deck"`
	Cards []CardEntry `toml:"cards"`
}

type DeckSection struct {
	ID            string `toml:"id"`
	Name          string `toml:"name,omitempty"`
	SchemaVersion string `toml:"schema_version"`
}

type CardEntry struct {
	ID      string `toml:"id"`
	Icon    string `toml:"icon"`
	MatchID int    `toml:"match_id"`
}

// Card resolves the entry's icon name against the icon set
func (e CardEntry) Card() (card.Card, error) {
	icon, ok := card.LookupIcon(e.Icon)
	if !ok {
		return card.Card{}, fmt.Errorf("unknown icon %q for card %s", e.Icon, e.ID)
	}
	return card.Card{ID: e.ID, Icon: icon, MatchID: e.MatchID}, nil
}
