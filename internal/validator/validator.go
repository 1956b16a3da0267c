package validator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/pairs/internal/card"
	"github.com/arcanaland/pairs/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	config deck.FileConfig
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. The returned error is set only when the file
// cannot be read at all; rule violations are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckSection(); err != nil {
		return v.Results, err
	}

	v.validateCardCount()
	v.validateCardIDs()
	v.validateIcons()
	v.validatePairs()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckSection() error {
	if _, err := os.Stat(v.DeckPath); os.IsNotExist(err) {
		return fmt.Errorf("deck file not found: %s", v.DeckPath)
	}

	meta, err := toml.DecodeFile(v.DeckPath, &v.config)
	if err != nil {
		return fmt.Errorf("error parsing deck file: %v", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		v.warnf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if v.config.Deck.ID == "" {
		v.warnf("deck.id is not set")
	}

	if v.config.Deck.Name == "" {
		v.warnf("deck.name is not set")
	}

	if v.config.Deck.SchemaVersion == "" {
		v.errorf("deck.schema_version is required")
	} else if v.config.Deck.SchemaVersion != deck.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", v.config.Deck.SchemaVersion, deck.SchemaVersion)
	}

	return nil
}

// validateCardCount checks the deck holds exactly deck.Size cards
func (v *Validator) validateCardCount() {
	if n := len(v.config.Cards); n != deck.Size {
		v.errorf("deck has %d cards, expected %d", n, deck.Size)
	}
}

// validateCardIDs checks IDs are unique and agree with their match IDs
func (v *Validator) validateCardIDs() {
	seen := make(map[string]bool)
	for i, entry := range v.config.Cards {
		if entry.ID == "" {
			v.errorf("cards[%d].id is required", i)
			continue
		}

		if seen[entry.ID] {
			v.errorf("duplicate card id: %s", entry.ID)
		}
		seen[entry.ID] = true

		matchID, _, err := card.ParseID(entry.ID)
		if err != nil {
			v.warnf("card id %s does not follow <match_id>-<variant>", entry.ID)
			continue
		}
		if matchID != entry.MatchID {
			v.warnf("card id %s does not agree with match_id %d", entry.ID, entry.MatchID)
		}
	}
}

// validateIcons checks every icon exists in the icon set
func (v *Validator) validateIcons() {
	for i, entry := range v.config.Cards {
		if entry.Icon == "" {
			v.errorf("cards[%d].icon is required", i)
			continue
		}
		if _, ok := card.LookupIcon(entry.Icon); !ok {
			v.errorf("unknown icon %q on card %s", entry.Icon, entry.ID)
		}
	}
}

// validatePairs checks each match ID is in range and carried by two cards
// with one icon, and that no two pairs share an icon
func (v *Validator) validatePairs() {
	groups := make(map[int][]deck.CardEntry)
	for _, entry := range v.config.Cards {
		groups[entry.MatchID] = append(groups[entry.MatchID], entry)
	}

	matchIDs := make([]int, 0, len(groups))
	for matchID := range groups {
		matchIDs = append(matchIDs, matchID)
	}
	sort.Ints(matchIDs)

	iconOwner := make(map[string]int)
	for _, matchID := range matchIDs {
		group := groups[matchID]
		if matchID < 0 || matchID >= deck.Pairs {
			v.errorf("match_id %d is outside 0..%d", matchID, deck.Pairs-1)
		}
		if len(group) != 2 {
			v.errorf("match_id %d appears on %d cards, expected 2", matchID, len(group))
			continue
		}

		if group[0].Icon != group[1].Icon {
			v.errorf("pair %d has different icons: %s, %s", matchID, group[0].Icon, group[1].Icon)
			continue
		}

		if owner, ok := iconOwner[group[0].Icon]; ok {
			v.warnf("icon %s is used by pairs %d and %d", group[0].Icon, owner, matchID)
		} else {
			iconOwner[group[0].Icon] = matchID
		}
	}
}
