package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pairs/internal/deck"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestValidateSavedLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, deck.NewLayout("practice", deck.ShuffleDeck(deck.CreateDeck())).Save(path))

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateBrokenDeck(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
[deck]
schema_version = "2.0"

[[cards]]
id = "0-a"
icon = "heart"
match_id = 0

[[cards]]
id = "0-a"
icon = "star"
match_id = 0

[[cards]]
id = "1-a"
icon = "joker"
match_id = 2
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)

	assert.Contains(t, results.Errors, "unsupported schema_version: 2.0 (supported: 1.0)")
	assert.Contains(t, results.Errors, "deck has 3 cards, expected 16")
	assert.Contains(t, results.Errors, "duplicate card id: 0-a")
	assert.Contains(t, results.Errors, `unknown icon "joker" on card 1-a`)
	assert.Contains(t, results.Errors, "pair 0 has different icons: heart, star")
	assert.Contains(t, results.Errors, "match_id 2 appears on 1 cards, expected 2")

	assert.Contains(t, results.Warnings, "deck.id is not set")
	assert.Contains(t, results.Warnings, "card id 1-a does not agree with match_id 2")
}

func TestValidateMatchIDRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deck.toml")
	layout := deck.NewLayout("renumbered", deck.CreateDeck())
	layout.Cards[14].MatchID = 8
	layout.Cards[15].MatchID = 8
	layout.Cards[14].ID = "8-a"
	layout.Cards[15].ID = "8-b"
	require.NoError(t, layout.Save(path))

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"match_id 8 is outside 0..7"}, results.Errors)

	_, err = deck.Load(path)
	assert.ErrorIs(t, err, deck.ErrInvalidDeck)
}

func TestValidateUnreadable(t *testing.T) {
	t.Parallel()

	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.Error(t, err)

	_, err = NewValidator(writeFile(t, "[deck\n")).Validate()
	assert.Error(t, err)
}
