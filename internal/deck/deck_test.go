package deck

import (
	"math/rand/v2"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pairs/internal/card"
)

func ids(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestCreateDeck(t *testing.T) {
	t.Parallel()

	d := CreateDeck()
	require.Len(t, d, Size)

	counts := make(map[int]int)
	seen := make(map[string]bool)
	for _, c := range d {
		counts[c.MatchID]++
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Icon.Name)
		assert.NotEmpty(t, c.Icon.Path)
	}

	assert.Len(t, counts, Pairs)
	for matchID, n := range counts {
		assert.Equal(t, 2, n, "match id %d", matchID)
	}

	assert.NoError(t, Check(d))
	assert.Equal(t, d, CreateDeck(), "deck construction is deterministic")
}

func TestShuffleDeck(t *testing.T) {
	t.Parallel()

	d := CreateDeck()
	original := ids(d)

	shuffled := ShuffleDeck(d)
	require.Len(t, shuffled, len(d))
	assert.Equal(t, original, ids(d), "input must not be reordered")

	got := ids(shuffled)
	want := append([]string(nil), original...)
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)

	shuffled[0] = card.Card{ID: "x"}
	assert.Equal(t, original, ids(d), "result must not alias the input")
	assert.NoError(t, Check(ShuffleDeck(d)))
}

func TestShuffleDeckWithSeed(t *testing.T) {
	t.Parallel()

	d := CreateDeck()
	a := ShuffleDeckWith(d, rand.New(rand.NewPCG(1, 2)))
	b := ShuffleDeckWith(d, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)
}

func TestShuffleDeckReachesEveryPosition(t *testing.T) {
	t.Parallel()

	d := CreateDeck()
	r := rand.New(rand.NewPCG(7, 11))
	positions := make(map[int]bool)
	for range 2000 {
		for i, c := range ShuffleDeckWith(d, r) {
			if c.ID == d[0].ID {
				positions[i] = true
			}
		}
	}
	assert.Len(t, positions, Size)
}

func TestShuffleDeckEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ShuffleDeck(nil))
	assert.NotNil(t, ShuffleDeck(nil))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	d := CreateDeck()
	assert.ErrorIs(t, Check(d[:Size-1]), ErrInvalidDeck)

	dup := append([]card.Card(nil), d...)
	dup[1].ID = dup[0].ID
	assert.ErrorIs(t, Check(dup), ErrInvalidDeck)

	broken := append([]card.Card(nil), d...)
	broken[1].MatchID = 3
	assert.ErrorIs(t, Check(broken), ErrInvalidDeck)

	// Pair 7 renumbered to 8 still pairs up but would share pair 0's colour
	renumbered := append([]card.Card(nil), d...)
	renumbered[14].MatchID = 8
	renumbered[15].MatchID = 8
	assert.ErrorIs(t, Check(renumbered), ErrInvalidDeck)

	icons := append([]card.Card(nil), d...)
	icons[1].Icon = card.Icons[9]
	assert.ErrorIs(t, Check(icons), ErrInvalidDeck)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "decks", "layout.toml")
	layout := NewLayout("practice", ShuffleDeck(CreateDeck()))
	require.NoError(t, layout.Save(path))
	assert.Equal(t, path, layout.Path)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, layout.ID, loaded.ID)
	assert.Equal(t, "practice", loaded.Name)
	assert.Equal(t, layout.Cards, loaded.Cards)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
