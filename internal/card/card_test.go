package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := NewID(7, VariantB)
	assert.Equal(t, "7-b", id)

	matchID, variant, err := ParseID(id)
	require.NoError(t, err)
	assert.Equal(t, 7, matchID)
	assert.Equal(t, VariantB, variant)

	for _, bad := range []string{"", "7", "7-", "x-a", "-1-a"} {
		_, _, err := ParseID(bad)
		assert.Error(t, err, "ParseID(%q)", bad)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	a := Card{ID: "0-a", Icon: Icons[0], MatchID: 0}
	b := Card{ID: "0-b", Icon: Icons[0], MatchID: 0}
	c := Card{ID: "1-a", Icon: Icons[1], MatchID: 1}

	assert.True(t, a.Matches(b))
	assert.False(t, a.Matches(a))
	assert.False(t, a.Matches(c))
}

func TestIcons(t *testing.T) {
	t.Parallel()

	require.GreaterOrEqual(t, len(Icons), 8)
	names := make(map[string]bool)
	for _, icon := range Icons {
		assert.False(t, names[icon.Name], "duplicate icon %s", icon.Name)
		names[icon.Name] = true

		found, ok := LookupIcon(icon.Name)
		assert.True(t, ok)
		assert.Equal(t, icon, found)
	}

	_, ok := LookupIcon("joker")
	assert.False(t, ok)
}

func TestPairColor(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		hex := PairColor(i, 8).Hex()
		assert.False(t, seen[hex], "pair %d reuses colour %s", i, hex)
		seen[hex] = true
	}
	assert.Equal(t, PairColor(0, 8), PairColor(8, 8))
	assert.NotPanics(t, func() { PairColor(1, 0) })
}
