package view

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pairs/internal/card"
	"github.com/arcanaland/pairs/internal/deck"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testCard(t *testing.T) card.Card {
	t.Helper()
	heart, ok := card.LookupIcon("heart")
	require.True(t, ok)
	return card.Card{ID: "1-a", Icon: heart, MatchID: 1}
}

func render(t *testing.T, v CardView) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, v.RenderHTML(&sb))
	return sb.String()
}

func TestCardViewState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flipped, matched bool
		want             State
		surface          string
	}{
		{false, false, FaceDown, SurfaceFaceDown},
		{true, false, FaceUp, SurfaceFaceUp},
		{true, true, Matched, SurfaceMatched},
		{false, true, Matched, SurfaceMatched},
	}

	for _, tt := range tests {
		v := CardView{IsFlipped: tt.flipped, IsMatched: tt.matched}
		assert.Equal(t, tt.want, v.State())
		assert.Equal(t, tt.surface, v.Surface())
	}
}

func TestCardViewClick(t *testing.T) {
	t.Parallel()

	for _, flipped := range []bool{false, true} {
		for _, matched := range []bool{false, true} {
			calls := 0
			v := CardView{
				Card:       testCard(t),
				IsFlipped:  flipped,
				IsMatched:  matched,
				OnActivate: func() { calls++ },
			}

			assert.True(t, v.Click())
			assert.Equal(t, 1, calls, "enabled card flipped=%v matched=%v", flipped, matched)

			calls = 0
			v.Disabled = true
			assert.False(t, v.Click())
			assert.Zero(t, calls, "disabled card flipped=%v matched=%v", flipped, matched)
		}
	}
}

func TestCardViewClickWithoutCallback(t *testing.T) {
	t.Parallel()

	v := CardView{Card: testCard(t)}
	assert.False(t, v.Click())
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	c := testCard(t)

	t.Run("face down hides icon", func(t *testing.T) {
		out := render(t, CardView{Card: c})
		assert.True(t, strings.HasPrefix(out, `<button`))
		assert.Contains(t, out, `data-card-id="1-a"`)
		assert.Contains(t, out, SurfaceFaceDown)
		assert.NotContains(t, out, "<svg")
		assert.NotContains(t, out, " disabled")
	})

	t.Run("flipped shows icon", func(t *testing.T) {
		out := render(t, CardView{Card: c, IsFlipped: true})
		assert.Contains(t, out, "<svg")
		assert.Contains(t, out, SurfaceFaceUp)
		assert.Contains(t, out, `data-state="face-up"`)
		assert.NotContains(t, out, SurfaceMatched)
	})

	t.Run("matched uses matched surface", func(t *testing.T) {
		out := render(t, CardView{Card: c, IsFlipped: true, IsMatched: true})
		assert.Contains(t, out, SurfaceMatched)
		assert.NotContains(t, out, SurfaceFaceUp)
		assert.Contains(t, out, "<svg")
	})

	t.Run("disabled attribute", func(t *testing.T) {
		out := render(t, CardView{Card: c, Disabled: true})
		assert.Contains(t, out, " disabled>")
	})
}

func TestRenderANSI(t *testing.T) {
	t.Parallel()

	c := testCard(t)
	assert.Equal(t, "[ ░ ]", CardView{Card: c}.RenderANSI())
	assert.Equal(t, "[ ♥ ]", CardView{Card: c, IsFlipped: true}.RenderANSI())
	assert.Equal(t, "[ ♥ ]", CardView{Card: c, IsMatched: true}.RenderANSI())
}

func TestPairColorEscape(t *testing.T) {
	t.Parallel()

	c := testCard(t)
	r, g, b := card.PairColor(c.MatchID, deck.Pairs).RGB255()

	pc := pairColor(c)
	pc.EnableColor()
	out := pc.Sprint(c.Icon.Glyph)
	assert.True(t, strings.HasPrefix(out, fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[", r, g, b, c.Icon.Glyph)), "got %q", out)
}

func TestBoardRender(t *testing.T) {
	t.Parallel()

	c := testCard(t)
	b := Board{
		Title:   "Pairs",
		Moves:   3,
		Matches: 1,
		Elapsed: "1:05",
		Cards: []CardView{
			{Card: c},
			{Card: c, IsFlipped: true},
			{Card: c, IsMatched: true, Disabled: true},
		},
	}

	var sb strings.Builder
	require.NoError(t, b.RenderHTML(&sb))
	page := sb.String()
	assert.Contains(t, page, "<title>Pairs</title>")
	assert.Contains(t, page, "Moves: 3")
	assert.Contains(t, page, "Time: 1:05")
	assert.Equal(t, 3, strings.Count(page, `class="memory-card"`))
	assert.Equal(t, 2, strings.Count(page, "<svg"))

	text := b.RenderANSI()
	assert.Contains(t, text, "Moves: 3")
	assert.Contains(t, text, "Time: 1:05")
	assert.Contains(t, text, "[ ░ ]")
	assert.Contains(t, text, "3")
}
