// Package view renders cards for the terminal and for the browser.
//
// A CardView is a dumb view: it draws what its props say and reports clicks.
// Deciding which cards may be flipped belongs to whoever builds the props,
// which is why Click only looks at Disabled.
package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/fatih/color"

	"github.com/arcanaland/pairs/internal/card"
	"github.com/arcanaland/pairs/internal/deck"
)

// State is the visual state of a card
type State int

const (
	FaceDown State = iota
	FaceUp
	Matched
)

func (s State) String() string {
	switch s {
	case FaceUp:
		return "face-up"
	case Matched:
		return "matched"
	default:
		return "face-down"
	}
}

// Surface classes for the inner card element
const (
	SurfaceFaceDown = "bg-muted"
	SurfaceFaceUp   = "bg-card"
	SurfaceMatched  = "bg-secondary"
)

// CardView holds the props for rendering a single card
type CardView struct {
	Card       card.Card
	IsFlipped  bool
	IsMatched  bool
	OnActivate func()
	Disabled   bool
}

// State derives the visual state from the props. Matched wins over flipped.
func (v CardView) State() State {
	switch {
	case v.IsMatched:
		return Matched
	case v.IsFlipped:
		return FaceUp
	default:
		return FaceDown
	}
}

// Revealed reports whether the icon is visible
func (v CardView) Revealed() bool {
	return v.State() != FaceDown
}

// Surface returns the class of the inner card element
func (v CardView) Surface() string {
	switch v.State() {
	case Matched:
		return SurfaceMatched
	case FaceUp:
		return SurfaceFaceUp
	default:
		return SurfaceFaceDown
	}
}

// Click delivers a user click. OnActivate runs once unless the view is
// disabled; flipped and matched cards still report clicks. It returns
// whether the callback ran.
func (v CardView) Click() bool {
	if v.Disabled || v.OnActivate == nil {
		return false
	}
	v.OnActivate()
	return true
}

// Color returns the pair colour as a hex string
func (v CardView) Color() string {
	return card.PairColor(v.Card.MatchID, deck.Pairs).Hex()
}

var cardTemplate = template.Must(template.New("card").Parse(
	`<button type="button" class="memory-card" data-card-id="{{.Card.ID}}" data-state="{{.State}}"{{if .Disabled}} disabled{{end}}>` +
		`<div class="card-face {{.Surface}}">` +
		`{{if .Revealed}}<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="48" height="48" role="img" aria-label="{{.Card.Icon.Name}}"><path fill="{{.Color}}" d="{{.Card.Icon.Path}}"/></svg>{{end}}` +
		`</div></button>`))

// RenderHTML writes the card as an HTML fragment: a button holding a face
// element whose class marks the state, with an inline SVG icon once revealed.
func (v CardView) RenderHTML(w io.Writer) error {
	if err := cardTemplate.Execute(w, v); err != nil {
		return fmt.Errorf("error rendering card %s: %w", v.Card.ID, err)
	}
	return nil
}

// Terminal card faces
const (
	cardBack   = "░"
	cellFormat = "[ %s ]"
)

// pairColor returns a 24-bit foreground (SGR 38;2;r;g;b) in the card's pair colour
func pairColor(c card.Card) *color.Color {
	r, g, b := card.PairColor(c.MatchID, deck.Pairs).RGB255()
	return color.New(color.Attribute(38), color.Attribute(2),
		color.Attribute(r), color.Attribute(g), color.Attribute(b))
}

// RenderANSI returns the card as a fixed-width terminal cell
func (v CardView) RenderANSI() string {
	switch v.State() {
	case Matched:
		return color.New(color.Faint).Sprintf(cellFormat, v.Card.Icon.Glyph)
	case FaceUp:
		glyph := pairColor(v.Card).Add(color.Bold).Sprint(v.Card.Icon.Glyph)
		return fmt.Sprintf(cellFormat, glyph)
	default:
		return color.New(color.FgHiBlack).Sprintf(cellFormat, cardBack)
	}
}
