package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/pairs/internal/card"
)

const (
	// Pairs is the number of distinct pairs in a deck
	Pairs = 8
	// Size is the number of cards in a deck
	Size = Pairs * 2
)

// ErrInvalidDeck is returned when a card sequence breaks the pairing rules.
var ErrInvalidDeck = errors.New("invalid deck")

// CreateDeck builds the 16 cards of a new game in pair order. The first
// Pairs icons of the icon set are used and pair i gets match ID i.
func CreateDeck() []card.Card {
	cards := make([]card.Card, 0, Size)
	for i, icon := range card.Icons[:Pairs] {
		cards = append(cards,
			card.Card{ID: card.NewID(i, card.VariantA), Icon: icon, MatchID: i},
			card.Card{ID: card.NewID(i, card.VariantB), Icon: icon, MatchID: i},
		)
	}
	return cards
}

// ShuffleDeck returns the cards of deck in a uniformly random order.
// The input slice is left untouched.
func ShuffleDeck(deck []card.Card) []card.Card {
	return shuffle(deck, rand.IntN)
}

// ShuffleDeckWith is ShuffleDeck drawing from r, for reproducible layouts.
func ShuffleDeckWith(deck []card.Card, r *rand.Rand) []card.Card {
	return shuffle(deck, r.IntN)
}

// shuffle runs Fisher-Yates over a copy of deck, from the last index down,
// picking each swap partner uniformly from [0, i].
func shuffle(deck []card.Card, intN func(int) int) []card.Card {
	shuffled := make([]card.Card, len(deck))
	copy(shuffled, deck)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// Check verifies the pairing rules: Size cards, unique IDs, match IDs in
// [0, Pairs), and every match ID carried by exactly two cards showing the
// same icon.
func Check(cards []card.Card) error {
	if len(cards) != Size {
		return fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidDeck, Size, len(cards))
	}

	ids := make(map[string]bool, len(cards))
	pairs := make(map[int][]card.Card)
	for _, c := range cards {
		if ids[c.ID] {
			return fmt.Errorf("%w: duplicate card ID %s", ErrInvalidDeck, c.ID)
		}
		ids[c.ID] = true
		if c.MatchID < 0 || c.MatchID >= Pairs {
			return fmt.Errorf("%w: card %s has match ID %d outside 0..%d", ErrInvalidDeck, c.ID, c.MatchID, Pairs-1)
		}
		pairs[c.MatchID] = append(pairs[c.MatchID], c)
	}

	for matchID, group := range pairs {
		if len(group) != 2 {
			return fmt.Errorf("%w: match ID %d appears %d times", ErrInvalidDeck, matchID, len(group))
		}
		if group[0].Icon != group[1].Icon {
			return fmt.Errorf("%w: pair %d has different icons", ErrInvalidDeck, matchID)
		}
	}

	return nil
}
