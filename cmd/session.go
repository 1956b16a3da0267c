package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pairs/internal/card"
	"github.com/arcanaland/pairs/internal/deck"
	"github.com/arcanaland/pairs/internal/game"
)

// addDealFlags registers the flags that choose how cards are dealt
func addDealFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("seed", "s", 0, "Shuffle with a fixed seed (0 deals a random layout)")
	cmd.Flags().StringP("deck", "d", "", "Play a saved layout from your deck library or a path to a deck file")
}

// dealCards returns the cards selected by the deal flags
func dealCards(cmd *cobra.Command) ([]card.Card, error) {
	deckFlag, _ := cmd.Flags().GetString("deck")
	if deckFlag != "" {
		deckPath, err := cfg.GetDeckPath(deckFlag)
		if err != nil {
			return nil, err
		}

		layout, err := deck.Load(deckPath)
		if err != nil {
			return nil, fmt.Errorf("error loading deck: %w", err)
		}
		slog.Debug("loaded layout", "path", deckPath, "layout_id", layout.ID)
		return layout.Cards, nil
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	if seed != 0 {
		return deck.ShuffleDeckWith(deck.CreateDeck(), rand.New(rand.NewPCG(seed, seed))), nil
	}
	return deck.ShuffleDeck(deck.CreateDeck()), nil
}

// newSession starts a game on the cards selected by the deal flags
func newSession(cmd *cobra.Command) (*game.Session, error) {
	cards, err := dealCards(cmd)
	if err != nil {
		return nil, err
	}
	return game.NewSession(cards, game.WithLogger(slog.Default())), nil
}
