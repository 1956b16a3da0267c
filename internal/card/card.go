package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Card represents one physical card in a memory deck
type Card struct {
	ID      string // Unique within a deck (e.g., 0-a, 0-b)
	Icon    Icon   // Face shown when the card is revealed
	MatchID int    // Shared by exactly the two cards of a pair
}

// Variants distinguishing the two copies of a pair
const (
	VariantA = "a"
	VariantB = "b"
)

// NewID builds a card ID from a match ID and a variant
func NewID(matchID int, variant string) string {
	return fmt.Sprintf("%d-%s", matchID, variant)
}

// ParseID splits a card ID into its match ID and variant
func ParseID(id string) (int, string, error) {
	matchPart, variant, ok := strings.Cut(id, "-")
	if !ok || variant == "" {
		return 0, "", fmt.Errorf("invalid card ID format: %s", id)
	}

	matchID, err := strconv.Atoi(matchPart)
	if err != nil || matchID < 0 {
		return 0, "", fmt.Errorf("invalid match ID in card ID: %s", id)
	}

	return matchID, variant, nil
}

// Matches reports whether two distinct cards form a pair
func (c Card) Matches(other Card) bool {
	return c.ID != other.ID && c.MatchID == other.MatchID
}

func (c Card) String() string {
	return fmt.Sprintf("%s (%s)", c.ID, c.Icon.Name)
}
