// Package game holds the state of one memory game: which cards are face-up,
// which pairs are matched, how many moves were made and how long it took.
// The session is the only authority on which cards may be flipped.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/pairs/internal/card"
	"github.com/arcanaland/pairs/internal/clock"
	"github.com/arcanaland/pairs/internal/deck"
	"github.com/arcanaland/pairs/internal/view"
)

var (
	// ErrOutOfRange is returned when a card index is outside the deck.
	ErrOutOfRange = errors.New("card index out of range")

	// ErrCardMatched is returned when flipping a card whose pair is already found.
	ErrCardMatched = errors.New("card already matched")

	// ErrCardFaceUp is returned when flipping a card that is already face-up.
	ErrCardFaceUp = errors.New("card already face-up")

	// ErrTurnPending is returned when a mismatched pair has not been resolved.
	ErrTurnPending = errors.New("mismatched pair still face-up")

	// ErrGameOver is returned when flipping after every pair is matched.
	ErrGameOver = errors.New("game is over")
)

// Outcome describes what a flip did
type Outcome int

const (
	OutcomeFirst    Outcome = iota // first card of a turn
	OutcomeMatch                   // second card matched the first
	OutcomeMismatch                // second card did not match
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "first"
	}
}

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	ID string

	cards   []card.Card
	flipped []int
	matched map[int]bool
	moves   int

	stopwatch *clock.Stopwatch
	logger    *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the time source for the session stopwatch
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.stopwatch = clock.NewStopwatch(now)
	}
}

// WithLogger sets the logger for flip events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession starts a game on an already ordered deck
func NewSession(cards []card.Card, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		cards:     cards,
		matched:   make(map[int]bool),
		stopwatch: clock.NewStopwatch(nil),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("session started", "session_id", s.ID, "cards", len(cards))
	return s
}

// NewGame deals a freshly shuffled deck
func NewGame(opts ...Option) *Session {
	return NewSession(deck.ShuffleDeck(deck.CreateDeck()), opts...)
}

// Cards returns a copy of the deck in play order
func (s *Session) Cards() []card.Card {
	return slices.Clone(s.cards)
}

// Flip turns card i face-up. The second flip of a turn counts as a move and
// either retires both cards or leaves them face-up until Resolve.
func (s *Session) Flip(i int) (Outcome, error) {
	switch {
	case i < 0 || i >= len(s.cards):
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	case s.Won():
		return 0, ErrGameOver
	case s.matched[i]:
		return 0, fmt.Errorf("%w: %s", ErrCardMatched, s.cards[i].ID)
	case s.IsFlipped(i):
		return 0, fmt.Errorf("%w: %s", ErrCardFaceUp, s.cards[i].ID)
	case len(s.flipped) == 2:
		return 0, ErrTurnPending
	}

	s.stopwatch.Start()
	s.flipped = append(s.flipped, i)

	if len(s.flipped) == 1 {
		s.logger.Debug("card flipped", "session_id", s.ID, "card", s.cards[i].ID)
		return OutcomeFirst, nil
	}

	s.moves++
	first, second := s.cards[s.flipped[0]], s.cards[s.flipped[1]]
	if !first.Matches(second) {
		s.logger.Debug("mismatch", "session_id", s.ID, "first", first.ID, "second", second.ID)
		return OutcomeMismatch, nil
	}

	s.matched[s.flipped[0]] = true
	s.matched[s.flipped[1]] = true
	s.flipped = s.flipped[:0]
	s.logger.Debug("match", "session_id", s.ID, "match_id", first.MatchID, "moves", s.moves)

	if s.Won() {
		s.stopwatch.Stop()
		s.logger.Info("game won", "session_id", s.ID, "moves", s.moves, "time", s.ElapsedText())
	}

	return OutcomeMatch, nil
}

// Resolve turns a pending mismatched pair face-down again. It reports
// whether there was anything to resolve.
func (s *Session) Resolve() bool {
	if len(s.flipped) < 2 {
		return false
	}
	s.flipped = s.flipped[:0]
	return true
}

// Pending reports whether a mismatched pair is waiting for Resolve
func (s *Session) Pending() bool {
	return len(s.flipped) == 2
}

// IsFlipped reports whether card i is face-up in the current turn
func (s *Session) IsFlipped(i int) bool {
	for _, f := range s.flipped {
		if f == i {
			return true
		}
	}
	return false
}

// IsMatched reports whether card i has been retired
func (s *Session) IsMatched(i int) bool {
	return s.matched[i]
}

// Disabled reports whether card i may not be flipped right now
func (s *Session) Disabled(i int) bool {
	return s.Won() || s.Pending() || s.matched[i] || s.IsFlipped(i)
}

// Moves returns the number of completed turns
func (s *Session) Moves() int {
	return s.moves
}

// Matches returns the number of pairs found
func (s *Session) Matches() int {
	return len(s.matched) / 2
}

// Won reports whether every pair has been found
func (s *Session) Won() bool {
	return len(s.cards) > 0 && len(s.matched) == len(s.cards)
}

func (s *Session) Elapsed() time.Duration {
	return s.stopwatch.Elapsed()
}

// ElapsedText returns the elapsed time as minutes:seconds
func (s *Session) ElapsedText() string {
	return s.stopwatch.String()
}

// Views builds the card view props for every card. onActivate receives the
// index of the clicked card and may be nil.
func (s *Session) Views(onActivate func(i int)) []view.CardView {
	views := make([]view.CardView, len(s.cards))
	for i, c := range s.cards {
		v := view.CardView{
			Card:      c,
			IsFlipped: s.IsFlipped(i) || s.matched[i],
			IsMatched: s.matched[i],
			Disabled:  s.Disabled(i),
		}
		if onActivate != nil {
			v.OnActivate = func() { onActivate(i) }
		}
		views[i] = v
	}
	return views
}

// Board builds a board view of the session
func (s *Session) Board(title string, onActivate func(i int)) view.Board {
	return view.Board{
		Title:   title,
		Columns: 4,
		Moves:   s.moves,
		Matches: s.Matches(),
		Elapsed: s.ElapsedText(),
		Cards:   s.Views(onActivate),
	}
}
