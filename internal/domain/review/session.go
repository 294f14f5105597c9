package review

import (
	"math/rand"
	"time"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/id"
)

// Session is one pass over (part of) a deck.
type Session struct {
	ID          string
	DeckID      string
	Cards       []deck.Card
	MaxDuration *time.Duration
	FocusOnWeak bool
}

// New creates a session over every card in the deck, shuffled.
func New(d *deck.Deck) *Session {
	return NewWithConfig(d, DefaultConfig(), nil)
}

// NewWithConfig creates a session with the given configuration.
// With FocusOnWeak and a non-empty ordered slice (weakest first, as the
// store returns it) that order is kept; otherwise cards are shuffled.
// MaxCards then trims the list.
func NewWithConfig(d *deck.Deck, config Config, ordered []deck.Card) *Session {
	var cards []deck.Card
	if config.FocusOnWeak && len(ordered) > 0 {
		cards = make([]deck.Card, len(ordered))
		copy(cards, ordered)
	} else {
		cards = shuffleCards(d.Cards)
	}

	return newSession(d.ID, limit(cards, config.MaxCards), config)
}

// NewWithSpecificCards creates a session over the given cards in the given
// order. MaxCards still applies.
func NewWithSpecificCards(d *deck.Deck, cards []deck.Card, config Config) *Session {
	picked := make([]deck.Card, len(cards))
	copy(picked, cards)
	return newSession(d.ID, limit(picked, config.MaxCards), config)
}

// Card returns the session card with the given ID.
func (s *Session) Card(cardID string) (deck.Card, bool) {
	for _, c := range s.Cards {
		if c.ID == cardID {
			return c, true
		}
	}
	return deck.Card{}, false
}

func newSession(deckID string, cards []deck.Card, config Config) *Session {
	return &Session{
		ID:          id.GenerateID(),
		DeckID:      deckID,
		Cards:       cards,
		MaxDuration: config.MaxDuration,
		FocusOnWeak: config.FocusOnWeak,
	}
}

func limit(cards []deck.Card, maxCards *int) []deck.Card {
	if maxCards != nil && *maxCards > 0 && *maxCards < len(cards) {
		return cards[:*maxCards]
	}
	return cards
}

// shuffleCards returns a new slice with cards in random order.
func shuffleCards(cards []deck.Card) []deck.Card {
	shuffled := make([]deck.Card, len(cards))
	copy(shuffled, cards)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
