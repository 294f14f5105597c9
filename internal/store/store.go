package store

import (
	"context"
	"errors"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/domain/review"
)

var (
	ErrNotFound = errors.New("not found")
)

// StoredResult is a graded card answer as persisted for a session.
type StoredResult struct {
	review.Result
	SessionID string
	Answers   []string
}

// Store is the persistence boundary used by the service and HTTP layers.
type Store interface {
	SaveDeck(ctx context.Context, d *deck.Deck) error
	GetDeck(ctx context.Context, id string) (*deck.Deck, error)
	ListDecks(ctx context.Context) ([]*deck.Deck, error)
	UpdateDeck(ctx context.Context, d *deck.Deck) error
	DeleteDeck(ctx context.Context, id string) error

	AddCard(ctx context.Context, deckID string, card deck.Card) error
	GetCard(ctx context.Context, id string) (deck.Card, string, error)
	DeleteCard(ctx context.Context, id string) error

	SaveSession(ctx context.Context, s *review.Session) error
	GetSession(ctx context.Context, id string) (*review.Session, error)

	SaveResult(ctx context.Context, r StoredResult) error
	GetResults(ctx context.Context, sessionID string) ([]StoredResult, error)

	GetCardStatsByDeck(ctx context.Context, deckID string) ([]deck.CardStats, error)
	GetDeckMastery(ctx context.Context, deckID string) (int, error)
	GetCardsOrderedByMastery(ctx context.Context, deckID string) ([]deck.Card, error)
}
