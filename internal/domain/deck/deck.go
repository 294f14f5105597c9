package deck

import (
	"errors"
	"strings"

	"github.com/remaimber-it/clozeit/internal/id"
)

var (
	ErrEmptyName = errors.New("deck name cannot be empty")
	ErrEmptyText = errors.New("card text cannot be empty")
	ErrNoClozes  = errors.New("card text contains no cloze markup")
)

type Deck struct {
	ID          string
	Name        string
	Description string
	Cards       []Card
}

func New(name string) (*Deck, error) {
	return NewWithDescription(name, "")
}

func NewWithDescription(name, description string) (*Deck, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Deck{
		ID:          id.GenerateID(),
		Name:        name,
		Description: description,
		Cards:       []Card{},
	}, nil
}

// AddCard appends a card built from raw cloze markup. Text without a single
// well-formed cloze is rejected since it would have nothing to review.
func (d *Deck) AddCard(text, extra string) (Card, error) {
	card, err := NewCard(text, extra)
	if err != nil {
		return Card{}, err
	}
	d.Cards = append(d.Cards, card)
	return card, nil
}

// Card returns the card with the given ID.
func (d *Deck) Card(cardID string) (Card, bool) {
	for _, c := range d.Cards {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}
