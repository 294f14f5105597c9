package review_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/domain/review"
)

func createDeckWithCards(t *testing.T, n int) *deck.Deck {
	t.Helper()
	d, err := deck.New("Test Deck")
	if err != nil {
		t.Fatalf("failed to create deck: %v", err)
	}
	for i := 0; i < n; i++ {
		text := fmt.Sprintf("Card %d answer is {{c1::answer%d}}", i, i)
		if _, err := d.AddCard(text, ""); err != nil {
			t.Fatalf("failed to add card: %v", err)
		}
	}
	return d
}

func TestNew_RandomizesCards(t *testing.T) {
	d := createDeckWithCards(t, 20)

	// With 20 cards an identical order across 10 sessions is vanishingly unlikely.
	foundDifferentOrder := false
	first := review.New(d)

	for i := 0; i < 10; i++ {
		s := review.New(d)
		if !sameOrder(first.Cards, s.Cards) {
			foundDifferentOrder = true
			break
		}
	}

	if !foundDifferentOrder {
		t.Error("expected cards to be randomized across sessions")
	}
}

func TestNew_IncludesAllCards(t *testing.T) {
	d := createDeckWithCards(t, 10)
	s := review.New(d)

	if len(s.Cards) != 10 {
		t.Errorf("expected 10 cards, got %d", len(s.Cards))
	}
	if s.DeckID != d.ID {
		t.Errorf("expected deck ID %q, got %q", d.ID, s.DeckID)
	}
}

func TestNewWithConfig_MaxCards(t *testing.T) {
	d := createDeckWithCards(t, 100)

	maxCards := 20
	s := review.NewWithConfig(d, review.Config{MaxCards: &maxCards}, nil)

	if len(s.Cards) != 20 {
		t.Errorf("expected 20 cards, got %d", len(s.Cards))
	}
}

func TestNewWithConfig_MaxCardsGreaterThanAvailable(t *testing.T) {
	d := createDeckWithCards(t, 5)

	maxCards := 20
	s := review.NewWithConfig(d, review.Config{MaxCards: &maxCards}, nil)

	if len(s.Cards) != 5 {
		t.Errorf("expected 5 cards (all available), got %d", len(s.Cards))
	}
}

func TestNewWithConfig_MaxDuration(t *testing.T) {
	d := createDeckWithCards(t, 10)

	duration := 10 * time.Minute
	s := review.NewWithConfig(d, review.Config{MaxDuration: &duration}, nil)

	if s.MaxDuration == nil {
		t.Fatal("expected MaxDuration to be set")
	}
	if *s.MaxDuration != 10*time.Minute {
		t.Errorf("expected 10 minutes, got %v", *s.MaxDuration)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := review.DefaultConfig()

	if config.MaxCards != nil {
		t.Error("expected MaxCards to be nil by default")
	}
	if config.MaxDuration != nil {
		t.Error("expected MaxDuration to be nil by default")
	}
	if config.FocusOnWeak {
		t.Error("expected FocusOnWeak to be false by default")
	}
}

func TestNewWithConfig_FocusOnWeakKeepsOrder(t *testing.T) {
	d := createDeckWithCards(t, 20)

	maxCards := 5
	config := review.Config{MaxCards: &maxCards, FocusOnWeak: true}

	ordered := make([]deck.Card, len(d.Cards))
	copy(ordered, d.Cards)

	s := review.NewWithConfig(d, config, ordered)

	if !s.FocusOnWeak {
		t.Error("expected FocusOnWeak to be true")
	}
	if !sameOrder(ordered[:5], s.Cards) {
		t.Error("expected the first 5 cards of the ordered list")
	}
}

func TestNewWithSpecificCards(t *testing.T) {
	d := createDeckWithCards(t, 10)
	picked := []deck.Card{d.Cards[7], d.Cards[2]}

	s := review.NewWithSpecificCards(d, picked, review.DefaultConfig())

	if !sameOrder(picked, s.Cards) {
		t.Error("expected picked cards in the given order")
	}
	if _, ok := s.Card(d.Cards[7].ID); !ok {
		t.Error("expected picked card to be found in session")
	}
	if _, ok := s.Card(d.Cards[0].ID); ok {
		t.Error("expected unpicked card to be absent from session")
	}
}

func sameOrder(a, b []deck.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
