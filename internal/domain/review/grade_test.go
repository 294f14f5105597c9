package review_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/domain/review"
)

func mustCard(t *testing.T, text string) deck.Card {
	t.Helper()
	card, err := deck.NewCard(text, "")
	if err != nil {
		t.Fatalf("failed to create card: %v", err)
	}
	return card
}

func TestValidateAnswers(t *testing.T) {
	card := mustCard(t, "The {{c1::sky::color}} is {{c2::blue}}.")

	tests := []struct {
		name    string
		answers []string
		want    error
	}{
		{"valid", []string{"sky", "blue"}, nil},
		{"too few", []string{"sky"}, review.ErrAnswerCount},
		{"too many", []string{"sky", "blue", "green"}, review.ErrAnswerCount},
		{"nil", nil, review.ErrAnswerCount},
		{"blank", []string{"sky", "   "}, review.ErrBlankAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := review.ValidateAnswers(card, tt.answers)
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	card := mustCard(t, "The {{c1::sky::color}} is {{c2::blue}}.")

	got := review.Grade(card, []string{"Sky", "  BLUE "})

	want := review.Result{
		CardID: card.ID,
		Score:  100,
		Blanks: []review.BlankResult{
			{Placeholder: "[CLOZE_0]", Expected: "sky", Given: "Sky", Correct: true},
			{Placeholder: "[CLOZE_1]", Expected: "blue", Given: "  BLUE ", Correct: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestGrade_PartialAndMissing(t *testing.T) {
	card := mustCard(t, "{{c1::a}} {{c2::b}} {{c3::c}} {{c4::d}}")

	got := review.Grade(card, []string{"a", "x"})

	if got.Score != 25 {
		t.Errorf("expected score 25, got %d", got.Score)
	}
	if got.Blanks[2].Given != "" || got.Blanks[2].Correct {
		t.Errorf("expected missing answer to be wrong, got %+v", got.Blanks[2])
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		expected, given string
		want            bool
	}{
		{"Paris", "paris", true},
		{"New York", "new   york", true},
		// precomposed vs combining diaeresis
		{"\u00fcber", "u\u0308ber", true},
		{"Paris", "Lyon", false},
		{"Paris", "", false},
	}

	for _, tt := range tests {
		if got := review.Matches(tt.expected, tt.given); got != tt.want {
			t.Errorf("Matches(%q, %q): expected %v, got %v", tt.expected, tt.given, tt.want, got)
		}
	}
}
