package review

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
)

var (
	ErrAnswerCount = errors.New("answer count does not match cloze count")
	ErrBlankAnswer = errors.New("answer cannot be blank")
)

// BlankResult is the outcome for one cloze of a card.
type BlankResult struct {
	Placeholder string `json:"placeholder"`
	Expected    string `json:"expected"`
	Given       string `json:"given"`
	Correct     bool   `json:"correct"`
}

// Result is the outcome of answering one card.
type Result struct {
	CardID string        `json:"card_id"`
	Score  int           `json:"score"` // 0-100, share of correct blanks
	Blanks []BlankResult `json:"blanks"`
}

// ValidateAnswers checks that answers can be submitted for card: exactly one
// answer per cloze item, none of them blank.
func ValidateAnswers(card deck.Card, answers []string) error {
	items := card.Clozes()
	if len(answers) != len(items) {
		return fmt.Errorf("%w: expected %d, got %d", ErrAnswerCount, len(items), len(answers))
	}
	for i, a := range answers {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: %s", ErrBlankAnswer, items[i].Placeholder)
		}
	}
	return nil
}

// Grade compares answers against the card's clozes position by position.
// Missing answers count as wrong; extra answers are ignored.
func Grade(card deck.Card, answers []string) Result {
	items := card.Clozes()
	result := Result{
		CardID: card.ID,
		Blanks: make([]BlankResult, len(items)),
	}

	correct := 0
	for i, item := range items {
		var given string
		if i < len(answers) {
			given = answers[i]
		}
		ok := Matches(item.Answer, given)
		if ok {
			correct++
		}
		result.Blanks[i] = BlankResult{
			Placeholder: item.Placeholder,
			Expected:    item.Answer,
			Given:       given,
			Correct:     ok,
		}
	}

	if len(items) > 0 {
		result.Score = correct * 100 / len(items)
	}
	return result
}

// Matches reports whether given equals expected ignoring case, Unicode
// normalization form and surrounding or repeated whitespace.
func Matches(expected, given string) bool {
	g := normalize(given)
	return g != "" && g == normalize(expected)
}

func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(norm.NFC.String(s))
}
