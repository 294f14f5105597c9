package deck

import (
	"strings"

	"github.com/remaimber-it/clozeit/internal/cloze"
	"github.com/remaimber-it/clozeit/internal/id"
)

// Card is a single cloze note. Text holds the authored markup; everything
// shown to a learner is derived from it on demand.
type Card struct {
	ID    string
	Text  string
	Extra string // free-form back-side notes, Markdown
}

func NewCard(text, extra string) (Card, error) {
	if strings.TrimSpace(text) == "" {
		return Card{}, ErrEmptyText
	}
	if len(cloze.Parse(text).Clozes) == 0 {
		return Card{}, ErrNoClozes
	}
	return Card{
		ID:    id.GenerateID(),
		Text:  text,
		Extra: extra,
	}, nil
}

func (c Card) Clozes() []cloze.Item {
	return cloze.Parse(c.Text).Clozes
}

// Front is the masked side shown while answering.
func (c Card) Front() string {
	return cloze.Preview(c.Text)
}

// Back is the revealed side.
func (c Card) Back() string {
	return cloze.Format(c.Text, true)
}

// Numbers returns the distinct cloze group numbers in first-seen order.
func (c Card) Numbers() []int {
	seen := make(map[int]struct{})
	var nums []int
	for _, item := range c.Clozes() {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		nums = append(nums, item.ID)
	}
	return nums
}
