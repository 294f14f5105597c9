// internal/service/review.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/domain/review"
	"github.com/remaimber-it/clozeit/internal/store"
)

var (
	ErrEmptyDeck        = errors.New("deck has no cards")
	ErrNoValidCards     = errors.New("no valid cards found")
	ErrCardNotInSession = errors.New("card not found in session")
)

// Card statuses reported in a session summary.
const (
	StatusCorrect     = "correct"
	StatusPartial     = "partial"
	StatusWrong       = "wrong"
	StatusNotAnswered = "not_answered"
)

// StartRequest describes a new review session.
type StartRequest struct {
	DeckID  string
	Config  review.Config
	CardIDs []string // optional explicit selection, in this order
}

// CardSummary is one card's line in a session summary.
type CardSummary struct {
	CardID  string
	Front   string
	Back    string
	Status  string
	Answers []string
	Result  *review.Result // nil when not answered
}

// Summary is the outcome of a whole session.
type Summary struct {
	SessionID  string
	TotalScore int
	MaxScore   int
	Cards      []CardSummary
}

// ReviewService runs review sessions: it picks cards, checks submitted
// answers against the cloze markup and records results.
type ReviewService struct {
	store  store.Store
	logger *slog.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(s store.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  s,
		logger: logger,
	}
}

// StartSession builds and persists a session for the requested deck.
func (rs *ReviewService) StartSession(ctx context.Context, req StartRequest) (*review.Session, error) {
	d, err := rs.store.GetDeck(ctx, req.DeckID)
	if err != nil {
		return nil, err
	}
	if len(d.Cards) == 0 {
		return nil, ErrEmptyDeck
	}

	var session *review.Session
	switch {
	case len(req.CardIDs) > 0:
		var picked []deck.Card
		for _, cardID := range req.CardIDs {
			if c, ok := d.Card(cardID); ok {
				picked = append(picked, c)
			}
		}
		if len(picked) == 0 {
			return nil, ErrNoValidCards
		}
		session = review.NewWithSpecificCards(d, picked, req.Config)

	case req.Config.FocusOnWeak:
		ordered, err := rs.store.GetCardsOrderedByMastery(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("order cards by mastery: %w", err)
		}
		session = review.NewWithConfig(d, req.Config, ordered)

	default:
		session = review.NewWithConfig(d, req.Config, nil)
	}

	if err := rs.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	rs.logger.Info("session started",
		"session_id", session.ID,
		"deck_id", d.ID,
		"cards", len(session.Cards),
	)
	return session, nil
}

// SubmitAnswers grades answers for one card of a session and stores the
// result. Answers are positional: answers[i] fills [CLOZE_i].
func (rs *ReviewService) SubmitAnswers(ctx context.Context, sessionID, cardID string, answers []string) (review.Result, error) {
	session, err := rs.store.GetSession(ctx, sessionID)
	if err != nil {
		return review.Result{}, err
	}

	card, ok := session.Card(cardID)
	if !ok {
		return review.Result{}, ErrCardNotInSession
	}

	if err := review.ValidateAnswers(card, answers); err != nil {
		return review.Result{}, err
	}

	result := review.Grade(card, answers)

	if err := rs.store.SaveResult(ctx, store.StoredResult{
		Result:    result,
		SessionID: sessionID,
		Answers:   answers,
	}); err != nil {
		rs.logger.Error("failed to save result",
			"session_id", sessionID,
			"card_id", cardID,
			"error", err,
		)
		return review.Result{}, fmt.Errorf("save result: %w", err)
	}

	rs.logger.Debug("answers graded",
		"session_id", sessionID,
		"card_id", cardID,
		"score", result.Score,
	)
	return result, nil
}

// Summary reports the latest result of every card in the session.
func (rs *ReviewService) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	session, err := rs.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stored, err := rs.store.GetResults(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	latest := make(map[string]store.StoredResult, len(stored))
	for _, r := range stored {
		latest[r.CardID] = r
	}

	summary := &Summary{
		SessionID: sessionID,
		MaxScore:  len(session.Cards) * 100,
		Cards:     make([]CardSummary, len(session.Cards)),
	}

	for i, c := range session.Cards {
		cs := CardSummary{
			CardID: c.ID,
			Front:  c.Front(),
			Back:   c.Back(),
			Status: StatusNotAnswered,
		}
		if r, ok := latest[c.ID]; ok {
			result := r.Result
			cs.Result = &result
			cs.Answers = r.Answers
			cs.Status = status(result.Score)
			summary.TotalScore += result.Score
		}
		summary.Cards[i] = cs
	}

	return summary, nil
}

func status(score int) string {
	switch {
	case score >= 100:
		return StatusCorrect
	case score > 0:
		return StatusPartial
	default:
		return StatusWrong
	}
}
