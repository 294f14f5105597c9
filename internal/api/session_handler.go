package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/remaimber-it/clozeit/internal/domain/review"
	"github.com/remaimber-it/clozeit/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	DeckID         string   `json:"deck_id"`
	MaxCards       *int     `json:"max_cards,omitempty"`
	MaxDurationMin *int     `json:"max_duration_min,omitempty"`
	FocusOnWeak    bool     `json:"focus_on_weak"`
	CardIDs        []string `json:"card_ids,omitempty"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.DeckID == "" {
		return errors.New("deck_id is required")
	}
	return nil
}

type SessionResponse struct {
	ID             string         `json:"id"`
	DeckID         string         `json:"deck_id"`
	Cards          []CardResponse `json:"cards"`
	MaxDurationMin *int           `json:"max_duration_min,omitempty"`
	FocusOnWeak    bool           `json:"focus_on_weak"`
}

type SubmitAnswersRequest struct {
	CardID  string   `json:"card_id"`
	Answers []string `json:"answers"`
}

func (r *SubmitAnswersRequest) Validate() error {
	if r.CardID == "" {
		return errors.New("card_id is required")
	}
	return nil
}

type SubmitAnswersResponse struct {
	review.Result
	Back string `json:"back"`
}

type CardResult struct {
	CardID  string         `json:"card_id"`
	Front   string         `json:"front"`
	Back    string         `json:"back"`
	Status  string         `json:"status"`
	Score   int            `json:"score"`
	Answers []string       `json:"answers"`
	Result  *review.Result `json:"result,omitempty"`
}

type SummaryResponse struct {
	SessionID  string       `json:"session_id"`
	TotalScore int          `json:"total_score"`
	MaxScore   int          `json:"max_score"`
	Results    []CardResult `json:"results"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a review session for a deck.
// @Summary      Start a review session
// @Description  Start a session over a deck, optionally limited, weakest-first or restricted to given cards. Cards are returned masked.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session options"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string     "deck not found"
// @Failure      500   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	config := review.DefaultConfig()
	if req.MaxCards != nil && *req.MaxCards > 0 {
		config.MaxCards = req.MaxCards
	}
	if req.MaxDurationMin != nil && *req.MaxDurationMin > 0 {
		duration := time.Duration(*req.MaxDurationMin) * time.Minute
		config.MaxDuration = &duration
	}
	config.FocusOnWeak = req.FocusOnWeak

	session, err := h.reviews.StartSession(r.Context(), service.StartRequest{
		DeckID:  req.DeckID,
		Config:  config,
		CardIDs: req.CardIDs,
	})
	switch {
	case errors.Is(err, service.ErrEmptyDeck), errors.Is(err, service.ErrNoValidCards):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case h.handleStoreError(w, err, "deck"):
		return
	}

	h.respondSession(w, http.StatusCreated, session)
}

// getSession returns a session with its cards masked.
// @Summary      Get a session
// @Description  Returns a session with every card masked.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.GetSession(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	h.respondSession(w, http.StatusOK, session)
}

// submitAnswers grades the answers for one card of a session.
// @Summary      Submit answers
// @Description  Grade one answer per cloze, in placeholder order, and return the result with the revealed card.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                true  "Session ID"
// @Param        body       body      SubmitAnswersRequest  true  "Answers for one card"
// @Success      200        {object}  SubmitAnswersResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswers(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req SubmitAnswersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.reviews.SubmitAnswers(r.Context(), sessionID, req.CardID, req.Answers)
	switch {
	case errors.Is(err, service.ErrCardNotInSession):
		respondError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, review.ErrAnswerCount), errors.Is(err, review.ErrBlankAnswer):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case h.handleStoreError(w, err, "session"):
		return
	}

	// The session snapshot is authoritative for the revealed side.
	session, err := h.store.GetSession(r.Context(), sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}
	card, _ := session.Card(req.CardID)

	respondJSON(w, http.StatusOK, SubmitAnswersResponse{
		Result: result,
		Back:   card.Back(),
	})
}

// getSummary reports the latest result of every card in a session.
// @Summary      Get session summary
// @Description  Per-card status, score and answers, with total and maximum score.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SummaryResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/summary [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reviews.Summary(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	results := make([]CardResult, len(summary.Cards))
	for i, c := range summary.Cards {
		res := CardResult{
			CardID:  c.CardID,
			Front:   c.Front,
			Back:    c.Back,
			Status:  c.Status,
			Answers: c.Answers,
			Result:  c.Result,
		}
		if res.Answers == nil {
			res.Answers = []string{}
		}
		if c.Result != nil {
			res.Score = c.Result.Score
		}
		results[i] = res
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		SessionID:  summary.SessionID,
		TotalScore: summary.TotalScore,
		MaxScore:   summary.MaxScore,
		Results:    results,
	})
}

// respondSession writes the session with every card masked.
func (h *Handler) respondSession(w http.ResponseWriter, status int, session *review.Session) {
	texts := make([]string, len(session.Cards))
	for i, c := range session.Cards {
		texts[i] = c.Text
	}
	rendered, err := h.renderer.Cards(texts, false)
	if err != nil {
		h.logger.Error("render failed", "session_id", session.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to render cards")
		return
	}

	cards := make([]CardResponse, len(session.Cards))
	for i, c := range session.Cards {
		cards[i], err = h.renderedCard(session.DeckID, c, rendered[i], false)
		if err != nil {
			h.logger.Error("render failed", "card_id", c.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "failed to render card")
			return
		}
	}

	response := SessionResponse{
		ID:          session.ID,
		DeckID:      session.DeckID,
		Cards:       cards,
		FocusOnWeak: session.FocusOnWeak,
	}
	if session.MaxDuration != nil {
		minutes := int(*session.MaxDuration / time.Minute)
		response.MaxDurationMin = &minutes
	}

	respondJSON(w, status, response)
}
