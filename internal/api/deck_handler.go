package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
)

// ── Request / Response types ────────────────────────────────────────────────

type DeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *DeckRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type DeckResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CardCount   int    `json:"card_count"`
	Mastery     int    `json:"mastery"`
}

type DeckCardResponse struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Preview       string `json:"preview"`
	ClozeCount    int    `json:"cloze_count"`
	Mastery       int    `json:"mastery"`
	TimesReviewed int    `json:"times_reviewed"`
	TimesCorrect  int    `json:"times_correct"`
}

type GetDeckResponse struct {
	DeckResponse
	Cards []DeckCardResponse `json:"cards"`
}

type DeckStatsResponse struct {
	DeckID     string `json:"deck_id"`
	TotalCards int    `json:"total_cards"`
	Reviewed   int    `json:"reviewed"`
	Mastery    int    `json:"mastery"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createDeck creates an empty deck.
// @Summary      Create a deck
// @Description  Create a new, empty deck.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        body  body      DeckRequest  true  "Deck to create"
// @Success      201   {object}  DeckResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /decks [post]
func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	var req DeckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := deck.NewWithDescription(req.Name, req.Description)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveDeck(r.Context(), d); err != nil {
		h.logger.Error("failed to save deck", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}

	respondJSON(w, http.StatusCreated, DeckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	})
}

// listDecks lists every deck with its card count and mastery.
// @Summary      List decks
// @Description  Returns all decks with card counts and average mastery.
// @Tags         Decks
// @Produce      json
// @Success      200  {array}   DeckResponse
// @Failure      500  {object}  map[string]string
// @Router       /decks [get]
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	decks, err := h.store.ListDecks(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load decks")
		return
	}

	response := make([]DeckResponse, len(decks))
	for i, d := range decks {
		stats, _ := h.store.GetCardStatsByDeck(ctx, d.ID)
		summary := deck.Summarize(d.ID, stats)
		response[i] = DeckResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			CardCount:   summary.TotalCards,
			Mastery:     summary.Mastery,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// getDeck returns a deck with masked card previews and per-card stats.
// @Summary      Get a deck
// @Description  Returns a deck with all its cards, their masked preview and review stats.
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  GetDeckResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID} [get]
func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	d, err := h.store.GetDeck(ctx, deckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	statsMap := make(map[string]deck.CardStats)
	stats, err := h.store.GetCardStatsByDeck(ctx, deckID)
	if err == nil {
		for _, cs := range stats {
			statsMap[cs.CardID] = cs
		}
	}

	cards := make([]DeckCardResponse, len(d.Cards))
	for i, c := range d.Cards {
		cs := statsMap[c.ID]
		cards[i] = DeckCardResponse{
			ID:            c.ID,
			Text:          c.Text,
			Preview:       c.Front(),
			ClozeCount:    len(c.Clozes()),
			Mastery:       cs.Mastery,
			TimesReviewed: cs.TimesReviewed,
			TimesCorrect:  cs.TimesCorrect,
		}
	}

	respondJSON(w, http.StatusOK, GetDeckResponse{
		DeckResponse: DeckResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			CardCount:   len(d.Cards),
			Mastery:     deck.Summarize(deckID, stats).Mastery,
		},
		Cards: cards,
	})
}

// updateDeck renames a deck.
// @Summary      Update a deck
// @Description  Change the name and description of a deck.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        deckID  path      string       true  "Deck ID"
// @Param        body    body      DeckRequest  true  "New name and description"
// @Success      200     {object}  DeckResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID} [put]
func (h *Handler) updateDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	var req DeckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d := &deck.Deck{
		ID:          deckID,
		Name:        req.Name,
		Description: req.Description,
	}
	if h.handleStoreError(w, h.store.UpdateDeck(ctx, d), "deck") {
		return
	}

	mastery, _ := h.store.GetDeckMastery(ctx, deckID)

	respondJSON(w, http.StatusOK, DeckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Mastery:     mastery,
	})
}

// deleteDeck deletes a deck.
// @Summary      Delete a deck
// @Description  Delete a deck and cascade-delete its cards, sessions and results.
// @Tags         Decks
// @Param        deckID  path      string  true  "Deck ID"
// @Success      204
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID} [delete]
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteDeck(r.Context(), r.PathValue("deckID")), "deck") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getDeckStats reports review totals for a deck.
// @Summary      Get deck stats
// @Description  Returns card count, reviewed card count and average mastery for a deck.
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  DeckStatsResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID}/stats [get]
func (h *Handler) getDeckStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	if _, err := h.store.GetDeck(ctx, deckID); h.handleStoreError(w, err, "deck") {
		return
	}

	stats, err := h.store.GetCardStatsByDeck(ctx, deckID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	summary := deck.Summarize(deckID, stats)
	respondJSON(w, http.StatusOK, DeckStatsResponse{
		DeckID:     summary.DeckID,
		TotalCards: summary.TotalCards,
		Reviewed:   summary.Reviewed,
		Mastery:    summary.Mastery,
	})
}
