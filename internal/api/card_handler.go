package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/render"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddCardRequest struct {
	Text  string `json:"text"`
	Extra string `json:"extra"`
}

func (r *AddCardRequest) Validate() error {
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

type ClozeView struct {
	ID          int    `json:"id"`
	Placeholder string `json:"placeholder"`
	Hint        string `json:"hint,omitempty"`
	Answer      string `json:"answer,omitempty"` // only when revealed
}

// CardResponse is one rendered side of a card. The raw markup and extra
// notes carry the answers, so they are only included when revealed.
type CardResponse struct {
	ID        string      `json:"id"`
	DeckID    string      `json:"deck_id,omitempty"`
	Revealed  bool        `json:"revealed"`
	Display   string      `json:"display"`
	HTML      string      `json:"html"`
	Clozes    []ClozeView `json:"clozes"`
	Numbers   []int       `json:"numbers"`
	Text      string      `json:"text,omitempty"`
	Extra     string      `json:"extra,omitempty"`
	ExtraHTML string      `json:"extra_html,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// addCard adds a cloze card to a deck.
// @Summary      Add a card
// @Description  Add a card to a deck. The text must contain at least one cloze. The response is revealed.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string             true  "Deck ID"
// @Param        body    body      AddCardRequest     true  "Card to add"
// @Success      201     {object}  CardResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string  "deck not found"
// @Failure      500     {object}  map[string]string
// @Router       /decks/{deckID}/cards [post]
func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	d, err := h.store.GetDeck(ctx, deckID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	var req AddCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := d.AddCard(req.Text, req.Extra)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.AddCard(ctx, deckID, card); err != nil {
		h.logger.Error("failed to save card", "deck_id", deckID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save card")
		return
	}

	resp, err := h.cardResponse(deckID, card, true)
	if err != nil {
		h.logger.Error("render failed", "card_id", card.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to render card")
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// getCard returns one card, masked unless reveal is set.
// @Summary      Get a card
// @Description  Returns a card rendered masked, or with answers when reveal=true.
// @Tags         Cards
// @Produce      json
// @Param        cardID  path      string   true  "Card ID"
// @Param        reveal  query     boolean  false  "Show answers"
// @Success      200     {object}  CardResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /cards/{cardID} [get]
func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	reveal := false
	if v := r.URL.Query().Get("reveal"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "reveal must be a boolean")
			return
		}
		reveal = b
	}

	card, deckID, err := h.store.GetCard(r.Context(), r.PathValue("cardID"))
	if h.handleStoreError(w, err, "card") {
		return
	}

	resp, err := h.cardResponse(deckID, card, reveal)
	if err != nil {
		h.logger.Error("render failed", "card_id", card.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to render card")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// deleteCard removes a card from its deck.
// @Summary      Delete a card
// @Description  Delete a card.
// @Tags         Cards
// @Param        cardID  path      string  true  "Card ID"
// @Success      204
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /cards/{cardID} [delete]
func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteCard(r.Context(), r.PathValue("cardID")), "card") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cardResponse(deckID string, card deck.Card, reveal bool) (CardResponse, error) {
	out, err := h.renderer.Card(card.Text, reveal)
	if err != nil {
		return CardResponse{}, err
	}
	return h.renderedCard(deckID, card, out, reveal)
}

func (h *Handler) renderedCard(deckID string, card deck.Card, out render.Rendered, reveal bool) (CardResponse, error) {
	resp := CardResponse{
		ID:       card.ID,
		DeckID:   deckID,
		Revealed: reveal,
		Display:  out.Display,
		HTML:     out.HTML,
		Clozes:   make([]ClozeView, len(out.Clozes)),
		Numbers:  card.Numbers(),
	}
	for i, c := range out.Clozes {
		view := ClozeView{ID: c.ID, Placeholder: c.Placeholder, Hint: c.Hint}
		if reveal {
			view.Answer = c.Answer
		}
		resp.Clozes[i] = view
	}

	if reveal {
		extraHTML, err := h.renderer.Markdown(card.Extra)
		if err != nil {
			return CardResponse{}, err
		}
		resp.Text = card.Text
		resp.Extra = card.Extra
		resp.ExtraHTML = extraHTML
	}
	return resp, nil
}
