package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Rendering
	mux.HandleFunc("POST /render", h.renderText)

	// Decks
	mux.HandleFunc("POST /decks", h.createDeck)
	mux.HandleFunc("GET /decks", h.listDecks)
	mux.HandleFunc("GET /decks/{deckID}", h.getDeck)
	mux.HandleFunc("PUT /decks/{deckID}", h.updateDeck)
	mux.HandleFunc("DELETE /decks/{deckID}", h.deleteDeck)
	mux.HandleFunc("GET /decks/{deckID}/stats", h.getDeckStats)

	// Cards
	mux.HandleFunc("POST /decks/{deckID}/cards", h.addCard)
	mux.HandleFunc("GET /cards/{cardID}", h.getCard)
	mux.HandleFunc("DELETE /cards/{cardID}", h.deleteCard)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswers)
	mux.HandleFunc("GET /sessions/{sessionID}/summary", h.getSummary)

	// Import / export
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)
}

// health reports that the server is up.
// @Summary      Health check
// @Description  Liveness probe.
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
