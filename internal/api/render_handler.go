package api

import (
	"errors"
	"net/http"

	"github.com/remaimber-it/clozeit/internal/cloze"
)

// ── Request / Response types ────────────────────────────────────────────────

type RenderRequest struct {
	Text   string `json:"text"`
	Reveal bool   `json:"reveal"`
}

func (r *RenderRequest) Validate() error {
	if len(r.Text) > maxBodyBytes {
		return errors.New("text is too long")
	}
	return nil
}

type RenderResponse struct {
	Clozes        []cloze.Item `json:"clozes"`
	ProcessedText string       `json:"processed_text"`
	Display       string       `json:"display"`
	HTML          string       `json:"html"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// renderText renders arbitrary cloze markup without storing it (editor live preview).
// @Summary      Render cloze markup
// @Description  Parse cloze markup and return the placeholder text, the plain display string and the Markdown HTML.
// @Tags         Render
// @Accept       json
// @Produce      json
// @Param        body  body      RenderRequest  true  "Text to render"
// @Success      200   {object}  RenderResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /render [post]
func (h *Handler) renderText(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.renderer.Card(req.Text, req.Reveal)
	if err != nil {
		h.logger.Error("render failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to render text")
		return
	}

	respondJSON(w, http.StatusOK, RenderResponse{
		Clozes:        out.Clozes,
		ProcessedText: out.ProcessedText,
		Display:       out.Display,
		HTML:          out.HTML,
	})
}
