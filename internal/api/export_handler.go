package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
)

const exportVersion = "1.0"

// ── Request / Response types ────────────────────────────────────────────────

type ExportCard struct {
	Text  string `json:"text" yaml:"text"`
	Extra string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

type ExportDeck struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Cards       []ExportCard `json:"cards" yaml:"cards"`
}

type ExportData struct {
	Version    string       `json:"version" yaml:"version"`
	ExportedAt string       `json:"exported_at" yaml:"exported_at"`
	Decks      []ExportDeck `json:"decks" yaml:"decks"`
}

type ImportResult struct {
	DecksCreated int      `json:"decks_created"`
	CardsCreated int      `json:"cards_created"`
	CardsSkipped int      `json:"cards_skipped"`
	Errors       []string `json:"errors,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll exports every deck and its cards.
// @Summary      Export all decks
// @Description  Export all decks as JSON (default) or YAML.
// @Tags         Export
// @Produce      json, application/yaml
// @Param        format  query     string  false  "json or yaml"
// @Success      200     {object}  ExportData
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		respondError(w, http.StatusBadRequest, "format must be json or yaml")
		return
	}

	decks, err := h.store.ListDecks(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load decks")
		return
	}

	exportData := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Decks:      make([]ExportDeck, 0, len(decks)),
	}

	for _, d := range decks {
		full, err := h.store.GetDeck(ctx, d.ID)
		if err != nil {
			h.logger.Error("failed to load deck for export", "deck_id", d.ID, "error", err)
			continue
		}

		exportDeck := ExportDeck{
			Name:        full.Name,
			Description: full.Description,
			Cards:       make([]ExportCard, len(full.Cards)),
		}
		for i, c := range full.Cards {
			exportDeck.Cards[i] = ExportCard{Text: c.Text, Extra: c.Extra}
		}
		exportData.Decks = append(exportData.Decks, exportDeck)
	}

	if format == "yaml" {
		out, err := yaml.Marshal(exportData)
		if err != nil {
			h.logger.Error("yaml export failed", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to encode export")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("Content-Disposition", "attachment; filename=clozeit-export.yaml")
		w.Write(out)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=clozeit-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll creates decks from an export file.
// Accepts JSON, or YAML when the Content-Type says so. Each deck is created
// anew; cards without valid cloze markup are skipped and reported.
// @Summary      Import decks
// @Description  Import decks from an export file, as JSON or YAML by Content-Type.
// @Tags         Export
// @Accept       json, application/yaml
// @Produce      json
// @Param        body  body      ExportData  true  "Decks to import"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var importData ExportData
	if isYAML(r.Header.Get("Content-Type")) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read body")
			return
		}
		if err := yaml.Unmarshal(body, &importData); err != nil {
			respondError(w, http.StatusBadRequest, "invalid yaml")
			return
		}
	} else if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}

	for _, ed := range importData.Decks {
		d, err := deck.NewWithDescription(ed.Name, ed.Description)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("deck %q: %v", ed.Name, err))
			continue
		}

		for i, ec := range ed.Cards {
			if _, err := d.AddCard(ec.Text, ec.Extra); err != nil {
				result.CardsSkipped++
				result.Errors = append(result.Errors, fmt.Sprintf("deck %q card %d: %v", ed.Name, i, err))
			}
		}

		if err := h.store.SaveDeck(ctx, d); err != nil {
			h.logger.Error("failed to import deck", "name", ed.Name, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("deck %q: failed to save", ed.Name))
			continue
		}
		result.DecksCreated++
		result.CardsCreated += len(d.Cards)
	}

	h.logger.Info("import finished",
		"decks", result.DecksCreated,
		"cards", result.CardsCreated,
		"skipped", result.CardsSkipped,
	)
	respondJSON(w, http.StatusCreated, result)
}

func isYAML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}
