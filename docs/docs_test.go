package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid json: %v", err)
	}
	if parsed.Info.Title != "Clozeit API" {
		t.Errorf("expected title %q, got %q", "Clozeit API", parsed.Info.Title)
	}

	routes := []string{
		"GET /health",
		"POST /render",
		"POST /decks",
		"GET /decks",
		"GET /decks/{deckID}",
		"PUT /decks/{deckID}",
		"DELETE /decks/{deckID}",
		"GET /decks/{deckID}/stats",
		"POST /decks/{deckID}/cards",
		"GET /cards/{cardID}",
		"DELETE /cards/{cardID}",
		"POST /sessions",
		"GET /sessions/{sessionID}",
		"POST /sessions/{sessionID}/answers",
		"GET /sessions/{sessionID}/summary",
		"GET /export",
		"POST /import",
	}
	for _, route := range routes {
		method, path, _ := strings.Cut(route, " ")
		if _, ok := parsed.Paths[path][strings.ToLower(method)]; !ok {
			t.Errorf("expected %s in doc", route)
		}
	}

	for _, def := range []string{"api.CardResponse", "api.SubmitAnswersResponse", "cloze.Item", "review.Result"} {
		if _, ok := parsed.Definitions[def]; !ok {
			t.Errorf("expected definition %s", def)
		}
	}
}
