package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func hasColumn(t *testing.T, db *sql.DB, table, column string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column,
	).Scan(&n)
	if err != nil {
		t.Fatalf("table_info(%s): %v", table, err)
	}
	return n > 0
}

func TestSchema_DeclaresCardExtra(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if !hasColumn(t, db, "cards", "extra") {
		t.Error("expected cards.extra in a fresh schema")
	}
}

func TestNewSQLite_MigratesLegacyCards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, err = legacy.Exec(`
CREATE TABLE decks (id TEXT PRIMARY KEY, name TEXT NOT NULL, description TEXT NOT NULL DEFAULT '');
CREATE TABLE cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    text TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
);
INSERT INTO decks (id, name) VALUES ('d1', 'Old');
INSERT INTO cards (id, deck_id, text, position) VALUES ('c1', 'd1', '{{c1::kept}}', 0);`)
	if err != nil {
		t.Fatalf("create legacy schema: %v", err)
	}
	legacy.Close()

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer s.Close()

	if !hasColumn(t, s.db, "cards", "extra") {
		t.Fatal("expected cards.extra after migration")
	}

	card, deckID, err := s.GetCard(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if deckID != "d1" || card.Text != "{{c1::kept}}" || card.Extra != "" {
		t.Errorf("unexpected migrated card %+v in deck %q", card, deckID)
	}
}
