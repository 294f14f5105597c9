// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/clozeit/internal/domain/deck"
	"github.com/remaimber-it/clozeit/internal/domain/review"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    text TEXT NOT NULL,
    extra TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    max_duration_ns INTEGER,
    focus_on_weak BOOLEAN NOT NULL DEFAULT FALSE,
    FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS session_cards (
    session_id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    text TEXT NOT NULL,
    extra TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    PRIMARY KEY (session_id, card_id),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    answers TEXT NOT NULL,
    blanks TEXT NOT NULL,
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the database at dbPath and applies the schema.
// Use ":memory:" for a throwaway database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// migrate brings database files created before cards.extra existed up to date.
func migrate(db *sql.DB) error {
	return addColumnIfNotExists(db, "cards", "extra", "TEXT NOT NULL DEFAULT ''")
}

func addColumnIfNotExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Decks
// ============================================================================

func (s *SQLiteStore) SaveDeck(ctx context.Context, d *deck.Deck) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO decks (id, name, description) VALUES (?, ?, ?)",
		d.ID, d.Name, d.Description,
	); err != nil {
		return err
	}

	for i, c := range d.Cards {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO cards (id, deck_id, text, extra, position) VALUES (?, ?, ?, ?, ?)",
			c.ID, d.ID, c.Text, c.Extra, i,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetDeck(ctx context.Context, id string) (*deck.Deck, error) {
	var d deck.Deck
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM decks WHERE id = ?", id,
	).Scan(&d.ID, &d.Name, &d.Description)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	cards, err := s.listCards(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Cards = cards

	return &d, nil
}

func (s *SQLiteStore) listCards(ctx context.Context, deckID string) ([]deck.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, text, extra FROM cards WHERE deck_id = ? ORDER BY position, rowid", deckID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []deck.Card{}
	for rows.Next() {
		var c deck.Card
		if err := rows.Scan(&c.ID, &c.Text, &c.Extra); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// ListDecks returns every deck without its cards.
func (s *SQLiteStore) ListDecks(ctx context.Context) ([]*deck.Deck, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, description FROM decks ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []*deck.Deck
	for rows.Next() {
		var d deck.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, err
		}
		decks = append(decks, &d)
	}
	return decks, rows.Err()
}

func (s *SQLiteStore) UpdateDeck(ctx context.Context, d *deck.Deck) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE decks SET name = ?, description = ? WHERE id = ?",
		d.Name, d.Description, d.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (s *SQLiteStore) DeleteDeck(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM results WHERE session_id IN (SELECT id FROM sessions WHERE deck_id = ?)", id,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM session_cards WHERE session_id IN (SELECT id FROM sessions WHERE deck_id = ?)", id,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE deck_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM cards WHERE deck_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", id)
	if err != nil {
		return err
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

// ============================================================================
// Cards
// ============================================================================

func (s *SQLiteStore) AddCard(ctx context.Context, deckID string, card deck.Card) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cards (id, deck_id, text, extra, position)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM cards WHERE deck_id = ?))
	`, card.ID, deckID, card.Text, card.Extra, deckID)
	return err
}

// GetCard returns the card and the ID of the deck it belongs to.
func (s *SQLiteStore) GetCard(ctx context.Context, id string) (deck.Card, string, error) {
	var c deck.Card
	var deckID string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, deck_id, text, extra FROM cards WHERE id = ?", id,
	).Scan(&c.ID, &deckID, &c.Text, &c.Extra)
	if err == sql.ErrNoRows {
		return deck.Card{}, "", ErrNotFound
	}
	if err != nil {
		return deck.Card{}, "", err
	}
	return c, deckID, nil
}

func (s *SQLiteStore) DeleteCard(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// ============================================================================
// Sessions
// ============================================================================

// SaveSession stores the session with a snapshot of its cards, so later edits
// to the deck do not change a session in progress.
func (s *SQLiteStore) SaveSession(ctx context.Context, session *review.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var maxDuration sql.NullInt64
	if session.MaxDuration != nil {
		maxDuration = sql.NullInt64{Int64: int64(*session.MaxDuration), Valid: true}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO sessions (id, deck_id, max_duration_ns, focus_on_weak) VALUES (?, ?, ?, ?)",
		session.ID, session.DeckID, maxDuration, session.FocusOnWeak,
	); err != nil {
		return err
	}

	for i, c := range session.Cards {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO session_cards (session_id, card_id, text, extra, position) VALUES (?, ?, ?, ?, ?)",
			session.ID, c.ID, c.Text, c.Extra, i,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*review.Session, error) {
	var session review.Session
	var maxDuration sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, deck_id, max_duration_ns, focus_on_weak FROM sessions WHERE id = ?", id,
	).Scan(&session.ID, &session.DeckID, &maxDuration, &session.FocusOnWeak)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if maxDuration.Valid {
		d := time.Duration(maxDuration.Int64)
		session.MaxDuration = &d
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT card_id, text, extra FROM session_cards WHERE session_id = ? ORDER BY position", id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c deck.Card
		if err := rows.Scan(&c.ID, &c.Text, &c.Extra); err != nil {
			return nil, err
		}
		session.Cards = append(session.Cards, c)
	}

	return &session, rows.Err()
}

// ============================================================================
// Results
// ============================================================================

func (s *SQLiteStore) SaveResult(ctx context.Context, r StoredResult) error {
	answersJSON, err := json.Marshal(r.Answers)
	if err != nil {
		return err
	}
	blanksJSON, err := json.Marshal(r.Blanks)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO results (session_id, card_id, score, answers, blanks) VALUES (?, ?, ?, ?, ?)",
		r.SessionID, r.CardID, r.Score, string(answersJSON), string(blanksJSON),
	)
	return err
}

// GetResults returns every result of a session in submission order. A card
// answered twice appears twice; the later row wins for summaries.
func (s *SQLiteStore) GetResults(ctx context.Context, sessionID string) ([]StoredResult, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT card_id, score, answers, blanks FROM results WHERE session_id = ? ORDER BY id",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []StoredResult
	for rows.Next() {
		r := StoredResult{SessionID: sessionID}
		var answersJSON, blanksJSON string
		if err := rows.Scan(&r.CardID, &r.Score, &answersJSON, &blanksJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answersJSON), &r.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for card %s: %w", r.CardID, err)
		}
		if err := json.Unmarshal([]byte(blanksJSON), &r.Blanks); err != nil {
			return nil, fmt.Errorf("decode blanks for card %s: %w", r.CardID, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ============================================================================
// Stats
// ============================================================================

// GetCardStatsByDeck returns stats for every card in the deck, including
// cards that were never reviewed, in deck order.
func (s *SQLiteStore) GetCardStatsByDeck(ctx context.Context, deckID string) ([]deck.CardStats, error) {
	cards, err := s.listCards(ctx, deckID)
	if err != nil {
		return nil, err
	}

	stats := make([]deck.CardStats, len(cards))
	index := make(map[string]int, len(cards))
	for i, c := range cards {
		stats[i].CardID = c.ID
		index[c.ID] = i
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.card_id, r.score
		FROM results r
		JOIN cards c ON c.id = r.card_id
		WHERE c.deck_id = ?
		ORDER BY r.id
	`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cardID string
		var score int
		if err := rows.Scan(&cardID, &score); err != nil {
			return nil, err
		}
		cs := &stats[index[cardID]]
		cs.TimesReviewed++
		cs.TotalScore += score
		cs.LatestScore = score
		if score == 100 {
			cs.TimesCorrect++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range stats {
		stats[i].Mastery = stats[i].CalculateMastery()
	}
	return stats, nil
}

// GetDeckMastery averages card mastery over every card of the deck.
func (s *SQLiteStore) GetDeckMastery(ctx context.Context, deckID string) (int, error) {
	stats, err := s.GetCardStatsByDeck(ctx, deckID)
	if err != nil {
		return 0, err
	}
	if len(stats) == 0 {
		return 0, nil
	}

	total := 0
	for _, cs := range stats {
		total += cs.Mastery
	}
	return total / len(stats), nil
}

// GetCardsOrderedByMastery returns the deck's cards, weakest first. Ties keep
// deck order.
func (s *SQLiteStore) GetCardsOrderedByMastery(ctx context.Context, deckID string) ([]deck.Card, error) {
	cards, err := s.listCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	stats, err := s.GetCardStatsByDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	mastery := make(map[string]int, len(stats))
	for _, cs := range stats {
		mastery[cs.CardID] = cs.Mastery
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return mastery[cards[i].ID] < mastery[cards[j].ID]
	})
	return cards, nil
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
