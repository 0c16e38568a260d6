// Package transcript records a best-effort audit trail of chat exchanges.
package transcript

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// Entry is one audited exchange.
type Entry struct {
	ExchangeID string
	SessionID  string
	Intent     string
	Confidence float64
	Action     domain.ActionID
	Source     domain.ReplySource
	CreatedAt  time.Time
}

// Store persists exchange entries in SQLite. Writes are best-effort: the
// orchestrator logs failures and moves on.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the transcript database.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across
	// goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS exchanges (
			exchange_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			intent TEXT NOT NULL,
			confidence REAL NOT NULL,
			action TEXT,
			source TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exchanges_session ON exchanges(session_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Record inserts one exchange entry.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exchanges (exchange_id, session_id, intent, confidence, action, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ExchangeID, e.SessionID, e.Intent, e.Confidence, string(e.Action), string(e.Source), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record exchange: %w", err)
	}
	return nil
}

// BySession returns a session's entries, oldest first, up to limit.
func (s *Store) BySession(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT exchange_id, session_id, intent, confidence, action, source, created_at
		 FROM exchanges WHERE session_id = ? ORDER BY created_at ASC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var action, source string
		if err := rows.Scan(&e.ExchangeID, &e.SessionID, &e.Intent, &e.Confidence, &action, &source, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		e.Action = domain.ActionID(action)
		e.Source = domain.ReplySource(source)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
