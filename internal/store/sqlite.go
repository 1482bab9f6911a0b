package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/hyppe-labs/scoriz/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id         TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);

CREATE TABLE IF NOT EXISTS usage_ledger (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	count      INTEGER NOT NULL DEFAULT 0,
	last_reset DATETIME NOT NULL
);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAnalysis inserts the analysis and evicts everything beyond the
// newest MaxSavedAnalyses entries.
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, a model.SavedAnalysis) error {
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal result")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analyses (id, url, result, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.URL, string(resultJSON), a.Date.UTC(),
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert analysis")
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE id NOT IN (
			SELECT id FROM analyses ORDER BY created_at DESC LIMIT ?
		)`, MaxSavedAnalyses,
	)
	return eris.Wrap(err, "sqlite: truncate analyses")
}

// ListAnalyses returns saved analyses, most recent first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context) ([]model.SavedAnalysis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, result, created_at FROM analyses ORDER BY created_at DESC LIMIT ?`,
		MaxSavedAnalyses,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list analyses")
	}
	defer rows.Close()

	var out []model.SavedAnalysis
	for rows.Next() {
		var (
			a          model.SavedAnalysis
			resultJSON string
		)
		if err := rows.Scan(&a.ID, &a.URL, &resultJSON, &a.Date); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analysis")
		}
		if err := json.Unmarshal([]byte(resultJSON), &a.Result); err != nil {
			return nil, eris.Wrapf(err, "sqlite: unmarshal analysis %s", a.ID)
		}
		out = append(out, a)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate analyses")
}

// DeleteAnalysis removes the analysis with the given id. Unknown ids
// are a no-op.
func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	return eris.Wrapf(err, "sqlite: delete analysis %s", id)
}

// GetUsage returns the usage ledger. A missing row reads as zero usage.
func (s *SQLiteStore) GetUsage(ctx context.Context) (model.Usage, error) {
	var u model.Usage
	err := s.db.QueryRowContext(ctx,
		`SELECT count, last_reset FROM usage_ledger WHERE id = 1`,
	).Scan(&u.Count, &u.LastReset)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Usage{}, nil
	}
	if err != nil {
		return model.Usage{}, eris.Wrap(err, "sqlite: get usage")
	}
	return u, nil
}

// PutUsage upserts the single-row usage ledger.
func (s *SQLiteStore) PutUsage(ctx context.Context, u model.Usage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_ledger (id, count, last_reset) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET count = excluded.count, last_reset = excluded.last_reset`,
		u.Count, u.LastReset.UTC(),
	)
	return eris.Wrap(err, "sqlite: put usage")
}
