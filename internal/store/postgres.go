package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/hyppe-labs/scoriz/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock
// implements it for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool creates a PostgresStore over an existing pool.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS analyses (
	id         TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	result     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);

CREATE TABLE IF NOT EXISTS usage_ledger (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	count      INTEGER NOT NULL DEFAULT 0,
	last_reset TIMESTAMPTZ NOT NULL
);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveAnalysis(ctx context.Context, a model.SavedAnalysis) error {
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal result")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, url, result, created_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET url = excluded.url, result = excluded.result, created_at = excluded.created_at`,
		a.ID, a.URL, string(resultJSON), a.Date.UTC(),
	)
	if err != nil {
		return eris.Wrap(err, "postgres: insert analysis")
	}

	_, err = s.pool.Exec(ctx,
		`DELETE FROM analyses WHERE id NOT IN (
			SELECT id FROM analyses ORDER BY created_at DESC LIMIT $1
		)`, MaxSavedAnalyses,
	)
	return eris.Wrap(err, "postgres: truncate analyses")
}

func (s *PostgresStore) ListAnalyses(ctx context.Context) ([]model.SavedAnalysis, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, url, result, created_at FROM analyses ORDER BY created_at DESC LIMIT $1`,
		MaxSavedAnalyses,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list analyses")
	}
	defer rows.Close()

	var out []model.SavedAnalysis
	for rows.Next() {
		var (
			a          model.SavedAnalysis
			resultJSON []byte
		)
		if err := rows.Scan(&a.ID, &a.URL, &resultJSON, &a.Date); err != nil {
			return nil, eris.Wrap(err, "postgres: scan analysis")
		}
		if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
			return nil, eris.Wrapf(err, "postgres: unmarshal analysis %s", a.ID)
		}
		out = append(out, a)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate analyses")
}

func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	return eris.Wrapf(err, "postgres: delete analysis %s", id)
}

func (s *PostgresStore) GetUsage(ctx context.Context) (model.Usage, error) {
	var u model.Usage
	err := s.pool.QueryRow(ctx,
		`SELECT count, last_reset FROM usage_ledger WHERE id = 1`,
	).Scan(&u.Count, &u.LastReset)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Usage{}, nil
	}
	if err != nil {
		return model.Usage{}, eris.Wrap(err, "postgres: get usage")
	}
	return u, nil
}

func (s *PostgresStore) PutUsage(ctx context.Context, u model.Usage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO usage_ledger (id, count, last_reset) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET count = excluded.count, last_reset = excluded.last_reset`,
		u.Count, u.LastReset.UTC(),
	)
	return eris.Wrap(err, "postgres: put usage")
}
