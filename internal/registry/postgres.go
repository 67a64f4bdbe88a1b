// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// poolIface is the slice of *pgxpool.Pool the store needs, narrow enough
// for pgxmock to stand in for during tests.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists script run records to PostgreSQL. A nil *Store is not
// valid; use NewStore.
type Store struct {
	pool  poolIface
	close func()
}

// NewStore connects to the database behind dsn, retrying the initial
// connection with exponential backoff before giving up.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		p, connErr := pgxpool.New(ctx, dsn)
		if connErr != nil {
			slog.Debug("registry connect failed, will retry", "attempt", attempt, "error", connErr)
			return retry.RetryableError(connErr)
		}
		if pingErr := p.Ping(ctx); pingErr != nil {
			p.Close()
			slog.Debug("registry ping failed, will retry", "attempt", attempt, "error", pingErr)
			return retry.RetryableError(pingErr)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, oops.Code("REGISTRY_CONNECT_FAILED").With("operation", "connect to registry database").Wrap(err)
	}
	return &Store{pool: pool, close: pool.Close}, nil
}

// newStoreWithPool wires an already-constructed pool (or mock) directly,
// for tests that never dial a real database.
func newStoreWithPool(pool poolIface) *Store {
	return &Store{pool: pool, close: func() {}}
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.close()
}

// RecordRun inserts a new run record. It returns ErrDuplicateRun if a run
// with the same ID has already been recorded.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO script_runs (id, grammar_name, grammar_version, source_hash, outcome, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID,
		run.GrammarName,
		run.GrammarVersion,
		run.SourceHash,
		string(run.Outcome),
		run.Duration.Milliseconds(),
		run.CreatedAt,
	)
	if err != nil {
		return oops.Code("REGISTRY_RECORD_FAILED").
			With("operation", "insert script run").
			With("run_id", run.ID).
			Wrap(classifyPgError(err))
	}
	return nil
}

// ListRuns returns the most recent runs for grammarName, newest first,
// bounded by limit.
func (s *Store) ListRuns(ctx context.Context, grammarName string, limit int) ([]Run, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, grammar_name, grammar_version, source_hash, outcome, duration_ms, created_at
		 FROM script_runs WHERE grammar_name = $1 ORDER BY created_at DESC LIMIT $2`,
		grammarName, limit)
	if err != nil {
		return nil, oops.Code("REGISTRY_QUERY_FAILED").
			With("operation", "list script runs").
			With("grammar_name", grammarName).
			Wrap(err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var durationMs int64
		if scanErr := rows.Scan(&r.ID, &r.GrammarName, &r.GrammarVersion, &r.SourceHash, &outcome, &durationMs, &r.CreatedAt); scanErr != nil {
			return nil, oops.Code("REGISTRY_SCAN_FAILED").With("operation", "scan script run row").Wrap(scanErr)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("REGISTRY_ROWS_FAILED").With("operation", "iterate script runs").Wrap(err)
	}
	return runs, nil
}

// LatestRun returns the most recently recorded run for grammarName, or
// pgx.ErrNoRows itself (not wrapped) if none exist.
func (s *Store) LatestRun(ctx context.Context, grammarName string) (Run, error) {
	var r Run
	var outcome string
	var durationMs int64
	err := s.pool.QueryRow(ctx,
		`SELECT id, grammar_name, grammar_version, source_hash, outcome, duration_ms, created_at
		 FROM script_runs WHERE grammar_name = $1 ORDER BY created_at DESC LIMIT 1`,
		grammarName,
	).Scan(&r.ID, &r.GrammarName, &r.GrammarVersion, &r.SourceHash, &outcome, &durationMs, &r.CreatedAt)
	if err == pgx.ErrNoRows {
		return Run{}, err
	}
	if err != nil {
		return Run{}, oops.Code("REGISTRY_QUERY_FAILED").
			With("operation", "query latest script run").
			With("grammar_name", grammarName).
			Wrap(err)
	}
	r.Outcome = Outcome(outcome)
	r.Duration = time.Duration(durationMs) * time.Millisecond
	return r, nil
}
