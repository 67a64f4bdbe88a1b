// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() Run {
	return Run{
		ID:             "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		GrammarName:    "calculator",
		GrammarVersion: "scriptlang/ast/v1",
		SourceHash:     "deadbeef",
		Outcome:        OutcomeSuccess,
		Duration:       42 * time.Millisecond,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestStore_RecordRun(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO script_runs`).
					WithArgs(
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "connection error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO script_runs`).
					WithArgs(
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
					).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			store := newStoreWithPool(mock)
			err = store.RecordRun(context.Background(), testRun())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_RecordRun_DuplicateIsClassified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO script_runs`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key value violates unique constraint"})

	store := newStoreWithPool(mock)
	err = store.RecordRun(context.Background(), testRun())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRun)
}

func TestStore_ListRuns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := pgxmock.NewRows([]string{"id", "grammar_name", "grammar_version", "source_hash", "outcome", "duration_ms", "created_at"}).
		AddRow("01ARZ3NDEKTSV4RRFFQ69G5FAV", "calculator", "scriptlang/ast/v1", "deadbeef", "success", int64(42), now).
		AddRow("01ARZ3NDEKTSV4RRFFQ69G5FAW", "calculator", "scriptlang/ast/v1", "beadfeed", "runtime_error", int64(7), now)

	mock.ExpectQuery(`SELECT id, grammar_name, grammar_version, source_hash, outcome, duration_ms, created_at\s+FROM script_runs WHERE grammar_name = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("calculator", 10).
		WillReturnRows(rows)

	store := newStoreWithPool(mock)
	runs, err := store.ListRuns(context.Background(), "calculator", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, OutcomeSuccess, runs[0].Outcome)
	assert.Equal(t, 42*time.Millisecond, runs[0].Duration)
	assert.Equal(t, OutcomeRuntimeErr, runs[1].Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LatestRun_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, grammar_name, grammar_version, source_hash, outcome, duration_ms, created_at\s+FROM script_runs WHERE grammar_name = \$1 ORDER BY created_at DESC LIMIT 1`).
		WithArgs("calculator").
		WillReturnError(pgx.ErrNoRows)

	store := newStoreWithPool(mock)
	_, err = store.LatestRun(context.Background(), "calculator")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
