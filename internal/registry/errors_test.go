// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package registry

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError_UniqueViolationBecomesSentinel(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.ErrorIs(t, classifyPgError(pgErr), ErrDuplicateRun)
}

func TestClassifyPgError_OtherErrorsPassThrough(t *testing.T) {
	other := errors.New("connection reset")
	assert.Same(t, other, classifyPgError(other))
}

func TestClassifyPgError_OtherPgCodesPassThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	assert.Same(t, error(pgErr), classifyPgError(pgErr))
}
