// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package registry

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateRun is returned when a run with the same ID already exists.
var ErrDuplicateRun = errors.New("registry: run already recorded")

// classifyPgError maps a raw Postgres error onto a registry-level sentinel
// where one exists, so callers never need to inspect pgconn.PgError
// themselves.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicateRun
	}
	return err
}
