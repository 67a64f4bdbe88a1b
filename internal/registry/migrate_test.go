// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package registry

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/scriptlang/pkg/errutil"
)

func TestNewMigrator_InvalidURL(t *testing.T) {
	_, err := NewMigrator("invalid://url")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "MIGRATION_INIT_FAILED")
}

func TestNewMigrator_PostgresqlSchemeIsConverted(t *testing.T) {
	_, err := NewMigrator("postgresql://localhost:5432/testdb")
	require.Error(t, err, "should fail due to connection, not URL scheme")
	errutil.AssertErrorCode(t, err, "MIGRATION_INIT_FAILED")
	assert.NotContains(t, err.Error(), "unknown driver")
}

type mockMigrate struct {
	upErr          error
	versionVal     uint
	versionErr     error
	dirty          bool
	closeSourceErr error
	closeDbErr     error
}

func (m *mockMigrate) Up() error                    { return m.upErr }
func (m *mockMigrate) Version() (uint, bool, error) { return m.versionVal, m.dirty, m.versionErr }
func (m *mockMigrate) Close() (error, error)        { return m.closeSourceErr, m.closeDbErr }

func TestMigrator_Up_Success(t *testing.T) {
	m := &Migrator{m: &mockMigrate{}}
	require.NoError(t, m.Up())
}

func TestMigrator_Up_NoChangeIsNotAnError(t *testing.T) {
	m := &Migrator{m: &mockMigrate{upErr: migrate.ErrNoChange}}
	require.NoError(t, m.Up())
}

func TestMigrator_Up_PropagatesOtherErrors(t *testing.T) {
	m := &Migrator{m: &mockMigrate{upErr: errors.New("disk full")}}
	err := m.Up()
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "MIGRATION_UP_FAILED")
}

func TestMigrator_Version_NilVersionMeansZero(t *testing.T) {
	m := &Migrator{m: &mockMigrate{versionErr: migrate.ErrNilVersion}}
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)
}

func TestMigrator_Version_ReturnsCurrentVersion(t *testing.T) {
	m := &Migrator{m: &mockMigrate{versionVal: 1, dirty: true}}
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.True(t, dirty)
}

func TestMigrator_Close_ReportsSourceErrorFirst(t *testing.T) {
	m := &Migrator{m: &mockMigrate{closeSourceErr: errors.New("source close failed")}}
	err := m.Close()
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "MIGRATION_CLOSE_FAILED")
}

func TestMigrator_Close_ReportsDatabaseError(t *testing.T) {
	m := &Migrator{m: &mockMigrate{closeDbErr: errors.New("database close failed")}}
	err := m.Close()
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "MIGRATION_CLOSE_FAILED")
}
