// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first statement fails

	err = Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestDir_SameMigrationsPerDialect(t *testing.T) {
	names := func(dialect string) []string {
		dir, err := Dir(dialect)
		require.NoError(t, err)
		files, err := fs.Glob(dir, "*.sql")
		require.NoError(t, err)
		return files
	}

	pg := names("postgres")
	lite := names("sqlite3")

	require.NotEmpty(t, pg)
	assert.Equal(t, pg, lite)
}

func TestMigrationsHaveUpAndDown(t *testing.T) {
	for _, dialect := range []string{"postgres", "sqlite3"} {
		dir, err := Dir(dialect)
		require.NoError(t, err)

		files, err := fs.Glob(dir, "*.sql")
		require.NoError(t, err)

		for _, f := range files {
			body, err := fs.ReadFile(dir, f)
			require.NoError(t, err)
			assert.Contains(t, string(body), "-- +goose Up", "%s/%s", dialect, f)
			assert.Contains(t, string(body), "-- +goose Down", "%s/%s", dialect, f)
		}
	}
}
