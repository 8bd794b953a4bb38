package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(retryAttempts-1, retry.NewConstant(time.Millisecond))
	}
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
