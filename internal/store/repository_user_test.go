package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()
	user := models.User{PseudonymousID: "a1b2c3d4e5f6", DisplayName: "Sam", Email: "sam@example.com", CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (pseudonymous_id,display_name,email,password_hash,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
		WithArgs(user.PseudonymousID, user.DisplayName, user.Email, "", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, user.PseudonymousID, created.PseudonymousID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{PseudonymousID: "dup"})
	assert.ErrorIs(t, err, ErrIdentityAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateUser(context.Background(), models.User{PseudonymousID: "p"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	for i := 0; i < retryAttempts; i++ {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.CreateUser(context.Background(), models.User{PseudonymousID: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_OtherError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("boom"))

	_, err := repo.CreateUser(context.Background(), models.User{PseudonymousID: "p"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIdentityAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByPseudonym_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, pseudonymous_id, display_name, email, password_hash, created_at FROM users WHERE pseudonymous_id = $1 LIMIT 1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "p1", "Sam", "", "$2a$hash", now))

	user, err := repo.FindUserByPseudonym(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "Sam", user.DisplayName)
	assert.True(t, user.HasPassword())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByPseudonym_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByPseudonym(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByPseudonym_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByPseudonym(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}
