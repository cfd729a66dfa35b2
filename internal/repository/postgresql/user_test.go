package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs("manager").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "permissions", "created_at"}).
			AddRow("user-1", "manager", "$2a$10$hash", []string{"read", "write"}, time.Now()))

	found, err := repo.GetByUsername(context.Background(), "manager")
	require.NoError(t, err)
	assert.Equal(t, "manager", found.Username)
	assert.Equal(t, user.PermissionSet{user.PermissionRead, user.PermissionWrite}, found.Permissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = repo.Create(context.Background(), user.User{
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
		Permissions:  user.PermissionSet{user.PermissionAdmin},
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
