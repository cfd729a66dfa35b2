package postgresql

import (
	"context"

	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db database.Pool
}

func NewUserRepository(db database.Pool) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByUsername implements user.UserRepository.
func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, permissions, created_at
		FROM users
		WHERE username = $1
	`

	var found user.User
	var rawPermissions []string
	err := q.QueryRow(ctx, query, username).Scan(
		&found.ID, &found.Username, &found.PasswordHash, &rawPermissions, &found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, storeError("get user by username", err)
	}
	found.Permissions = user.ParsePermissions(rawPermissions)

	return found, nil
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, err
	}

	query := `
		INSERT INTO users (id, username, password_hash, permissions)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, password_hash, permissions, created_at
	`

	var created user.User
	var rawPermissions []string
	err = q.QueryRow(ctx, query,
		id.String(), newUser.Username, newUser.PasswordHash, newUser.Permissions.Strings(),
	).Scan(
		&created.ID, &created.Username, &created.PasswordHash, &rawPermissions, &created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, storeError("create user", err)
	}
	created.Permissions = user.ParsePermissions(rawPermissions)

	return created, nil
}
