package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/corpdesk/company-backend-go/internal/domain/auth"
	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo     user.UserRepository
	tokenService token.Service
}

func NewAuthService(userRepo user.UserRepository, tokenService token.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login implements auth.AuthService. Verification is stateless: a
// successful login issues a single access token, nothing is stored.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	tokenString, expiresAt, err := a.tokenService.GenerateAccessToken(userData.ID, userData.Username, userData.Permissions)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		User: auth.UserResponse{
			Username:    userData.Username,
			Permissions: userData.Permissions.Strings(),
		},
	}, nil
}
