package token

import (
	"time"

	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, username string, permissions user.PermissionSet) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type TokenService struct {
	secretKey            string
	accessExpirationTime string
	tokenAuth            *jwtauth.JWTAuth
}

func NewTokenService(secretKey string, accessExpirationTime string) Service {
	return &TokenService{
		secretKey:            secretKey,
		accessExpirationTime: accessExpirationTime,
		tokenAuth:            jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (t *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return t.tokenAuth
}

func (t *TokenService) GenerateAccessToken(userID string, username string, permissions user.PermissionSet) (string, int64, error) {
	expDuration, err := time.ParseDuration(t.accessExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"username":    username,
		"permissions": permissions.Strings(),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := t.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
