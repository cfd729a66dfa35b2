package auth

import "github.com/corpdesk/company-backend-go/internal/domain/user"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// Principal is the authorized caller extracted from a verified access
// token. It is carried per request, never in package-level state.
type Principal struct {
	Username    string
	Permissions user.PermissionSet
}
