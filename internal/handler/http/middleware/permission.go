package middleware

import (
	"fmt"
	"net/http"

	"github.com/corpdesk/company-backend-go/internal/domain/auth"
	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/handler/http/response"
)

// RequirePermission rejects requests whose principal lacks the
// required capability. admin grants every capability.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if !principal.Permissions.Allows(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
