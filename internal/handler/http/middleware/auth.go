package middleware

import (
	"context"
	"net/http"

	"github.com/corpdesk/company-backend-go/internal/domain/auth"
	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthRequired verifies the bearer token decoded by jwtauth.Verifier
// and stores the authorized principal in the request context. A
// missing token and an invalid token are distinct error kinds.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if r.Header.Get("Authorization") == "" {
					response.HandleError(w, auth.ErrMissingToken)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrMissingToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal := auth.Principal{
				Permissions: permissionsFromClaims(claims),
			}
			if username, ok := claims["username"].(string); ok {
				principal.Username = username
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// PrincipalFromContext returns the authorized principal stored by
// AuthRequired.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(auth.Principal)
	return principal, ok
}

func permissionsFromClaims(claims map[string]interface{}) user.PermissionSet {
	raw, ok := claims["permissions"].([]interface{})
	if !ok {
		return nil
	}
	parsed := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			parsed = append(parsed, s)
		}
	}
	return user.ParsePermissions(parsed)
}
