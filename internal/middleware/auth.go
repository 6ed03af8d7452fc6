package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
)

type contextKey string

const PrincipalKey contextKey = "principal"

// Authenticator turns a bearer token into a principal.
type Authenticator interface {
	Authenticate(token string) (*jwt.Principal, error)
}

// Auth returns middleware that requires a valid bearer token
func Auth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			principal, err := authn.Authenticate(parts[1])
			if err != nil {
				if errors.Is(err, jwt.ErrExpiredToken) {
					response.Unauthorized(w, "Token expired")
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal extracts the authenticated caller from context
func GetPrincipal(ctx context.Context) *jwt.Principal {
	if p, ok := ctx.Value(PrincipalKey).(*jwt.Principal); ok {
		return p
	}
	return nil
}

// RequireRole returns middleware that checks the principal's role
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p := GetPrincipal(r.Context()); p != nil {
				for _, role := range roles {
					if p.Role == role {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			response.Forbidden(w, "Insufficient permissions")
		})
	}
}
