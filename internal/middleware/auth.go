package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/arqsuite/arqsuite-api/internal/pkg/response"
	"github.com/arqsuite/arqsuite-api/internal/pkg/token"
)

type contextKey string

const PrincipalKey contextKey = "principal"

// Auth returns middleware that validates the bearer credential through
// the given verifier and stores the resulting principal in the context.
func Auth(verifier token.Verifier) func(http.Handler) http.Handler {
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

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpiredToken) {
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

// GetPrincipal extracts the authenticated principal from context
func GetPrincipal(ctx context.Context) *token.Principal {
	if p, ok := ctx.Value(PrincipalKey).(*token.Principal); ok {
		return p
	}
	return nil
}
