package api

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/pkg/errors"

	"github.com/ecosort/ecosort/internal/api/respond"
	"github.com/ecosort/ecosort/internal/auth"
	"github.com/ecosort/ecosort/internal/model"
)

type contextKey int

const userContextKey contextKey = iota

// UserFromContext returns the authenticated user placed on the request
// context by AuthMiddleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userContextKey).(*model.User)
	return u, ok
}

// AuthMiddleware resolves the bearer API key to a user and stores it on the
// request context. Requests without a valid key fail 401.
func AuthMiddleware(authorizer auth.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey, err := auth.ExtractAPIKey(r)
			if err != nil {
				respond.WriteUnauthorized(w, "expected 'Authorization: Bearer <api-key>'")
				return
			}
			u, err := authorizer.Authorize(r.Context(), apiKey)
			if err != nil {
				if errors.Is(err, model.ErrNotAuthenticated) {
					respond.WriteUnauthorized(w, "invalid API key")
					return
				}
				respond.WriteInternalError(w, err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), userContextKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuthMiddleware guards operator endpoints with a dedicated key, separate
// from user API keys. An empty configured key disables the endpoints.
func AdminAuthMiddleware(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				respond.WriteUnauthorized(w, "admin API is not enabled")
				return
			}
			key, err := auth.ExtractAPIKey(r)
			if err != nil || subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
				respond.WriteUnauthorized(w, "invalid admin API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
