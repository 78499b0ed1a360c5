package auth

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store"
)

// Authorizer resolves an API key to the user it belongs to.
type Authorizer interface {
	// Authorize validates the API key and returns the owning user.
	// Returns model.ErrNotAuthenticated when the key is unknown.
	Authorize(ctx context.Context, apiKey string) (*model.User, error)
}

// StoreAuthorizer looks API keys up in the user store.
type StoreAuthorizer struct {
	users store.Users
}

// NewStoreAuthorizer creates an Authorizer backed by the user store.
func NewStoreAuthorizer(users store.Users) *StoreAuthorizer {
	return &StoreAuthorizer{users: users}
}

func (a *StoreAuthorizer) Authorize(ctx context.Context, apiKey string) (*model.User, error) {
	if apiKey == "" {
		return nil, model.ErrNotAuthenticated
	}
	u, err := a.users.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotAuthenticated
		}
		return nil, errors.Wrap(err, "authorize: look up api key")
	}
	return u, nil
}
