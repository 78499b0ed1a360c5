package auth

import (
	"context"

	"github.com/ecosort/ecosort/internal/model"
)

// StaticAuthorizer recognizes a fixed set of API keys. It is meant for
// tests and local development where no user store is wired up.
type StaticAuthorizer struct {
	users map[string]*model.User
}

// NewStaticAuthorizer creates a StaticAuthorizer from a key-to-user map.
func NewStaticAuthorizer(users map[string]*model.User) *StaticAuthorizer {
	return &StaticAuthorizer{users: users}
}

func (a *StaticAuthorizer) Authorize(ctx context.Context, apiKey string) (*model.User, error) {
	u, ok := a.users[apiKey]
	if !ok {
		return nil, model.ErrNotAuthenticated
	}
	return u, nil
}
