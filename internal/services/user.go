package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store"
)

// UserService handles account creation and lookup.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

// CreateUser registers an account. When userID is empty a valid id is
// derived from the email's local part. The returned user carries the
// generated API key; it is shown once and never again.
func (s *UserService) CreateUser(ctx context.Context, userID, email string, displayName *string) (*model.User, error) {
	if userID == "" {
		userID = deriveUserIDFromEmail(email)
	}
	u := &model.User{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		APIKey:      uuid.New().String(),
	}
	return s.store.Users().Create(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}

// deriveUserIDFromEmail creates a valid userId from an email address using
// the allowed character set [a-z0-9_] and max length 20. If derivation
// comes up empty, it falls back to a short UUID-based id.
func deriveUserIDFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	local = strings.ToLower(local)
	b := make([]byte, 0, len(local))
	for i := 0; i < len(local) && len(b) < 20; i++ {
		c := local[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			b = append(b, c)
		} else {
			b = append(b, '_')
		}
	}
	out := strings.Trim(string(b), "_")
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	if out == "" {
		out = "u_" + uuid.New().String()[:8]
	}
	return out
}
