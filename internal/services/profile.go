package services

import (
	"context"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store"
)

// ProfileService handles profile reads and explicit creation.
type ProfileService struct {
	store store.Store
}

func NewProfileService(s store.Store) *ProfileService { return &ProfileService{store: s} }

// GetProfile returns the caller's profile, or model.ErrNotFound before the
// first scan or explicit create.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.store.Profiles().Get(ctx, userID)
}

// CreateProfile creates an empty profile if none exists. Idempotent; the
// store upsert makes concurrent creation safe.
func (s *ProfileService) CreateProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.store.Profiles().EnsureExists(ctx, userID)
}
