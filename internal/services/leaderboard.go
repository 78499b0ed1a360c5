package services

import (
	"context"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store"
)

const defaultLeaderboardLimit = 10

// LeaderboardService ranks profiles by total points.
type LeaderboardService struct {
	store store.Store
}

func NewLeaderboardService(s store.Store) *LeaderboardService {
	return &LeaderboardService{store: s}
}

// Top returns up to limit ranked profiles, highest totals first.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return s.store.Profiles().Top(ctx, limit)
}
