package services

import (
	"context"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store"
)

// ReferenceService serves the static reference data: recycling tips and the
// rewards catalog. Reads are the core's only interest; ReplaceSeed backs the
// seed tool and swaps the whole set wholesale.
type ReferenceService struct {
	store store.Store
}

func NewReferenceService(s store.Store) *ReferenceService { return &ReferenceService{store: s} }

// ListTips returns tips, filtered by waste type when one is given.
func (s *ReferenceService) ListTips(ctx context.Context, wasteType string) ([]*model.RecyclingTip, error) {
	if wasteType == "" {
		return s.store.Tips().List(ctx, nil)
	}
	wt := model.WasteType(wasteType)
	return s.store.Tips().List(ctx, &wt)
}

// ListActiveRewards returns active rewards in storage order.
func (s *ReferenceService) ListActiveRewards(ctx context.Context) ([]*model.Reward, error) {
	return s.store.Rewards().ListActive(ctx)
}

// ReplaceSeed replaces all tips and rewards. It never touches waste items or
// profiles.
func (s *ReferenceService) ReplaceSeed(ctx context.Context, tips []*model.RecyclingTip, rewards []*model.Reward) error {
	if err := s.store.Tips().ReplaceAll(ctx, tips); err != nil {
		return err
	}
	return s.store.Rewards().ReplaceAll(ctx, rewards)
}
