package services

import (
	"context"
	"encoding/json"

	"github.com/ecosort/ecosort/internal/blob"
	"github.com/ecosort/ecosort/internal/classify"
	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/points"
	"github.com/ecosort/ecosort/internal/store"
)

const defaultItemListLimit = 20

// WasteService orchestrates the scan flow: resolve the image, classify it,
// then record the item and score the profile in one atomic store operation.
type WasteService struct {
	store      store.Store
	blobs      blob.Store
	classifier classify.Classifier
}

func NewWasteService(s store.Store, b blob.Store, c classify.Classifier) *WasteService {
	return &WasteService{store: s, blobs: b, classifier: c}
}

// AnalyzeResult is what a scan returns to the caller.
type AnalyzeResult struct {
	Item           *model.WasteItem     `json:"item"`
	Classification model.Classification `json:"classification"`
	Source         classify.Source      `json:"source"`
}

// AnalyzeWaste classifies an uploaded image and records the scored item.
// The classifier call happens before and outside the storage transaction so
// its latency never holds a lock; its degraded results still produce a saved
// item. Fails with model.ErrNotFound when the image reference is unknown.
func (s *WasteService) AnalyzeWaste(ctx context.Context, userID, imageID, userDescription string, loc *model.Location) (*AnalyzeResult, error) {
	imageURL, err := s.blobs.ResolveURL(ctx, imageID)
	if err != nil {
		return nil, err
	}

	res := s.classifier.Classify(ctx, imageURL, userDescription)

	raw, _ := json.Marshal(res.Classification)
	rawStr := string(raw)
	tips := res.Classification.RecyclingTips
	item := &model.WasteItem{
		UserID:        userID,
		ImageID:       &imageID,
		WasteType:     res.Classification.WasteType,
		Description:   res.Classification.Description,
		AIAnalysis:    &rawStr,
		RecyclingTips: &tips,
		PointsEarned:  points.ForWasteType(res.Classification.WasteType),
		Location:      loc,
	}
	saved, err := s.store.WasteItems().RecordScan(ctx, item)
	if err != nil {
		return nil, err
	}
	saved.ImageURL = &imageURL
	return &AnalyzeResult{Item: saved, Classification: res.Classification, Source: res.Source}, nil
}

// MarkRecycled flips an item's recycled flag and grants the bonus. Returns
// the bonus amount. Passes through model.ErrNotFound and
// model.ErrAlreadyRecycled from the store.
func (s *WasteService) MarkRecycled(ctx context.Context, userID, itemID string) (int, error) {
	return s.store.WasteItems().MarkRecycled(ctx, userID, itemID)
}

// ListUserItems returns the caller's items, newest first, with image
// references resolved to URLs where the bytes still exist.
func (s *WasteService) ListUserItems(ctx context.Context, userID string, limit int) ([]*model.WasteItem, error) {
	if limit <= 0 {
		limit = defaultItemListLimit
	}
	items, err := s.store.WasteItems().ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ImageID == nil {
			continue
		}
		if url, err := s.blobs.ResolveURL(ctx, *item.ImageID); err == nil {
			item.ImageURL = &url
		}
	}
	return items, nil
}
