package store

import (
	"context"

	"github.com/ecosort/ecosort/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., postgres, sqlite).
type Store interface {
	Users() Users
	Profiles() Profiles
	WasteItems() WasteItems
	Tips() Tips
	Rewards() Rewards
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
}

type Profiles interface {
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	// EnsureExists creates an empty profile for the user if none exists.
	// The upsert is a single atomic statement; concurrent callers never
	// produce duplicates or clobber an existing profile.
	EnsureExists(ctx context.Context, userID string) (*model.UserProfile, error)
	// Top returns up to limit profiles ordered by total points descending,
	// ties broken by profile creation time ascending. Display names are
	// resolved from the owning user.
	Top(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error)
}

type WasteItems interface {
	// RecordScan inserts the item and applies its points to the owner's
	// profile (creating the profile when absent) in one transaction.
	// The caller fills PointsEarned before the call; it is immutable after.
	RecordScan(ctx context.Context, item *model.WasteItem) (*model.WasteItem, error)
	// MarkRecycled flips the recycled flag and applies the bonus to the
	// owner's profile in one transaction. Returns the bonus granted.
	// Fails with model.ErrNotFound when the item is missing or owned by
	// someone else, and model.ErrAlreadyRecycled on a repeat call.
	MarkRecycled(ctx context.Context, userID, itemID string) (int, error)
	GetByID(ctx context.Context, userID, itemID string) (*model.WasteItem, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.WasteItem, error)
}

type Tips interface {
	List(ctx context.Context, wasteType *model.WasteType) ([]*model.RecyclingTip, error)
	// ReplaceAll deletes every tip and inserts the given set. Seed-time only.
	ReplaceAll(ctx context.Context, tips []*model.RecyclingTip) error
}

type Rewards interface {
	ListActive(ctx context.Context) ([]*model.Reward, error)
	// ReplaceAll deletes every reward and inserts the given set. Seed-time only.
	ReplaceAll(ctx context.Context, rewards []*model.Reward) error
}
