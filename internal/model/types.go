package model

import "time"

// User represents an account in the system.
type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	DisplayName  *string   `json:"displayName,omitempty"`
	APIKey       string    `json:"apiKey,omitempty"`
	CreationTime time.Time `json:"creationTime"`
}

// WasteType is one of the fixed waste categories assigned to a scanned item.
type WasteType string

const (
	WasteOrganic    WasteType = "organic"
	WastePlastic    WasteType = "plastic"
	WasteGlass      WasteType = "glass"
	WastePaper      WasteType = "paper"
	WasteElectronic WasteType = "electronic"
	WasteMetal      WasteType = "metal"
	WasteOther      WasteType = "other"
)

// KnownWasteTypes lists every category except "other", in the order the
// heuristic fallback scans for them.
var KnownWasteTypes = []WasteType{
	WasteOrganic, WastePlastic, WasteGlass, WastePaper, WasteElectronic, WasteMetal,
}

// Location is an optional geotag attached to a waste item.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
}

// WasteItem is one scanned item. PointsEarned is fixed at insert time and
// IsRecycled only ever transitions false to true.
type WasteItem struct {
	ItemID        string    `json:"itemId"`
	UserID        string    `json:"userId"`
	ImageID       *string   `json:"imageId,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	WasteType     WasteType `json:"wasteType"`
	Description   string    `json:"description"`
	AIAnalysis    *string   `json:"aiAnalysis,omitempty"`
	RecyclingTips *string   `json:"recyclingTips,omitempty"`
	PointsEarned  int       `json:"pointsEarned"`
	IsRecycled    bool      `json:"isRecycled"`
	Location      *Location `json:"location,omitempty"`
	CreationTime  time.Time `json:"creationTime"`
}

// Preferences holds per-user settings.
type Preferences struct {
	Notifications bool    `json:"notifications"`
	Location      *string `json:"location,omitempty"`
}

// UserProfile keeps running totals per user. Level is always derived from
// TotalPoints; it is never updated independently of the formula.
type UserProfile struct {
	UserID             string      `json:"userId"`
	TotalPoints        int         `json:"totalPoints"`
	Level              int         `json:"level"`
	WasteItemsCount    int         `json:"wasteItemsCount"`
	RecycledItemsCount int         `json:"recycledItemsCount"`
	Achievements       []string    `json:"achievements"`
	Preferences        Preferences `json:"preferences"`
	CreationTime       time.Time   `json:"creationTime"`
}

// LeaderboardEntry is a ranked profile enriched with a display name.
type LeaderboardEntry struct {
	UserProfile
	UserName string `json:"userName"`
}

// RecyclingTip is static reference data keyed by waste type.
type RecyclingTip struct {
	TipID        string    `json:"tipId"`
	WasteType    WasteType `json:"wasteType"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Difficulty   string    `json:"difficulty"`
	Materials    []string  `json:"materials"`
	Steps        []string  `json:"steps"`
	PointsReward int       `json:"pointsReward"`
	Tags         []string  `json:"tags"`
}

// Reward is a redeemable catalog entry.
type Reward struct {
	RewardID    string  `json:"rewardId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PointsCost  int     `json:"pointsCost"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// UserReward records a redemption. No operation creates or transitions these
// yet; the intended pending/claimed/expired lifecycle is future work.
type UserReward struct {
	UserRewardID string    `json:"userRewardId"`
	UserID       string    `json:"userId"`
	RewardID     string    `json:"rewardId"`
	RedeemedAt   time.Time `json:"redeemedAt"`
	Status       string    `json:"status"`
}

// Classification is the structured output of the vision analysis step.
type Classification struct {
	WasteType           WasteType `json:"wasteType"`
	Description         string    `json:"description"`
	RecyclingTips       string    `json:"recyclingTips"`
	EnvironmentalImpact string    `json:"environmentalImpact,omitempty"`
	ReuseIdeas          string    `json:"reuseIdeas,omitempty"`
}
