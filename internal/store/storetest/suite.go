package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/points"
	"github.com/ecosort/ecosort/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	newUser := func(name string) *model.User {
		id := "u_" + uuid.New().String()[:8]
		u := &model.User{UserID: id, Email: id + "@example.test", APIKey: uuid.New().String()}
		if name != "" {
			u.DisplayName = &name
		}
		created, err := s.Users().Create(ctx, u)
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		return created
	}

	scan := func(userID string, wt model.WasteType) *model.WasteItem {
		item := &model.WasteItem{
			UserID:       userID,
			WasteType:    wt,
			Description:  "test item",
			PointsEarned: points.ForWasteType(wt),
		}
		saved, err := s.WasteItems().RecordScan(ctx, item)
		if err != nil {
			t.Fatalf("RecordScan: %v", err)
		}
		return saved
	}

	t.Run("users", func(t *testing.T) {
		u := newUser("Alice")
		got, err := s.Users().Get(ctx, u.UserID)
		if err != nil || got.Email != u.Email {
			t.Fatalf("GetUser: got=%v err=%v", got, err)
		}
		byKey, err := s.Users().GetByAPIKey(ctx, u.APIKey)
		if err != nil || byKey.UserID != u.UserID {
			t.Fatalf("GetByAPIKey: got=%v err=%v", byKey, err)
		}
		if _, err := s.Users().GetByAPIKey(ctx, "no-such-key"); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("GetByAPIKey(miss): want ErrNotFound, got %v", err)
		}
		dup := *u
		dup.APIKey = "another-key"
		if _, err := s.Users().Create(ctx, &dup); !errors.Is(err, model.ErrConflict) {
			t.Fatalf("duplicate Create: want ErrConflict, got %v", err)
		}
	})

	t.Run("first scan creates profile", func(t *testing.T) {
		u := newUser("")
		if _, err := s.Profiles().Get(ctx, u.UserID); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("fresh user profile: want ErrNotFound, got %v", err)
		}

		saved := scan(u.UserID, model.WastePlastic)
		if saved.ItemID == "" {
			t.Fatalf("RecordScan: empty item id")
		}
		if saved.PointsEarned != 15 {
			t.Fatalf("plastic points = %d, want 15", saved.PointsEarned)
		}
		if saved.IsRecycled {
			t.Fatalf("new item must not be recycled")
		}

		p, err := s.Profiles().Get(ctx, u.UserID)
		if err != nil {
			t.Fatalf("Get profile after first scan: %v", err)
		}
		if p.TotalPoints != 15 || p.Level != 1 || p.WasteItemsCount != 1 || p.RecycledItemsCount != 0 {
			t.Fatalf("first-scan profile = %+v", p)
		}
	})

	t.Run("level recomputed after every award", func(t *testing.T) {
		u := newUser("")
		// 4x electronic (25) = 100 points → level 2.
		for i := 0; i < 3; i++ {
			scan(u.UserID, model.WasteElectronic)
		}
		p, _ := s.Profiles().Get(ctx, u.UserID)
		if p.TotalPoints != 75 || p.Level != 1 {
			t.Fatalf("after 75 points: %+v", p)
		}
		scan(u.UserID, model.WasteElectronic)
		p, err := s.Profiles().Get(ctx, u.UserID)
		if err != nil {
			t.Fatalf("Get profile: %v", err)
		}
		if p.TotalPoints != 100 || p.Level != 2 || p.WasteItemsCount != 4 {
			t.Fatalf("after 100 points: %+v", p)
		}
	})

	t.Run("existing profile accumulates", func(t *testing.T) {
		u := newUser("")
		if _, err := s.Profiles().EnsureExists(ctx, u.UserID); err != nil {
			t.Fatalf("EnsureExists: %v", err)
		}
		// Second call is a no-op, not an error.
		p, err := s.Profiles().EnsureExists(ctx, u.UserID)
		if err != nil || p.TotalPoints != 0 || p.Level != 1 {
			t.Fatalf("EnsureExists repeat: p=%+v err=%v", p, err)
		}

		scan(u.UserID, model.WasteOrganic)
		scan(u.UserID, model.WasteGlass)
		p, _ = s.Profiles().Get(ctx, u.UserID)
		if p.TotalPoints != 22 || p.WasteItemsCount != 2 || p.RecycledItemsCount != 0 {
			t.Fatalf("accumulated profile = %+v", p)
		}
	})

	t.Run("mark recycled", func(t *testing.T) {
		u := newUser("")
		saved := scan(u.UserID, model.WastePaper) // 8 points

		bonus, err := s.WasteItems().MarkRecycled(ctx, u.UserID, saved.ItemID)
		if err != nil {
			t.Fatalf("MarkRecycled: %v", err)
		}
		if bonus != points.RecycleBonus {
			t.Fatalf("bonus = %d, want %d", bonus, points.RecycleBonus)
		}

		got, err := s.WasteItems().GetByID(ctx, u.UserID, saved.ItemID)
		if err != nil || !got.IsRecycled {
			t.Fatalf("item after recycle: got=%+v err=%v", got, err)
		}
		p, _ := s.Profiles().Get(ctx, u.UserID)
		if p.TotalPoints != 13 || p.RecycledItemsCount != 1 {
			t.Fatalf("profile after recycle = %+v", p)
		}

		// Not idempotent: the repeat fails and leaves counts untouched.
		if _, err := s.WasteItems().MarkRecycled(ctx, u.UserID, saved.ItemID); !errors.Is(err, model.ErrAlreadyRecycled) {
			t.Fatalf("repeat MarkRecycled: want ErrAlreadyRecycled, got %v", err)
		}
		p, _ = s.Profiles().Get(ctx, u.UserID)
		if p.TotalPoints != 13 || p.RecycledItemsCount != 1 {
			t.Fatalf("profile after failed repeat = %+v", p)
		}
	})

	t.Run("mark recycled ownership", func(t *testing.T) {
		owner := newUser("")
		stranger := newUser("")
		saved := scan(owner.UserID, model.WasteMetal)

		if _, err := s.WasteItems().MarkRecycled(ctx, stranger.UserID, saved.ItemID); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("foreign MarkRecycled: want ErrNotFound, got %v", err)
		}
		if _, err := s.WasteItems().MarkRecycled(ctx, owner.UserID, uuid.New().String()); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("missing MarkRecycled: want ErrNotFound, got %v", err)
		}
	})

	t.Run("list items newest first", func(t *testing.T) {
		u := newUser("")
		types := []model.WasteType{
			model.WasteOrganic, model.WastePlastic, model.WasteGlass,
			model.WastePaper, model.WasteMetal,
		}
		var saved []*model.WasteItem
		for _, wt := range types {
			saved = append(saved, scan(u.UserID, wt))
		}

		items, err := s.WasteItems().ListByUser(ctx, u.UserID, 10)
		if err != nil || len(items) != len(saved) {
			t.Fatalf("ListByUser: n=%d err=%v", len(items), err)
		}
		for i, it := range items {
			want := saved[len(saved)-1-i]
			if it.ItemID != want.ItemID {
				t.Fatalf("ListByUser order: pos %d got %s want %s", i, it.ItemID, want.ItemID)
			}
		}

		items, err = s.WasteItems().ListByUser(ctx, u.UserID, 1)
		if err != nil || len(items) != 1 {
			t.Fatalf("ListByUser limit: n=%d err=%v", len(items), err)
		}
		if items[0].ItemID != saved[len(saved)-1].ItemID {
			t.Fatalf("ListByUser limit: got %s want newest %s", items[0].ItemID, saved[len(saved)-1].ItemID)
		}
	})

	t.Run("leaderboard ordering", func(t *testing.T) {
		fresh := makeStore(t)
		mk := func(name string, pts int) {
			id := "u_" + uuid.New().String()[:8]
			u := &model.User{UserID: id, Email: id + "@example.test", APIKey: uuid.New().String()}
			if name != "" {
				u.DisplayName = &name
			}
			if _, err := fresh.Users().Create(ctx, u); err != nil {
				t.Fatalf("CreateUser: %v", err)
			}
			item := &model.WasteItem{UserID: id, WasteType: model.WasteOther, Description: "x", PointsEarned: pts}
			if _, err := fresh.WasteItems().RecordScan(ctx, item); err != nil {
				t.Fatalf("RecordScan: %v", err)
			}
		}
		mk("Fifty", 50)
		mk("TwoHundred", 200)
		mk("SeventyFive", 75)

		top, err := fresh.Profiles().Top(ctx, 2)
		if err != nil {
			t.Fatalf("Top: %v", err)
		}
		if len(top) != 2 || top[0].TotalPoints != 200 || top[1].TotalPoints != 75 {
			t.Fatalf("Top(2) = %+v", top)
		}
		if top[0].UserName != "TwoHundred" {
			t.Fatalf("display name = %q", top[0].UserName)
		}
	})

	t.Run("anonymous display name", func(t *testing.T) {
		fresh := makeStore(t)
		// A profile whose user row is gone resolves to the anonymous label.
		if _, err := fresh.Profiles().EnsureExists(ctx, "ghost"); err != nil {
			t.Fatalf("EnsureExists: %v", err)
		}
		top, err := fresh.Profiles().Top(ctx, 5)
		if err != nil || len(top) != 1 {
			t.Fatalf("Top: n=%d err=%v", len(top), err)
		}
		if top[0].UserName != "Anonymous User" {
			t.Fatalf("display name = %q, want Anonymous User", top[0].UserName)
		}
	})

	t.Run("tips and rewards reference data", func(t *testing.T) {
		tips := []*model.RecyclingTip{
			{WasteType: model.WastePlastic, Title: "Bottle Planter", Description: "d", Difficulty: "easy",
				Materials: []string{"bottle"}, Steps: []string{"cut"}, PointsReward: 15, Tags: []string{"upcycling"}},
			{WasteType: model.WasteOrganic, Title: "Composting", Description: "d", Difficulty: "medium",
				Materials: []string{"bin"}, Steps: []string{"layer"}, PointsReward: 20, Tags: []string{"garden"}},
		}
		if err := s.Tips().ReplaceAll(ctx, tips); err != nil {
			t.Fatalf("Tips.ReplaceAll: %v", err)
		}
		all, err := s.Tips().List(ctx, nil)
		if err != nil || len(all) != 2 {
			t.Fatalf("Tips.List: n=%d err=%v", len(all), err)
		}
		wt := model.WastePlastic
		filtered, err := s.Tips().List(ctx, &wt)
		if err != nil || len(filtered) != 1 || filtered[0].Title != "Bottle Planter" {
			t.Fatalf("Tips.List(plastic): %+v err=%v", filtered, err)
		}
		if len(filtered[0].Materials) != 1 || filtered[0].Materials[0] != "bottle" {
			t.Fatalf("tip materials round-trip: %+v", filtered[0].Materials)
		}

		rewards := []*model.Reward{
			{Title: "Water Bottle", Description: "d", PointsCost: 500, Category: "product", IsActive: true},
			{Title: "Retired", Description: "d", PointsCost: 100, Category: "voucher", IsActive: false},
			{Title: "Tree Donation", Description: "d", PointsCost: 200, Category: "donation", IsActive: true},
		}
		if err := s.Rewards().ReplaceAll(ctx, rewards); err != nil {
			t.Fatalf("Rewards.ReplaceAll: %v", err)
		}
		active, err := s.Rewards().ListActive(ctx)
		if err != nil || len(active) != 2 {
			t.Fatalf("Rewards.ListActive: n=%d err=%v", len(active), err)
		}
		// Insertion order is preserved.
		if active[0].Title != "Water Bottle" || active[1].Title != "Tree Donation" {
			t.Fatalf("active rewards order: %+v", active)
		}
	})
}
