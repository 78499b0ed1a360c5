package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecosort/ecosort/internal/blob"
	"github.com/ecosort/ecosort/internal/classify"
	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store"
	"github.com/ecosort/ecosort/internal/store/sqlite"
)

// fakeClassifier returns a canned result and records the image URL it saw.
type fakeClassifier struct {
	result   *classify.Result
	gotImage string
	gotDesc  string
}

func (f *fakeClassifier) Classify(ctx context.Context, imageURL, userDescription string) *classify.Result {
	f.gotImage = imageURL
	f.gotDesc = userDescription
	return f.result
}

func newFixture(t *testing.T, c classify.Classifier) (*WasteService, *blob.LocalStore, store.Store) {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	blobs, err := blob.NewLocal(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("blob: %v", err)
	}
	return NewWasteService(st, blobs, c), blobs, st
}

func uploadImage(t *testing.T, blobs *blob.LocalStore) string {
	t.Helper()
	ctx := context.Background()
	up, err := blobs.GenerateUploadURL(ctx)
	if err != nil {
		t.Fatalf("GenerateUploadURL: %v", err)
	}
	if err := blobs.Save(ctx, up.ImageID, strings.NewReader("img")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return up.ImageID
}

func TestAnalyzeWaste_StructuredClassification(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClassifier{result: &classify.Result{
		Source: classify.SourceModel,
		Classification: model.Classification{
			WasteType:     model.WasteElectronic,
			Description:   "old phone",
			RecyclingTips: "take to e-waste center",
		},
	}}
	svc, blobs, st := newFixture(t, fc)
	imageID := uploadImage(t, blobs)

	res, err := svc.AnalyzeWaste(ctx, "alice", imageID, "my old phone", nil)
	if err != nil {
		t.Fatalf("AnalyzeWaste: %v", err)
	}
	if res.Item.PointsEarned != 25 {
		t.Fatalf("electronic points = %d, want 25", res.Item.PointsEarned)
	}
	if res.Source != classify.SourceModel {
		t.Fatalf("source = %s", res.Source)
	}
	if !strings.Contains(fc.gotImage, imageID) {
		t.Fatalf("classifier saw image %q", fc.gotImage)
	}
	if fc.gotDesc != "my old phone" {
		t.Fatalf("classifier saw description %q", fc.gotDesc)
	}
	if res.Item.AIAnalysis == nil || !strings.Contains(*res.Item.AIAnalysis, "electronic") {
		t.Fatalf("serialized payload = %v", res.Item.AIAnalysis)
	}

	// First scan created the profile.
	p, err := st.Profiles().Get(ctx, "alice")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.TotalPoints != 25 || p.WasteItemsCount != 1 || p.RecycledItemsCount != 0 || p.Level != 1 {
		t.Fatalf("profile after first scan = %+v", p)
	}
}

func TestAnalyzeWaste_FallbackStillSaves(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClassifier{result: classify.DefaultResult()}
	svc, blobs, st := newFixture(t, fc)
	imageID := uploadImage(t, blobs)

	res, err := svc.AnalyzeWaste(ctx, "bob", imageID, "", nil)
	if err != nil {
		t.Fatalf("AnalyzeWaste with fallback: %v", err)
	}
	if res.Source != classify.SourceFallback {
		t.Fatalf("source = %s", res.Source)
	}
	if res.Item.WasteType != model.WasteOther || res.Item.PointsEarned != 5 {
		t.Fatalf("fallback item = %+v", res.Item)
	}
	p, _ := st.Profiles().Get(ctx, "bob")
	if p.TotalPoints != 5 {
		t.Fatalf("fallback profile = %+v", p)
	}
}

func TestAnalyzeWaste_UnknownImage(t *testing.T) {
	svc, _, _ := newFixture(t, &fakeClassifier{result: classify.DefaultResult()})
	_, err := svc.AnalyzeWaste(context.Background(), "alice", "no-such-image", "", nil)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("unknown image: want ErrNotFound, got %v", err)
	}
}

func TestListUserItems_ResolvesImageURLs(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClassifier{result: classify.DefaultResult()}
	svc, blobs, _ := newFixture(t, fc)
	imageID := uploadImage(t, blobs)

	if _, err := svc.AnalyzeWaste(ctx, "carol", imageID, "", nil); err != nil {
		t.Fatalf("AnalyzeWaste: %v", err)
	}
	items, err := svc.ListUserItems(ctx, "carol", 0)
	if err != nil || len(items) != 1 {
		t.Fatalf("ListUserItems: n=%d err=%v", len(items), err)
	}
	if items[0].ImageURL == nil || !strings.Contains(*items[0].ImageURL, imageID) {
		t.Fatalf("image url = %v", items[0].ImageURL)
	}
}

func TestDeriveUserIDFromEmail(t *testing.T) {
	cases := map[string]string{
		"alice@example.com":          "alice",
		"Bob.Smith@example.com":      "bob_smith",
		"very.long.email.address.here@example.com": "very_long_email_addr",
	}
	for in, want := range cases {
		if got := deriveUserIDFromEmail(in); got != want {
			t.Errorf("deriveUserIDFromEmail(%q) = %q, want %q", in, got, want)
		}
	}
	if got := deriveUserIDFromEmail("@example.com"); !strings.HasPrefix(got, "u_") {
		t.Errorf("empty local part should fall back to uuid id, got %q", got)
	}
}
