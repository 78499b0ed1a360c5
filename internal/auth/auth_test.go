package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/store/sqlite"
)

func TestStoreAuthorizer(t *testing.T) {
	ctx := context.Background()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if _, err := st.Users().Create(ctx, &model.User{
		UserID: "alice",
		Email:  "alice@example.com",
		APIKey: "key-alice",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	a := NewStoreAuthorizer(st.Users())

	u, err := a.Authorize(ctx, "key-alice")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if u.UserID != "alice" {
		t.Fatalf("resolved user = %q", u.UserID)
	}

	if _, err := a.Authorize(ctx, "wrong-key"); !errors.Is(err, model.ErrNotAuthenticated) {
		t.Fatalf("unknown key: want ErrNotAuthenticated, got %v", err)
	}
	if _, err := a.Authorize(ctx, ""); !errors.Is(err, model.ErrNotAuthenticated) {
		t.Fatalf("empty key: want ErrNotAuthenticated, got %v", err)
	}
}

func TestExtractAPIKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/profile", nil)
	r.Header.Set("Authorization", "Bearer abc123")
	key, err := ExtractAPIKey(r)
	if err != nil || key != "abc123" {
		t.Fatalf("ExtractAPIKey = %q, %v", key, err)
	}

	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer a b"} {
		r := httptest.NewRequest("GET", "/api/profile", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		if _, err := ExtractAPIKey(r); !errors.Is(err, model.ErrNotAuthenticated) {
			t.Errorf("header %q: want ErrNotAuthenticated, got %v", header, err)
		}
	}
}
