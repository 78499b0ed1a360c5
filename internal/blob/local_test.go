package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ecosort/ecosort/internal/model"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocal(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	up, err := s.GenerateUploadURL(ctx)
	if err != nil || up.ImageID == "" {
		t.Fatalf("GenerateUploadURL: up=%+v err=%v", up, err)
	}
	if !strings.HasSuffix(up.UploadURL, "/uploads/"+up.ImageID) {
		t.Fatalf("upload url = %q", up.UploadURL)
	}

	// Unresolvable until bytes are stored.
	if _, err := s.ResolveURL(ctx, up.ImageID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("ResolveURL before Save: want ErrNotFound, got %v", err)
	}

	if err := s.Save(ctx, up.ImageID, strings.NewReader("jpeg-bytes")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	url, err := s.ResolveURL(ctx, up.ImageID)
	if err != nil || url != up.UploadURL {
		t.Fatalf("ResolveURL: url=%q err=%v", url, err)
	}

	rc, err := s.Open(ctx, up.ImageID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = rc.Close() }()
	b, _ := io.ReadAll(rc)
	if string(b) != "jpeg-bytes" {
		t.Fatalf("stored bytes = %q", b)
	}
}

func TestLocalStore_RejectsBadIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := NewLocal(t.TempDir(), "http://localhost:8080")

	for _, id := range []string{"../../etc/passwd", "a/b", "", "x y"} {
		if _, err := s.ResolveURL(ctx, id); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("ResolveURL(%q): want ErrNotFound, got %v", id, err)
		}
		if err := s.Save(ctx, id, strings.NewReader("x")); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("Save(%q): want ErrNotFound, got %v", id, err)
		}
	}
}
