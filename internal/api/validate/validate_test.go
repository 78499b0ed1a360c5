package validate

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	for _, v := range []string{"a@b.co", "alice@example.com", "x.y+z@sub.example.org"} {
		if err := Email(v); err != nil {
			t.Errorf("Email(%q) = %v, want nil", v, err)
		}
	}
	for _, v := range []string{"", "nodomain", "a b@c.co", "a@b", strings.Repeat("x", 321) + "@b.co"} {
		if err := Email(v); err == nil {
			t.Errorf("Email(%q) = nil, want error", v)
		}
	}
}

func TestCreateUser(t *testing.T) {
	if err := CreateUser("alice_1", "alice@example.com", nil); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	// userId is optional; empty means derive from email
	if err := CreateUser("", "alice@example.com", nil); err != nil {
		t.Fatalf("empty userId rejected: %v", err)
	}
	if err := CreateUser("Has-Caps", "alice@example.com", nil); err == nil {
		t.Fatal("invalid userId accepted")
	}
	long := strings.Repeat("n", 101)
	if err := CreateUser("alice", "alice@example.com", &long); err == nil {
		t.Fatal("oversized displayName accepted")
	}
}

func TestAnalyzeWaste(t *testing.T) {
	if err := AnalyzeWaste("550e8400-e29b-41d4-a716-446655440000", nil); err != nil {
		t.Fatalf("valid imageId rejected: %v", err)
	}
	for _, id := range []string{"", "../../etc/passwd", "a b", strings.Repeat("x", 65)} {
		if err := AnalyzeWaste(id, nil); err == nil {
			t.Errorf("imageId %q accepted", id)
		}
	}
	long := strings.Repeat("d", 501)
	if err := AnalyzeWaste("abc", &long); err == nil {
		t.Fatal("oversized description accepted")
	}
}
