package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecosort/ecosort/internal/auth"
	"github.com/ecosort/ecosort/internal/model"
)

func TestAuthMiddleware(t *testing.T) {
	authorizer := auth.NewStaticAuthorizer(map[string]*model.User{
		"good-key": {UserID: "alice", Email: "alice@example.com"},
	})

	var seenUser string
	handler := AuthMiddleware(authorizer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatal("no user on request context")
		}
		seenUser = u.UserID
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("GET", "/api/profile", nil)
	r.Header.Set("Authorization", "Bearer good-key")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, r)
	if rr.Code != http.StatusOK || seenUser != "alice" {
		t.Fatalf("authorized request: code=%d user=%q", rr.Code, seenUser)
	}

	for _, header := range []string{"", "Bearer bad-key", "good-key"} {
		r := httptest.NewRequest("GET", "/api/profile", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, r)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: code = %d, want 401", header, rr.Code)
		}
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := AdminAuthMiddleware("operator-key")(ok)
	for header, want := range map[string]int{
		"Bearer operator-key": http.StatusOK,
		"Bearer user-key":     http.StatusUnauthorized,
		"":                    http.StatusUnauthorized,
	} {
		r := httptest.NewRequest("POST", "/api/admin/seed", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, r)
		if rr.Code != want {
			t.Errorf("header %q: code = %d, want %d", header, rr.Code, want)
		}
	}

	// No configured key means the endpoint stays closed for everyone.
	disabled := AdminAuthMiddleware("")(ok)
	r := httptest.NewRequest("POST", "/api/admin/seed", nil)
	r.Header.Set("Authorization", "Bearer operator-key")
	rr := httptest.NewRecorder()
	disabled.ServeHTTP(rr, r)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("disabled admin API: code = %d, want 401", rr.Code)
	}
}
