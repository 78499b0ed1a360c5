package postgres

import (
	"os"
	"testing"

	"github.com/ecosort/ecosort/internal/store"
	"github.com/ecosort/ecosort/internal/store/storetest"
)

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	dsn := os.Getenv("ECOSORT_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ECOSORT_POSTGRES_DSN not set; skipping postgres store integration test")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("postgres schema: %v", err)
	}
	// The suite expects a clean store on every call.
	for _, table := range []string{"waste_items", "user_profiles", "user_rewards", "users", "recycling_tips", "rewards"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
	return NewWithDB(db)
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}
