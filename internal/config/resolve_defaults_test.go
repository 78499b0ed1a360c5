package config

import (
	"os"
	"testing"
)

func unsetStorageEnv() {
	_ = os.Unsetenv("ECOSORT_DB_DRIVER")
	_ = os.Unsetenv("ECOSORT_POSTGRES_DSN")
	_ = os.Unsetenv("ECOSORT_SQLITE_PATH")
}

func TestResolveDefaultsSqliteWithoutDSN(t *testing.T) {
	unsetStorageEnv()
	defer unsetStorageEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected sqlite without a DSN, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsPostgresWithDSN(t *testing.T) {
	unsetStorageEnv()
	_ = os.Setenv("ECOSORT_POSTGRES_DSN", "postgres://user:pw@localhost:5432/ecosort")
	defer unsetStorageEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected postgres with a DSN, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsExplicitDriverWins(t *testing.T) {
	unsetStorageEnv()
	_ = os.Setenv("ECOSORT_DB_DRIVER", "sqlite")
	_ = os.Setenv("ECOSORT_POSTGRES_DSN", "postgres://user:pw@localhost:5432/ecosort")
	defer unsetStorageEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("override failed, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsRejectsUnknownDriver(t *testing.T) {
	unsetStorageEnv()
	_ = os.Setenv("ECOSORT_DB_DRIVER", "spanner")
	defer unsetStorageEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestResolveDefaultsPostgresRequiresDSN(t *testing.T) {
	unsetStorageEnv()
	_ = os.Setenv("ECOSORT_DB_DRIVER", "postgres")
	defer unsetStorageEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for postgres without DSN")
	}
}
