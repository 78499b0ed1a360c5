package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecosort/ecosort/internal/config"
	storepkg "github.com/ecosort/ecosort/internal/store"
	storepg "github.com/ecosort/ecosort/internal/store/postgres"
	storesqlite "github.com/ecosort/ecosort/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured driver. The schema is
// ensured synchronously; the service must not accept traffic against a
// half-created database.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := storepg.EnsureSchema(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("driver", "postgres").Msg("store ready")
		return storepg.NewWithDB(db), nil
	case "sqlite":
		st, err := storesqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("store ready")
		return st, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
