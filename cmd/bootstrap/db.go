package bootstrap

import (
	"context"
	"log/slog"

	"tenancy-service/internal/infra/db"
	"tenancy-service/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool and, when DB_MIGRATE_ON_START is set, brings the
// schema up to date before anything else can query it.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.MigrateOnStart {
		applied, err := db.ApplyMigrations(context.Background(), pool, cfg.DB.MigrationsDir)
		if err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("Database migrations applied", "dir", cfg.DB.MigrationsDir, "count", len(applied))
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
