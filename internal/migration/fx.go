package migration

import (
	"github.com/tripveda/tripveda/internal/config"
	"github.com/tripveda/tripveda/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		// The embedded migrations are written for postgres. Other
		// dialects are used for local experiments and tests only.
		if cfg.DBType != "postgres" {
			log.Warn("skipping migrations for non-postgres database",
				zap.String("db_type", cfg.DBType))
			return nil
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}

		if cfg.SeedSampleData {
			return seed.EnsureSampleCatalog(conn)
		}
		return nil
	}),
)
