package migration

import (
	"github.com/orcaflow/orcaflow/internal/config"
	"github.com/orcaflow/orcaflow/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := RunMigrations(conn); err != nil {
			return err
		}

		if cfg.SeedSampleData {
			return seed.EnsureSampleCompanies(conn)
		}
		return nil
	}),
)
