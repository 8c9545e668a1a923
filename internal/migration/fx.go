package migration

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stride/internal/catalog/domain"
	categorydomain "github.com/smallbiznis/stride/internal/category/domain"
	"github.com/smallbiznis/stride/internal/config"
	"github.com/smallbiznis/stride/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if strings.EqualFold(cfg.DBType, "postgres") {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// MySQL and SQLite fall back to schema sync from the models.
			if err := conn.AutoMigrate(&categorydomain.Category{}, &domain.Product{}); err != nil {
				return err
			}
		}

		if cfg.Bootstrap.SeedDemoCatalog {
			return seed.EnsureDemoCatalog(conn, node)
		}
		return nil
	}),
)
