package migration

import (
	authdomain "github.com/paperledger/paperledger/internal/auth/domain"
	"github.com/paperledger/paperledger/internal/config"
	customerdomain "github.com/paperledger/paperledger/internal/customer/domain"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
	revenuedomain "github.com/paperledger/paperledger/internal/revenue/domain"
	"github.com/paperledger/paperledger/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Versioned SQL only targets postgres; other dialects are
			// dev/test setups where the model schema is authoritative.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&customerdomain.Customer{},
				&invoicedomain.Invoice{},
				&revenuedomain.Revenue{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
