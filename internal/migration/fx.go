package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/config"
	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	invoicedomain "github.com/Candratama/invow-sub000/internal/invoice/domain"
	"github.com/Candratama/invow-sub000/internal/seed"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
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
			// sqlite and mysql are development dialects; gorm derives
			// the schema from the models there.
			if err := conn.AutoMigrate(
				&storedomain.StoreSettings{},
				&taxdomain.Preference{},
				&customerdomain.Customer{},
				&invoicedomain.Invoice{},
				&invoicedomain.InvoiceItem{},
				&subscriptiondomain.Subscription{},
				&subscriptiondomain.Transaction{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoStore(conn)
		}
		return nil
	}),
)
