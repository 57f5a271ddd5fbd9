// Package seed bootstraps demo data for local development so the API is
// explorable right after first start.
package seed

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
)

// DemoStoreID is the store the seeded demo data belongs to.
const DemoStoreID snowflake.ID = 1

// EnsureDemoStore seeds a demo store profile, tax preference and customer.
// Existing rows are left untouched so the seed is safe to run on every start.
func EnsureDemoStore(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var settings storedomain.StoreSettings
		err := tx.Where("store_id = ?", DemoStoreID).First(&settings).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		settings = storedomain.StoreSettings{
			ID:            node.Generate(),
			StoreID:       DemoStoreID,
			Name:          "Demo Gold Store",
			Address:       "Jl. Malioboro No. 1, Yogyakarta",
			WhatsApp:      "+62 812 0000 0000",
			BrandColor:    "#1e3a5f",
			AdminName:     "Demo Admin",
			AdminTitle:    "Owner",
			PaymentMethod: "Bank transfer BCA 1234567890",
			Currency:      "IDR",
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}

		pref := taxdomain.Preference{
			ID:         node.Generate(),
			StoreID:    DemoStoreID,
			Enabled:    true,
			Percentage: 11,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Create(&pref).Error; err != nil {
			return err
		}

		customer := customerdomain.Customer{
			ID:        node.Generate(),
			StoreID:   DemoStoreID,
			Name:      "Budi Santoso",
			Address:   "Jl. Kaliurang KM 5, Sleman",
			Phone:     "+62 813 1111 1111",
			Status:    customerdomain.CustomerStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return tx.Create(&customer).Error
	})
}
