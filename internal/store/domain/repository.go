package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository persists store settings. Implementations receive the DB handle
// per call so services can run them inside transactions.
type Repository interface {
	FindByStoreID(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*StoreSettings, error)
	Insert(ctx context.Context, db *gorm.DB, settings *StoreSettings) error
	Update(ctx context.Context, db *gorm.DB, settings *StoreSettings) error
	List(ctx context.Context, db *gorm.DB) ([]StoreSettings, error)
}
