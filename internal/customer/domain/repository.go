package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListQuery is the repository-level shape of a customer listing.
type ListQuery struct {
	Search  string
	Status  CustomerStatus
	AfterID snowflake.ID
	Limit   int
}

// Repository persists customers.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, storeID, customerID snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, storeID snowflake.ID, q ListQuery) ([]*Customer, error)
	Delete(ctx context.Context, db *gorm.DB, storeID, customerID snowflake.ID) error
	CountInvoices(ctx context.Context, db *gorm.DB, storeID, customerID snowflake.ID) (int64, error)
}
