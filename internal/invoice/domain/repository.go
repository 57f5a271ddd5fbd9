package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListQuery is the repository-level shape of an invoice listing.
type ListQuery struct {
	Status     InvoiceStatus
	CustomerID snowflake.ID
	AfterID    snowflake.ID
	Limit      int
}

// Repository persists invoices and their items.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice, items []InvoiceItem) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// ReplaceItems swaps an invoice's lines wholesale.
	ReplaceItems(ctx context.Context, db *gorm.DB, invoice *Invoice, items []InvoiceItem) error
	FindByID(ctx context.Context, db *gorm.DB, storeID, invoiceID snowflake.ID) (*Invoice, error)
	FindByPublicToken(ctx context.Context, db *gorm.DB, token string) (*Invoice, error)
	ListItems(ctx context.Context, db *gorm.DB, storeID, invoiceID snowflake.ID) ([]InvoiceItem, error)
	List(ctx context.Context, db *gorm.DB, storeID snowflake.ID, q ListQuery) ([]*Invoice, error)
	Delete(ctx context.Context, db *gorm.DB, storeID, invoiceID snowflake.ID) error
	// NextSequence reserves the next per-store invoice sequence number.
	NextSequence(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (int64, error)
}
