// Package domain contains persistence models for invoices.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	InvoiceStatusSent  InvoiceStatus = "SENT"
	InvoiceStatusPaid  InvoiceStatus = "PAID"
	InvoiceStatusVoid  InvoiceStatus = "VOID"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// Invoice is a store-scoped invoice. The totals columns are a snapshot taken
// when the invoice was last written; rendering always recomputes them from
// the items so a stale snapshot can never reach a customer.
type Invoice struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id,string"`
	StoreID    snowflake.ID `gorm:"not null;index" json:"store_id,string"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id,string"`

	Number   string        `gorm:"type:text;not null;index" json:"number"`
	Sequence int64         `gorm:"not null" json:"sequence"`
	Status   InvoiceStatus `gorm:"type:text;not null;default:'DRAFT'" json:"status"`
	Currency string        `gorm:"type:text;not null" json:"currency"`

	ShippingCost int64 `gorm:"not null;default:0" json:"shipping_cost"`
	Subtotal     int64 `gorm:"not null;default:0" json:"subtotal"`
	TaxAmount    int64 `gorm:"not null;default:0" json:"tax_amount"`
	Total        int64 `gorm:"not null;default:0" json:"total"`

	TaxEnabled    bool    `gorm:"not null;default:false" json:"tax_enabled"`
	TaxPercentage float64 `gorm:"not null;default:0" json:"tax_percentage"`

	TemplateID  string `gorm:"type:text" json:"template_id"`
	Note        string `gorm:"type:text" json:"note"`
	PublicToken string `gorm:"type:text;uniqueIndex" json:"public_token"`

	IssuedAt *time.Time `gorm:"" json:"issued_at,omitempty"`
	DueAt    *time.Time `gorm:"" json:"due_at,omitempty"`
	PaidAt   *time.Time `gorm:"" json:"paid_at,omitempty"`

	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is a single line on an invoice. Standard lines price by
// quantity and unit price; buyback lines price by gram weight and rate.
type InvoiceItem struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	StoreID   snowflake.ID `gorm:"not null;index" json:"store_id,string"`
	InvoiceID snowflake.ID `gorm:"not null;index" json:"invoice_id,string"`

	Description string  `gorm:"type:text;not null" json:"description"`
	Quantity    int64   `gorm:"not null;default:0" json:"quantity"`
	UnitPrice   int64   `gorm:"not null;default:0" json:"unit_price"`
	Buyback     bool    `gorm:"not null;default:false" json:"buyback"`
	Gram        float64 `gorm:"not null;default:0" json:"gram"`
	BuybackRate int64   `gorm:"not null;default:0" json:"buyback_rate"`
	Amount      int64   `gorm:"not null;default:0" json:"amount"`

	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }
