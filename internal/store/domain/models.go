// Package domain contains persistence models for store profiles.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// StoreSettings is the full profile a store exposes on its invoices. Every
// presentation field is optional; templates render blanks for missing values.
type StoreSettings struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id,string"`
	StoreID snowflake.ID `gorm:"not null;uniqueIndex" json:"store_id,string"`

	Name             string `gorm:"type:text;not null" json:"name"`
	LogoURL          string `gorm:"type:text" json:"logo_url"`
	Address          string `gorm:"type:text" json:"address"`
	WhatsApp         string `gorm:"type:text" json:"whatsapp"`
	Email            string `gorm:"type:text" json:"email"`
	Phone            string `gorm:"type:text" json:"phone"`
	Website          string `gorm:"type:text" json:"website"`
	BrandColor       string `gorm:"type:text" json:"brand_color"`
	AdminName        string `gorm:"type:text" json:"admin_name"`
	AdminTitle       string `gorm:"type:text" json:"admin_title"`
	SignatureURL     string `gorm:"type:text" json:"signature_url"`
	PaymentMethod    string `gorm:"type:text" json:"payment_method"`
	Tagline          string `gorm:"type:text" json:"tagline"`
	StoreNumber      string `gorm:"type:text" json:"store_number"`
	StoreDescription string `gorm:"type:text" json:"store_description"`

	InvoiceNumberTemplate string `gorm:"type:text" json:"invoice_number_template"`
	Currency              string `gorm:"type:text" json:"currency"`

	IsActive bool              `gorm:"not null;default:true" json:"is_active"`
	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (StoreSettings) TableName() string { return "store_settings" }
