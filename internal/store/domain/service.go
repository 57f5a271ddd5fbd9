package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrInvalidStore      = errors.New("store: invalid store id")
	ErrInvalidName       = errors.New("store: name is required")
	ErrInvalidBrandColor = errors.New("store: brand color must be a #rrggbb hex value")
	ErrInvalidCurrency   = errors.New("store: unsupported currency code")
	ErrNotFound          = errors.New("store: settings not found")
	ErrStoreInactive     = errors.New("store: store is deactivated")
)

// UpdateSettingsRequest carries a full settings write. Absent optional fields
// clear their stored value; the handler layer merges partial updates before
// calling the service.
type UpdateSettingsRequest struct {
	Name             string `json:"name"`
	LogoURL          string `json:"logo_url"`
	Address          string `json:"address"`
	WhatsApp         string `json:"whatsapp"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Website          string `json:"website"`
	BrandColor       string `json:"brand_color"`
	AdminName        string `json:"admin_name"`
	AdminTitle       string `json:"admin_title"`
	SignatureURL     string `json:"signature_url"`
	PaymentMethod    string `json:"payment_method"`
	Tagline          string `json:"tagline"`
	StoreNumber      string `json:"store_number"`
	StoreDescription string `json:"store_description"`

	InvoiceNumberTemplate string `json:"invoice_number_template"`
	Currency              string `json:"currency"`
}

// Service manages a store's settings profile.
type Service interface {
	// Settings returns the store's profile, creating a default one on first
	// read so callers never deal with a missing profile.
	Settings(ctx context.Context, storeID snowflake.ID) (*StoreSettings, error)
	UpdateSettings(ctx context.Context, storeID snowflake.ID, req UpdateSettingsRequest) (*StoreSettings, error)
	SetActive(ctx context.Context, storeID snowflake.ID, active bool) (*StoreSettings, error)
	ListStores(ctx context.Context) ([]StoreSettings, error)
}
