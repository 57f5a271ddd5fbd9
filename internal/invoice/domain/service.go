package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Candratama/invow-sub000/pkg/db/pagination"
)

var (
	ErrInvalidStore      = errors.New("invoice: invalid store id")
	ErrInvalidID         = errors.New("invoice: invalid invoice id")
	ErrInvalidCustomer   = errors.New("invoice: customer not found")
	ErrInvalidCurrency   = errors.New("invoice: unsupported currency code")
	ErrNoItems           = errors.New("invoice: at least one item is required")
	ErrInvalidItem       = errors.New("invoice: item has invalid quantity, price or weight")
	ErrNotFound          = errors.New("invoice: not found")
	ErrNotEditable       = errors.New("invoice: only drafts can be edited")
	ErrInvalidStatus     = errors.New("invoice: unknown status")
	ErrInvalidTransition = errors.New("invoice: status transition not allowed")
	ErrStoreInactive     = errors.New("invoice: store is deactivated")
)

// ItemInput is one line of a create or update request.
type ItemInput struct {
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   int64   `json:"unit_price"`
	Buyback     bool    `json:"buyback"`
	Gram        float64 `json:"gram"`
	BuybackRate int64   `json:"buyback_rate"`
}

type CreateRequest struct {
	CustomerID   string      `json:"customer_id"`
	Currency     string      `json:"currency"`
	ShippingCost int64       `json:"shipping_cost"`
	TemplateID   string      `json:"template_id"`
	Note         string      `json:"note"`
	IssuedAt     *time.Time  `json:"issued_at"`
	DueAt        *time.Time  `json:"due_at"`
	Items        []ItemInput `json:"items"`
}

// UpdateRequest rewrites a draft invoice. Items and ShippingCost are always
// replaced; the optional fields (CustomerID, Currency, TemplateID, Note,
// IssuedAt, DueAt) keep their stored values when omitted.
type UpdateRequest struct {
	CustomerID   string      `json:"customer_id"`
	Currency     string      `json:"currency"`
	ShippingCost int64       `json:"shipping_cost"`
	TemplateID   string      `json:"template_id"`
	Note         string      `json:"note"`
	IssuedAt     *time.Time  `json:"issued_at"`
	DueAt        *time.Time  `json:"due_at"`
	Items        []ItemInput `json:"items"`
}

// ListFilter narrows an invoice listing.
type ListFilter struct {
	pagination.Pagination
	Status     InvoiceStatus `form:"status"`
	CustomerID string        `form:"customer_id"`
}

// InvoiceResponse is an invoice with its items.
type InvoiceResponse struct {
	Invoice
	Items []InvoiceItem `json:"items"`
}

type ListResponse struct {
	Invoices []*Invoice           `json:"invoices"`
	PageInfo *pagination.PageInfo `json:"page_info"`
}

// RenderOptions selects how an invoice is rendered. An empty TemplateID uses
// the invoice's saved template.
type RenderOptions struct {
	TemplateID string
	Preview    bool
}

// Service manages invoices and their presentation.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*InvoiceResponse, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*InvoiceResponse, error)
	Get(ctx context.Context, id string) (*InvoiceResponse, error)
	List(ctx context.Context, filter ListFilter) (*ListResponse, error)
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus) (*InvoiceResponse, error)
	Delete(ctx context.Context, id string) error

	// RenderHTML produces the invoice document through the store's template,
	// recomputing all amounts from the items.
	RenderHTML(ctx context.Context, id string, opts RenderOptions) (string, error)

	// ExportPDF produces the invoice as a PDF using the same derivation
	// rules as HTML rendering.
	ExportPDF(ctx context.Context, id string) ([]byte, error)

	// PublicHTML renders an invoice addressed by its share token, without
	// authentication. The rendered document is never a preview.
	PublicHTML(ctx context.Context, token string) (string, error)
}
