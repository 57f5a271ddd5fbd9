// Package pdf generates invoice PDFs. All amounts arrive pre-formatted; the
// generator lays out, it never computes.
package pdf

import (
	"context"
	"io"
)

// InvoiceData is a fully derived invoice ready for layout.
type InvoiceData struct {
	StoreName     string
	StoreAddress  string
	StoreContact  string
	PaymentMethod string
	AdminName     string
	AdminTitle    string

	InvoiceNumber string
	Status        string
	IssueDate     string
	DueDate       string
	Note          string

	BillToName    string
	BillToAddress string

	Items []InvoiceItem

	Subtotal string
	Shipping string
	ShowTax  bool
	TaxLabel string
	Tax      string
	Total    string
}

// InvoiceItem is one laid-out invoice line.
type InvoiceItem struct {
	Description string
	Qty         string
	UnitPrice   string
	Amount      string
}

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	return nil, nil
}
