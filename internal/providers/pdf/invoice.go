package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, invoice.StoreName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
		}),
		text.NewCol(4, "INVOICE", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)
	m.AddRow(12,
		col.New(8).Add(
			text.New(invoice.StoreAddress, props.Text{Size: 9}),
			text.New(invoice.StoreContact, props.Text{Size: 9, Top: 4}),
		),
		col.New(4).Add(
			text.New(invoice.InvoiceNumber, props.Text{Size: 10, Align: align.Right}),
			text.New(invoice.Status, props.Text{Size: 9, Top: 5, Align: align.Right}),
		),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(invoice.BillToName, props.Text{Size: 10, Top: 5}),
			text.New(invoice.BillToAddress, props.Text{Size: 9, Top: 10}),
		),
		col.New(6).Add(
			text.New("Date of issue: "+invoice.IssueDate, props.Text{Size: 9, Align: align.Right}),
			text.New("Date due: "+invoice.DueDate, props.Text{Size: 9, Top: 5, Align: align.Right}),
		),
	)

	// Table header
	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range invoice.Items {
		m.AddRow(10,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, item.Qty, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, invoice.Subtotal, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Shipping", props.Text{Size: 9}),
		text.NewCol(2, invoice.Shipping, props.Text{Size: 9, Align: align.Right}),
	)
	if invoice.ShowTax {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, invoice.TaxLabel, props.Text{Size: 9}),
			text.NewCol(2, invoice.Tax, props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, invoice.Total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if invoice.PaymentMethod != "" {
		m.AddRow(14,
			text.NewCol(12, "Payment: "+invoice.PaymentMethod, props.Text{Size: 9, Top: 4}),
		)
	}
	if invoice.Note != "" {
		m.AddRow(14,
			text.NewCol(12, invoice.Note, props.Text{Size: 9, Top: 2}),
		)
	}
	if invoice.AdminName != "" {
		signer := invoice.AdminName
		if invoice.AdminTitle != "" {
			signer += ", " + invoice.AdminTitle
		}
		m.AddRow(16,
			col.New(8),
			text.NewCol(4, signer, props.Text{Size: 9, Top: 10, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
