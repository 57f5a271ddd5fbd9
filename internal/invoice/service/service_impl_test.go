package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	"github.com/Candratama/invow-sub000/internal/config"
	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	customerrepo "github.com/Candratama/invow-sub000/internal/customer/repository"
	invoicedomain "github.com/Candratama/invow-sub000/internal/invoice/domain"
	invoicerepo "github.com/Candratama/invow-sub000/internal/invoice/repository"
	"github.com/Candratama/invow-sub000/internal/providers/pdf"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	storerepo "github.com/Candratama/invow-sub000/internal/store/repository"
	storeservice "github.com/Candratama/invow-sub000/internal/store/service"
	"github.com/Candratama/invow-sub000/internal/storectx"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
	taxrepo "github.com/Candratama/invow-sub000/internal/tax/repository"
	taxservice "github.com/Candratama/invow-sub000/internal/tax/service"
)

type stubTierResolver struct {
	tier subscriptiondomain.Tier
}

func (s stubTierResolver) ResolveTier(context.Context, snowflake.ID) (subscriptiondomain.Tier, error) {
	return s.tier, nil
}

type stubPDFProvider struct {
	lastData pdf.InvoiceData
}

func (s *stubPDFProvider) GenerateInvoice(ctx context.Context, data pdf.InvoiceData) (io.Reader, error) {
	s.lastData = data
	return bytes.NewReader([]byte("%PDF-1.7 stub")), nil
}

type fixture struct {
	svc      *Service
	db       *gorm.DB
	pdf      *stubPDFProvider
	storeID  snowflake.ID
	customer *customerdomain.Customer
	ctx      context.Context
}

func newFixture(t *testing.T, tier subscriptiondomain.Tier) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
		&customerdomain.Customer{},
		&storedomain.StoreSettings{},
		&taxdomain.Preference{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	noop := cache.NewNoopStore()
	log := zap.NewNop()
	cfg := config.Config{DefaultCurrency: "IDR"}

	storeSvc := storeservice.New(storeservice.Params{
		DB: db, Repo: storerepo.Provide(), Cache: noop, Node: node, Cfg: cfg, Log: log,
	})
	taxSvc := taxservice.New(taxservice.Params{
		DB: db, Repo: taxrepo.Provide(), Cache: noop, Node: node,
	})

	pdfStub := &stubPDFProvider{}
	svc := New(Params{
		DB:           db,
		Repo:         invoicerepo.Provide(),
		CustomerRepo: customerrepo.Provide(),
		StoreSvc:     storeSvc,
		TaxSvc:       taxSvc,
		TierResolver: stubTierResolver{tier: tier},
		PDF:          pdfStub,
		Node:         node,
		Log:          log,
	}).(*Service)

	storeID := snowflake.ID(77)
	ctx := storectx.WithStoreID(context.Background(), storeID)

	customer := &customerdomain.Customer{
		ID:      node.Generate(),
		StoreID: storeID,
		Name:    "Budi Santoso",
		Address: "Jl. Melati 12",
		Status:  customerdomain.CustomerStatusActive,
	}
	require.NoError(t, db.Create(customer).Error)

	return &fixture{svc: svc, db: db, pdf: pdfStub, storeID: storeID, customer: customer, ctx: ctx}
}

func (f *fixture) enableTax(t *testing.T, pct float64) {
	t.Helper()
	_, err := f.svc.taxSvc.UpdatePreference(f.ctx, f.storeID, taxdomain.UpdatePreferenceRequest{
		Enabled:    true,
		Percentage: &pct,
	})
	require.NoError(t, err)
}

func (f *fixture) createInvoice(t *testing.T, items ...invoicedomain.ItemInput) *invoicedomain.InvoiceResponse {
	t.Helper()
	if len(items) == 0 {
		items = []invoicedomain.ItemInput{{Description: "Gold ring", Quantity: 1, UnitPrice: 100}}
	}
	resp, err := f.svc.Create(f.ctx, invoicedomain.CreateRequest{
		CustomerID:   f.customer.ID.String(),
		ShippingCost: 10,
		Items:        items,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateInvoiceComputesTotalsAndSnapshotsTax(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	f.enableTax(t, 10)

	resp := f.createInvoice(t)

	assert.Equal(t, int64(100), resp.Subtotal)
	assert.Equal(t, int64(10), resp.TaxAmount)
	assert.Equal(t, int64(120), resp.Total)
	assert.True(t, resp.TaxEnabled)
	assert.Equal(t, float64(10), resp.TaxPercentage)
	assert.Equal(t, invoicedomain.InvoiceStatusDraft, resp.Status)
	assert.NotEmpty(t, resp.PublicToken)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(100), resp.Items[0].Amount)

	// Number follows the default template with a 4-wide sequence.
	assert.True(t, strings.HasPrefix(resp.Number, "INV-"))
	assert.True(t, strings.HasSuffix(resp.Number, "-0001"))

	second := f.createInvoice(t)
	assert.True(t, strings.HasSuffix(second.Number, "-0002"))
}

func TestCreateInvoiceTaxDisabledByDefault(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)

	resp := f.createInvoice(t)
	assert.False(t, resp.TaxEnabled)
	assert.Equal(t, int64(0), resp.TaxAmount)
	assert.Equal(t, int64(110), resp.Total)
}

func TestCreateInvoiceBuybackItems(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)

	resp := f.createInvoice(t,
		invoicedomain.ItemInput{Description: "Buyback necklace", Buyback: true, Gram: 3.5, BuybackRate: 980000},
	)
	// round(3.5 * 980000) = 3430000
	assert.Equal(t, int64(3430000), resp.Subtotal)
}

func TestCreateInvoiceValidation(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)

	_, err := f.svc.Create(f.ctx, invoicedomain.CreateRequest{CustomerID: "9999", Items: []invoicedomain.ItemInput{{Description: "x", Quantity: 1, UnitPrice: 1}}})
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidCustomer)

	_, err = f.svc.Create(f.ctx, invoicedomain.CreateRequest{CustomerID: f.customer.ID.String()})
	assert.ErrorIs(t, err, invoicedomain.ErrNoItems)

	_, err = f.svc.Create(f.ctx, invoicedomain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items:      []invoicedomain.ItemInput{{Description: "x", Quantity: 0, UnitPrice: 5}},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidItem)

	_, err = f.svc.Create(f.ctx, invoicedomain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Currency:   "XXX",
		Items:      []invoicedomain.ItemInput{{Description: "x", Quantity: 1, UnitPrice: 5}},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidCurrency)

	_, err = f.svc.Create(context.Background(), invoicedomain.CreateRequest{})
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidStore)
}

func TestUpdateInvoiceOnlyDrafts(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	resp := f.createInvoice(t)

	updated, err := f.svc.Update(f.ctx, resp.ID.String(), invoicedomain.UpdateRequest{
		ShippingCost: 25,
		Items:        []invoicedomain.ItemInput{{Description: "Bigger ring", Quantity: 2, UnitPrice: 300}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(600), updated.Subtotal)
	assert.Equal(t, int64(625), updated.Total)

	_, err = f.svc.UpdateStatus(f.ctx, resp.ID.String(), invoicedomain.InvoiceStatusSent)
	require.NoError(t, err)

	_, err = f.svc.Update(f.ctx, resp.ID.String(), invoicedomain.UpdateRequest{
		Items: []invoicedomain.ItemInput{{Description: "x", Quantity: 1, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrNotEditable)
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	resp := f.createInvoice(t)
	id := resp.ID.String()

	// DRAFT cannot jump straight to PAID.
	_, err := f.svc.UpdateStatus(f.ctx, id, invoicedomain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidTransition)

	sent, err := f.svc.UpdateStatus(f.ctx, id, invoicedomain.InvoiceStatusSent)
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.InvoiceStatusSent, sent.Status)

	paid, err := f.svc.UpdateStatus(f.ctx, id, invoicedomain.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, invoicedomain.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// PAID is terminal.
	_, err = f.svc.UpdateStatus(f.ctx, id, invoicedomain.InvoiceStatusVoid)
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidTransition)

	_, err = f.svc.UpdateStatus(f.ctx, id, invoicedomain.InvoiceStatus("BOGUS"))
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidStatus)
}

func TestDeleteInvoiceOnlyDrafts(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	draft := f.createInvoice(t)
	require.NoError(t, f.svc.Delete(f.ctx, draft.ID.String()))

	_, err := f.svc.Get(f.ctx, draft.ID.String())
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	sent := f.createInvoice(t)
	_, err = f.svc.UpdateStatus(f.ctx, sent.ID.String(), invoicedomain.InvoiceStatusSent)
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.Delete(f.ctx, sent.ID.String()), invoicedomain.ErrNotEditable)
}

func TestListInvoicesCursorPagination(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	for i := 0; i < 5; i++ {
		f.createInvoice(t)
	}

	filter := invoicedomain.ListFilter{}
	filter.PageSize = 2
	page1, err := f.svc.List(f.ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page1.Invoices, 2)
	assert.True(t, page1.PageInfo.HasMore)
	require.NotEmpty(t, page1.PageInfo.NextPageToken)

	filter.PageToken = page1.PageInfo.NextPageToken
	page2, err := f.svc.List(f.ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page2.Invoices, 2)
	assert.NotEqual(t, page1.Invoices[0].ID, page2.Invoices[0].ID)

	filter.PageToken = page2.PageInfo.NextPageToken
	page3, err := f.svc.List(f.ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page3.Invoices, 1)
	assert.False(t, page3.PageInfo.HasMore)
}

func TestListInvoicesScopedToStore(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	f.createInvoice(t)

	otherCtx := storectx.WithStoreID(context.Background(), snowflake.ID(88))
	resp, err := f.svc.List(otherCtx, invoicedomain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, resp.Invoices)
}

func TestRenderHTMLRecomputesFromItems(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	f.enableTax(t, 10)
	resp := f.createInvoice(t)

	// Corrupt the stored snapshot; rendering must not trust it.
	require.NoError(t, f.db.Model(&invoicedomain.Invoice{}).
		Where("id = ?", resp.ID).
		Updates(map[string]any{"subtotal": 999999, "total": 999999}).Error)

	html, err := f.svc.RenderHTML(f.ctx, resp.ID.String(), invoicedomain.RenderOptions{Preview: true})
	require.NoError(t, err)
	assert.Contains(t, html, `id="invoice-capture-root"`)
	assert.Contains(t, html, "Rp100")
	assert.Contains(t, html, "Rp120")
	assert.NotContains(t, html, "999")
	assert.Contains(t, html, resp.Number)
	assert.Contains(t, html, "Budi Santoso")
}

func TestRenderHTMLOffscreenWhenNotPreview(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	resp := f.createInvoice(t)

	html, err := f.svc.RenderHTML(f.ctx, resp.ID.String(), invoicedomain.RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, html, "position:absolute;left:-9999px;top:0;")
}

func TestPublicHTMLExcludesDrafts(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	resp := f.createInvoice(t)

	_, err := f.svc.PublicHTML(context.Background(), resp.PublicToken)
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	_, err = f.svc.UpdateStatus(f.ctx, resp.ID.String(), invoicedomain.InvoiceStatusSent)
	require.NoError(t, err)

	html, err := f.svc.PublicHTML(context.Background(), resp.PublicToken)
	require.NoError(t, err)
	assert.Contains(t, html, resp.Number)

	_, err = f.svc.PublicHTML(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)
}

func TestExportPDFUsesRecomputedTotals(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	f.enableTax(t, 10)
	resp := f.createInvoice(t)

	out, err := f.svc.ExportPDF(f.ctx, resp.ID.String())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	data := f.pdf.lastData
	assert.Equal(t, resp.Number, data.InvoiceNumber)
	assert.Equal(t, "Budi Santoso", data.BillToName)
	assert.Equal(t, "Rp100", data.Subtotal)
	assert.Equal(t, "Rp120", data.Total)
	assert.True(t, data.ShowTax)
}

func TestCreateInvoiceInactiveStore(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	// First read creates the default profile; deactivate it.
	settings, err := f.svc.storeSvc.Settings(f.ctx, f.storeID)
	require.NoError(t, err)
	_, err = f.svc.storeSvc.SetActive(f.ctx, settings.StoreID, false)
	require.NoError(t, err)

	_, err = f.svc.Create(f.ctx, invoicedomain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items:      []invoicedomain.ItemInput{{Description: "x", Quantity: 1, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrStoreInactive)
}

func TestUpdateKeepsTaxSnapshot(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	f.enableTax(t, 10)
	resp := f.createInvoice(t)

	// Changing the preference later must not reprice the invoice.
	pct := 25.0
	_, err := f.svc.taxSvc.UpdatePreference(f.ctx, f.storeID, taxdomain.UpdatePreferenceRequest{Enabled: true, Percentage: &pct})
	require.NoError(t, err)

	updated, err := f.svc.Update(f.ctx, resp.ID.String(), invoicedomain.UpdateRequest{
		ShippingCost: 10,
		Items:        []invoicedomain.ItemInput{{Description: "Gold ring", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.TaxAmount)
	assert.Equal(t, float64(10), updated.TaxPercentage)
}

func TestUpdateKeepsOmittedOptionalFields(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)

	due := time.Now().UTC().Add(14 * 24 * time.Hour).Truncate(time.Second)
	resp, err := f.svc.Create(f.ctx, invoicedomain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		TemplateID: "simple",
		Note:       "Payment due within 14 days",
		DueAt:      &due,
		Items:      []invoicedomain.ItemInput{{Description: "Gold ring", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(f.ctx, resp.ID.String(), invoicedomain.UpdateRequest{
		ShippingCost: 10,
		Items:        []invoicedomain.ItemInput{{Description: "Silver ring", Quantity: 2, UnitPrice: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, "simple", updated.TemplateID)
	assert.Equal(t, "Payment due within 14 days", updated.Note)
	require.NotNil(t, updated.DueAt)
	assert.WithinDuration(t, due, *updated.DueAt, time.Second)
	assert.Equal(t, f.customer.ID, updated.CustomerID)

	// Explicit values still replace.
	updated, err = f.svc.Update(f.ctx, resp.ID.String(), invoicedomain.UpdateRequest{
		TemplateID: "corporate",
		Note:       "Wire transfer only",
		Items:      []invoicedomain.ItemInput{{Description: "Silver ring", Quantity: 2, UnitPrice: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, "corporate", updated.TemplateID)
	assert.Equal(t, "Wire transfer only", updated.Note)
}

func TestFixtureTimeSanity(t *testing.T) {
	f := newFixture(t, subscriptiondomain.TierFree)
	resp := f.createInvoice(t)
	require.NotNil(t, resp.IssuedAt)
	assert.WithinDuration(t, time.Now().UTC(), *resp.IssuedAt, time.Minute)
}
