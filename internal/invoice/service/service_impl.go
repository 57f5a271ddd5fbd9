package service

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	"github.com/Candratama/invow-sub000/internal/invoice/calc"
	invoicedomain "github.com/Candratama/invow-sub000/internal/invoice/domain"
	"github.com/Candratama/invow-sub000/internal/invoice/format"
	"github.com/Candratama/invow-sub000/internal/invoice/render"
	"github.com/Candratama/invow-sub000/internal/observability/metrics"
	"github.com/Candratama/invow-sub000/internal/providers/pdf"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	"github.com/Candratama/invow-sub000/internal/storectx"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
	"github.com/Candratama/invow-sub000/pkg/db/pagination"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Repo         invoicedomain.Repository
	CustomerRepo customerdomain.Repository
	StoreSvc     storedomain.Service
	TaxSvc       taxdomain.Service
	TierResolver subscriptiondomain.TierResolver
	PDF          pdf.Provider
	Metrics      *metrics.HTTPMetrics
	Node         *snowflake.Node
	Log          *zap.Logger
}

type Service struct {
	db           *gorm.DB
	repo         invoicedomain.Repository
	customerRepo customerdomain.Repository
	storeSvc     storedomain.Service
	taxSvc       taxdomain.Service
	tierResolver subscriptiondomain.TierResolver
	pdf          pdf.Provider
	metrics      *metrics.HTTPMetrics
	node         *snowflake.Node
	log          *zap.Logger
	now          func() time.Time
}

func New(p Params) invoicedomain.Service {
	return &Service{
		db:           p.DB,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		storeSvc:     p.StoreSvc,
		taxSvc:       p.TaxSvc,
		tierResolver: p.TierResolver,
		pdf:          p.PDF,
		metrics:      p.Metrics,
		node:         p.Node,
		log:          p.Log.Named("invoice.service"),
		now:          time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateRequest) (*invoicedomain.InvoiceResponse, error) {
	storeID, ok := storectx.StoreIDFromContext(ctx)
	if !ok || storeID == 0 {
		return nil, invoicedomain.ErrInvalidStore
	}

	settings, err := s.storeSvc.Settings(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !settings.IsActive {
		return nil, invoicedomain.ErrStoreInactive
	}

	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return nil, invoicedomain.ErrInvalidCustomer
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, storeID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, invoicedomain.ErrInvalidCustomer
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = settings.Currency
	}
	if !format.SupportedCurrency(currency) {
		return nil, invoicedomain.ErrInvalidCurrency
	}

	items, subtotal, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	// Tax is snapshotted at write time so later preference changes never
	// reprice an existing invoice.
	pref, err := s.taxSvc.Preference(ctx, storeID)
	if err != nil {
		return nil, err
	}
	totals := calc.Calculate(subtotal, req.ShippingCost, pref.Enabled, pref.Percentage)

	seq, err := s.repo.NextSequence(ctx, s.db, storeID)
	if err != nil {
		return nil, err
	}
	numberTemplate := settings.InvoiceNumberTemplate
	if numberTemplate == "" {
		numberTemplate = format.DefaultInvoiceNumberTemplate
	}
	now := s.now().UTC()
	issuedAt := req.IssuedAt
	if issuedAt == nil {
		issuedAt = &now
	}
	number, err := format.FormatInvoiceNumber(numberTemplate, *issuedAt, seq)
	if err != nil {
		return nil, err
	}

	invoice := &invoicedomain.Invoice{
		ID:            s.node.Generate(),
		StoreID:       storeID,
		CustomerID:    customerID,
		Number:        number,
		Sequence:      seq,
		Status:        invoicedomain.InvoiceStatusDraft,
		Currency:      currency,
		ShippingCost:  req.ShippingCost,
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		TaxEnabled:    pref.Enabled,
		TaxPercentage: pref.Percentage,
		TemplateID:    strings.TrimSpace(req.TemplateID),
		Note:          strings.TrimSpace(req.Note),
		PublicToken:   uuid.NewString(),
		IssuedAt:      issuedAt,
		DueAt:         req.DueAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.attachItems(invoice, items)

	if err := s.repo.Insert(ctx, s.db, invoice, items); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.Int64("store_id", int64(storeID)),
		zap.Int64("invoice_id", int64(invoice.ID)),
		zap.String("number", invoice.Number),
		zap.Int64("total", invoice.Total),
	)
	return &invoicedomain.InvoiceResponse{Invoice: *invoice, Items: items}, nil
}

func (s *Service) Update(ctx context.Context, id string, req invoicedomain.UpdateRequest) (*invoicedomain.InvoiceResponse, error) {
	storeID, invoice, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != invoicedomain.InvoiceStatusDraft {
		return nil, invoicedomain.ErrNotEditable
	}

	if req.CustomerID != "" {
		customerID, perr := parseID(req.CustomerID)
		if perr != nil {
			return nil, invoicedomain.ErrInvalidCustomer
		}
		customer, cerr := s.customerRepo.FindByID(ctx, s.db, storeID, customerID)
		if cerr != nil {
			return nil, cerr
		}
		if customer == nil {
			return nil, invoicedomain.ErrInvalidCustomer
		}
		invoice.CustomerID = customerID
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency != "" {
		if !format.SupportedCurrency(currency) {
			return nil, invoicedomain.ErrInvalidCurrency
		}
		invoice.Currency = currency
	}

	items, subtotal, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	totals := calc.Calculate(subtotal, req.ShippingCost, invoice.TaxEnabled, invoice.TaxPercentage)

	now := s.now().UTC()
	invoice.ShippingCost = req.ShippingCost
	invoice.Subtotal = totals.Subtotal
	invoice.TaxAmount = totals.TaxAmount
	invoice.Total = totals.Total
	if tpl := strings.TrimSpace(req.TemplateID); tpl != "" {
		invoice.TemplateID = tpl
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		invoice.Note = note
	}
	if req.IssuedAt != nil {
		invoice.IssuedAt = req.IssuedAt
	}
	if req.DueAt != nil {
		invoice.DueAt = req.DueAt
	}
	invoice.UpdatedAt = now
	s.attachItems(invoice, items)

	if err := s.repo.ReplaceItems(ctx, s.db, invoice, items); err != nil {
		return nil, err
	}
	return &invoicedomain.InvoiceResponse{Invoice: *invoice, Items: items}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*invoicedomain.InvoiceResponse, error) {
	storeID, invoice, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, s.db, storeID, invoice.ID)
	if err != nil {
		return nil, err
	}
	return &invoicedomain.InvoiceResponse{Invoice: *invoice, Items: items}, nil
}

func (s *Service) List(ctx context.Context, filter invoicedomain.ListFilter) (*invoicedomain.ListResponse, error) {
	storeID, ok := storectx.StoreIDFromContext(ctx)
	if !ok || storeID == 0 {
		return nil, invoicedomain.ErrInvalidStore
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invoicedomain.ErrInvalidStatus
	}

	limit := filter.PageSize
	if limit <= 0 {
		limit = 10
	}
	if limit > 250 {
		limit = 250
	}

	q := invoicedomain.ListQuery{
		Status: filter.Status,
		Limit:  limit + 1,
	}
	if filter.CustomerID != "" {
		customerID, err := parseID(filter.CustomerID)
		if err != nil {
			return nil, invoicedomain.ErrInvalidCustomer
		}
		q.CustomerID = customerID
	}
	if filter.PageToken != "" {
		cursor, err := pagination.DecodeCursor(filter.PageToken)
		if err == nil && cursor.ID != "" {
			if id, perr := strconv.ParseInt(cursor.ID, 10, 64); perr == nil {
				q.AfterID = snowflake.ID(id)
			}
		}
	}

	rows, err := s.repo.List(ctx, s.db, storeID, q)
	if err != nil {
		return nil, err
	}

	pageInfo := pagination.BuildCursorPageInfo(rows, int32(limit), func(inv *invoicedomain.Invoice) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(int64(inv.ID), 10)})
		return token
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	return &invoicedomain.ListResponse{Invoices: rows, PageInfo: pageInfo}, nil
}

// transitions lists the allowed status moves. PAID and VOID are terminal.
var transitions = map[invoicedomain.InvoiceStatus][]invoicedomain.InvoiceStatus{
	invoicedomain.InvoiceStatusDraft: {invoicedomain.InvoiceStatusSent, invoicedomain.InvoiceStatusVoid},
	invoicedomain.InvoiceStatusSent:  {invoicedomain.InvoiceStatusPaid, invoicedomain.InvoiceStatusVoid},
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status invoicedomain.InvoiceStatus) (*invoicedomain.InvoiceResponse, error) {
	if !status.Valid() {
		return nil, invoicedomain.ErrInvalidStatus
	}
	storeID, invoice, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range transitions[invoice.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, invoicedomain.ErrInvalidTransition
	}

	now := s.now().UTC()
	invoice.Status = status
	if status == invoicedomain.InvoiceStatusPaid {
		invoice.PaidAt = &now
	}
	invoice.UpdatedAt = now
	if err := s.repo.Update(ctx, s.db, invoice); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, s.db, storeID, invoice.ID)
	if err != nil {
		return nil, err
	}
	return &invoicedomain.InvoiceResponse{Invoice: *invoice, Items: items}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	storeID, invoice, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status != invoicedomain.InvoiceStatusDraft {
		return invoicedomain.ErrNotEditable
	}
	return s.repo.Delete(ctx, s.db, storeID, invoice.ID)
}

func (s *Service) RenderHTML(ctx context.Context, id string, opts invoicedomain.RenderOptions) (string, error) {
	storeID, invoice, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return s.render(ctx, storeID, invoice, opts)
}

func (s *Service) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	storeID, invoice, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, s.db, storeID, invoice.ID)
	if err != nil {
		return nil, err
	}
	settings, err := s.storeSvc.Settings(ctx, storeID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, storeID, invoice.CustomerID)
	if err != nil {
		return nil, err
	}

	data := buildPDFData(invoice, items, settings, customer)
	reader, err := s.pdf.GenerateInvoice(ctx, data)
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		templateID := invoice.TemplateID
		if templateID == "" {
			templateID = render.DefaultTemplateID()
		}
		s.metrics.RecordRender(templateID, "pdf")
	}
	return out, nil
}

func (s *Service) PublicHTML(ctx context.Context, token string) (string, error) {
	invoice, err := s.repo.FindByPublicToken(ctx, s.db, token)
	if err != nil {
		return "", err
	}
	if invoice == nil || invoice.Status == invoicedomain.InvoiceStatusDraft {
		// Drafts are never shared.
		return "", invoicedomain.ErrNotFound
	}
	return s.render(ctx, invoice.StoreID, invoice, invoicedomain.RenderOptions{Preview: true})
}

func (s *Service) render(ctx context.Context, storeID snowflake.ID, invoice *invoicedomain.Invoice, opts invoicedomain.RenderOptions) (string, error) {
	items, err := s.repo.ListItems(ctx, s.db, storeID, invoice.ID)
	if err != nil {
		return "", err
	}
	settings, err := s.storeSvc.Settings(ctx, storeID)
	if err != nil {
		return "", err
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, storeID, invoice.CustomerID)
	if err != nil {
		return "", err
	}
	tier, err := s.tierResolver.ResolveTier(ctx, storeID)
	if err != nil {
		// Tier trouble must never block rendering; fall back to free.
		s.log.Warn("tier resolution failed, rendering as free",
			zap.Int64("store_id", int64(storeID)),
			zap.Error(err),
		)
		tier = subscriptiondomain.TierFree
	}

	templateID := strings.TrimSpace(opts.TemplateID)
	if templateID == "" {
		templateID = invoice.TemplateID
	}

	in := render.Input{
		Invoice:       buildInvoiceView(invoice, items, customer),
		Store:         buildStoreView(settings),
		Tier:          tier,
		TaxEnabled:    invoice.TaxEnabled,
		TaxPercentage: invoice.TaxPercentage,
		Preview:       opts.Preview,
	}

	html, err := render.Render(templateID, in)
	if err != nil {
		return "", err
	}
	if s.metrics != nil {
		if templateID == "" || !render.CanAccess(templateID, tier) {
			templateID = render.DefaultTemplateID()
		}
		s.metrics.RecordRender(templateID, "html")
	}
	return html, nil
}

// load resolves the caller's store and the addressed invoice.
func (s *Service) load(ctx context.Context, id string) (snowflake.ID, *invoicedomain.Invoice, error) {
	storeID, ok := storectx.StoreIDFromContext(ctx)
	if !ok || storeID == 0 {
		return 0, nil, invoicedomain.ErrInvalidStore
	}
	invoiceID, err := parseID(id)
	if err != nil {
		return 0, nil, invoicedomain.ErrInvalidID
	}
	invoice, err := s.repo.FindByID(ctx, s.db, storeID, invoiceID)
	if err != nil {
		return 0, nil, err
	}
	if invoice == nil {
		return 0, nil, invoicedomain.ErrNotFound
	}
	return storeID, invoice, nil
}

func buildItems(inputs []invoicedomain.ItemInput) ([]invoicedomain.InvoiceItem, int64, error) {
	if len(inputs) == 0 {
		return nil, 0, invoicedomain.ErrNoItems
	}

	items := make([]invoicedomain.InvoiceItem, 0, len(inputs))
	var subtotal int64
	for i, in := range inputs {
		description := strings.TrimSpace(in.Description)
		if description == "" {
			return nil, 0, invoicedomain.ErrInvalidItem
		}
		if in.Buyback {
			if in.Gram <= 0 || in.BuybackRate <= 0 || math.IsNaN(in.Gram) || math.IsInf(in.Gram, 0) {
				return nil, 0, invoicedomain.ErrInvalidItem
			}
		} else if in.Quantity <= 0 || in.UnitPrice < 0 {
			return nil, 0, invoicedomain.ErrInvalidItem
		}

		amount := calc.ItemSubtotal(calc.Item{
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Buyback:     in.Buyback,
			Gram:        in.Gram,
			BuybackRate: in.BuybackRate,
		})
		subtotal += amount
		items = append(items, invoicedomain.InvoiceItem{
			Description: description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Buyback:     in.Buyback,
			Gram:        in.Gram,
			BuybackRate: in.BuybackRate,
			Amount:      amount,
			Position:    i,
		})
	}
	return items, subtotal, nil
}

func (s *Service) attachItems(invoice *invoicedomain.Invoice, items []invoicedomain.InvoiceItem) {
	for i := range items {
		items[i].ID = s.node.Generate()
		items[i].StoreID = invoice.StoreID
		items[i].InvoiceID = invoice.ID
		items[i].CreatedAt = invoice.UpdatedAt
	}
}

func buildInvoiceView(invoice *invoicedomain.Invoice, items []invoicedomain.InvoiceItem, customer *customerdomain.Customer) render.InvoiceView {
	view := render.InvoiceView{
		Number:   invoice.Number,
		Status:   string(invoice.Status),
		IssuedAt: invoice.IssuedAt,
		DueAt:    invoice.DueAt,
		Note:     invoice.Note,
		Currency: invoice.Currency,
		Shipping: invoice.ShippingCost,
	}
	if customer != nil {
		view.Customer = render.CustomerView{
			Name:    customer.Name,
			Address: customer.Address,
			Status:  string(customer.Status),
		}
	}
	for _, item := range items {
		view.Items = append(view.Items, render.LineItemView{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Buyback:     item.Buyback,
			Gram:        item.Gram,
			BuybackRate: item.BuybackRate,
		})
	}
	return view
}

func buildStoreView(settings *storedomain.StoreSettings) *render.StoreView {
	if settings == nil {
		return nil
	}
	return &render.StoreView{
		Name:             settings.Name,
		LogoURL:          settings.LogoURL,
		Address:          settings.Address,
		WhatsApp:         settings.WhatsApp,
		Email:            settings.Email,
		Phone:            settings.Phone,
		Website:          settings.Website,
		BrandColor:       settings.BrandColor,
		AdminName:        settings.AdminName,
		AdminTitle:       settings.AdminTitle,
		SignatureURL:     settings.SignatureURL,
		PaymentMethod:    settings.PaymentMethod,
		Tagline:          settings.Tagline,
		StoreNumber:      settings.StoreNumber,
		StoreDescription: settings.StoreDescription,
	}
}

func buildPDFData(invoice *invoicedomain.Invoice, items []invoicedomain.InvoiceItem, settings *storedomain.StoreSettings, customer *customerdomain.Customer) pdf.InvoiceData {
	currency := invoice.Currency

	// PDF amounts are derived the same way HTML rendering derives them.
	calcItems := make([]calc.Item, 0, len(items))
	rows := make([]pdf.InvoiceItem, 0, len(items))
	for _, item := range items {
		ci := calc.Item{
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Buyback:     item.Buyback,
			Gram:        item.Gram,
			BuybackRate: item.BuybackRate,
		}
		calcItems = append(calcItems, ci)

		qty := strconv.FormatInt(item.Quantity, 10)
		unit := format.FormatMoney(item.UnitPrice, currency).String()
		if item.Buyback {
			qty = strconv.FormatFloat(item.Gram, 'f', -1, 64) + " g"
			unit = format.FormatMoney(item.BuybackRate, currency).String() + "/g"
		}
		rows = append(rows, pdf.InvoiceItem{
			Description: item.Description,
			Qty:         qty,
			UnitPrice:   unit,
			Amount:      format.FormatMoney(calc.ItemSubtotal(ci), currency).String(),
		})
	}
	totals := calc.Calculate(calc.SumItems(calcItems), invoice.ShippingCost, invoice.TaxEnabled, invoice.TaxPercentage)

	data := pdf.InvoiceData{
		InvoiceNumber: invoice.Number,
		Status:        string(invoice.Status),
		IssueDate:     formatPDFDate(invoice.IssuedAt),
		DueDate:       formatPDFDate(invoice.DueAt),
		Note:          invoice.Note,
		Items:         rows,
		Subtotal:      format.FormatMoney(totals.Subtotal, currency).String(),
		Shipping:      format.FormatMoney(totals.ShippingCost, currency).String(),
		ShowTax:       invoice.TaxEnabled && invoice.TaxPercentage > 0,
		TaxLabel:      "Tax",
		Tax:           format.FormatMoney(totals.TaxAmount, currency).String(),
		Total:         format.FormatMoney(totals.Total, currency).String(),
	}
	if settings != nil {
		data.StoreName = settings.Name
		data.StoreAddress = settings.Address
		data.StoreContact = strings.TrimSpace(strings.Join(nonEmpty(settings.WhatsApp, settings.Email, settings.Phone), " · "))
		data.PaymentMethod = settings.PaymentMethod
		data.AdminName = settings.AdminName
		data.AdminTitle = settings.AdminTitle
	}
	if customer != nil {
		data.BillToName = customer.Name
		data.BillToAddress = customer.Address
	}
	return data
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func formatPDFDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}
	return value.UTC().Format("02 Jan 2006")
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, invoicedomain.ErrInvalidID
	}
	return id, nil
}
