// Package render turns invoices into HTML documents through a gallery of
// visual templates sharing one contract: same input shape, same totals
// derivation, same capture anchor for downstream rasterization, same
// tier-gating rules.
package render

import (
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Candratama/invow-sub000/internal/invoice/calc"
	"github.com/Candratama/invow-sub000/internal/invoice/format"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

// CaptureAnchorID is the well-known identifier of every template's root
// element. The external image-capture routine locates it by convention, so it
// must never change per template.
const CaptureAnchorID = "invoice-capture-root"

// DefaultBrandColor is the brand color every free-tier render uses, and the
// fallback when a premium store has not set one.
const DefaultBrandColor = "#1e3a5f"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Input is the deterministic input every template accepts.
//
// Totals are NOT part of the input: the renderer derives them through the
// calculation engine on every render, so stale amounts stored on an invoice
// can never be displayed.
type Input struct {
	Invoice       InvoiceView
	Store         *StoreView
	Tier          subscriptiondomain.Tier
	TaxEnabled    bool
	TaxPercentage float64
	Preview       bool
}

type InvoiceView struct {
	Number   string
	Status   string
	IssuedAt *time.Time
	DueAt    *time.Time
	Note     string
	Currency string
	Shipping int64
	Customer CustomerView
	Items    []LineItemView
}

type CustomerView struct {
	Name    string
	Address string
	Status  string
}

// StoreView mirrors the store profile. Every field is optional for display:
// templates render blanks, never panic.
type StoreView struct {
	Name             string
	LogoURL          string
	Address          string
	WhatsApp         string
	Email            string
	Phone            string
	Website          string
	BrandColor       string
	AdminName        string
	AdminTitle       string
	SignatureURL     string
	PaymentMethod    string
	Tagline          string
	StoreNumber      string
	StoreDescription string
}

// LineItemView is a single invoice line. Standard items carry
// Quantity/UnitPrice; buyback items carry Gram/BuybackRate. Amounts are
// recomputed by the renderer, so none is accepted here.
type LineItemView struct {
	Description string
	Quantity    int64
	UnitPrice   int64
	Buyback     bool
	Gram        float64
	BuybackRate int64
}

// ResolveBrandColor applies the tier gate: free-tier renders always get the
// default color, premium renders get the store's color when it is a valid
// hex value. Centralized so no template can drift from the rule.
func ResolveBrandColor(tier subscriptiondomain.Tier, store *StoreView) string {
	if tier != subscriptiondomain.TierPremium {
		return DefaultBrandColor
	}
	if store == nil {
		return DefaultBrandColor
	}
	color := strings.TrimSpace(store.BrandColor)
	if hexColorPattern.MatchString(color) {
		return color
	}
	return DefaultBrandColor
}

// document is the fully derived view handed to the html templates.
type document struct {
	AnchorID    string
	AnchorStyle template.CSS
	BrandColor  string

	Store   StoreView
	Invoice InvoiceView

	Items []lineItemRow

	Subtotal format.Money
	Shipping format.Money
	Tax      format.Money
	Total    format.Money

	ShowTax  bool
	TaxLabel string

	Preview bool
}

type lineItemRow struct {
	Description string
	Buyback     bool
	Quantity    string
	UnitPrice   format.Money
	Gram        string
	Rate        format.Money
	Amount      format.Money
}

func buildDocument(in Input) document {
	currency := strings.ToUpper(strings.TrimSpace(in.Invoice.Currency))
	if currency == "" {
		currency = "IDR"
	}

	items := make([]lineItemRow, 0, len(in.Invoice.Items))
	calcItems := make([]calc.Item, 0, len(in.Invoice.Items))
	for _, item := range in.Invoice.Items {
		ci := calc.Item{
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Buyback:     item.Buyback,
			Gram:        item.Gram,
			BuybackRate: item.BuybackRate,
		}
		calcItems = append(calcItems, ci)
		items = append(items, lineItemRow{
			Description: item.Description,
			Buyback:     item.Buyback,
			Quantity:    strconv.FormatInt(item.Quantity, 10),
			UnitPrice:   format.FormatMoney(item.UnitPrice, currency),
			Gram:        formatGram(item.Gram),
			Rate:        format.FormatMoney(item.BuybackRate, currency),
			Amount:      format.FormatMoney(calc.ItemSubtotal(ci), currency),
		})
	}

	totals := calc.Calculate(calc.SumItems(calcItems), in.Invoice.Shipping, in.TaxEnabled, in.TaxPercentage)

	store := StoreView{}
	if in.Store != nil {
		store = *in.Store
	}

	anchorStyle := template.CSS("")
	if !in.Preview {
		// Rendered but out of flow so headless capture can still measure it.
		anchorStyle = template.CSS("position:absolute;left:-9999px;top:0;")
	}

	return document{
		AnchorID:    CaptureAnchorID,
		AnchorStyle: anchorStyle,
		BrandColor:  ResolveBrandColor(in.Tier, in.Store),
		Store:       store,
		Invoice:     in.Invoice,
		Items:       items,
		Subtotal:    format.FormatMoney(totals.Subtotal, currency),
		Shipping:    format.FormatMoney(totals.ShippingCost, currency),
		Tax:         format.FormatMoney(totals.TaxAmount, currency),
		Total:       format.FormatMoney(totals.Total, currency),
		ShowTax:     in.TaxEnabled && in.TaxPercentage > 0,
		TaxLabel:    "Tax (" + formatPercent(in.TaxPercentage) + "%)",
		Preview:     in.Preview,
	}
}

func formatGram(value float64) string {
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(value, 'f', 2, 64), "0"), ".")
}

func formatPercent(value float64) string {
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(value, 'f', 2, 64), "0"), ".")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": formatDate,
	}
}

func formatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}
	return value.UTC().Format("02 Jan 2006")
}
