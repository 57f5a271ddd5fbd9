// Package calc derives invoice totals from raw line amounts and tax
// preferences.
//
// All monetary values are int64 minor units. Every surface that displays an
// invoice total (forms, HTML templates, PDF export) must go through Calculate
// so the numbers agree bit-for-bit.
package calc

import "math"

// Result holds the derived invoice amounts.
//
// Invariant: Total == Subtotal + ShippingCost + TaxAmount.
type Result struct {
	Subtotal     int64 `json:"subtotal"`
	TaxAmount    int64 `json:"tax_amount"`
	ShippingCost int64 `json:"shipping_cost"`
	Total        int64 `json:"total"`
}

// Item is a single priced line. Exactly one shape is populated per item:
// a standard item (Quantity x UnitPrice) or a buyback item priced by weight
// (Gram x BuybackRate), discriminated by Buyback.
type Item struct {
	Quantity    int64
	UnitPrice   int64
	Buyback     bool
	Gram        float64
	BuybackRate int64
}

// Calculate derives tax and total from the subtotal, shipping cost, and tax
// preference. Tax is half-up rounded to minor units; a disabled preference
// yields zero tax regardless of the stored percentage.
//
// The engine is pure and does not validate: negative or NaN input propagates
// into the result and is a caller contract violation.
func Calculate(subtotal, shippingCost int64, taxEnabled bool, taxPercentage float64) Result {
	var tax int64
	if taxEnabled {
		tax = int64(math.Round(float64(subtotal) * taxPercentage / 100))
	}
	return Result{
		Subtotal:     subtotal,
		TaxAmount:    tax,
		ShippingCost: shippingCost,
		Total:        subtotal + shippingCost + tax,
	}
}

// ItemSubtotal derives a line amount from its populated shape.
func ItemSubtotal(item Item) int64 {
	if item.Buyback {
		return int64(math.Round(item.Gram * float64(item.BuybackRate)))
	}
	return item.Quantity * item.UnitPrice
}

// SumItems returns the invoice subtotal over the given lines.
func SumItems(items []Item) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += ItemSubtotal(item)
	}
	return subtotal
}
