package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_WithTax(t *testing.T) {
	got := Calculate(100, 10, true, 10)

	assert.Equal(t, Result{
		Subtotal:     100,
		TaxAmount:    10,
		ShippingCost: 10,
		Total:        120,
	}, got)
}

func TestCalculate_TaxDisabled(t *testing.T) {
	got := Calculate(100, 10, false, 10)

	assert.Equal(t, int64(0), got.TaxAmount)
	assert.Equal(t, int64(110), got.Total)
}

func TestCalculate_DisabledIgnoresStalePercentage(t *testing.T) {
	for _, pct := range []float64{0, 11, 50, 100} {
		got := Calculate(250000, 15000, false, pct)
		assert.Equal(t, int64(0), got.TaxAmount, "pct=%v", pct)
		assert.Equal(t, int64(265000), got.Total, "pct=%v", pct)
	}
}

func TestCalculate_RoundsTaxHalfUp(t *testing.T) {
	// 105 * 10% = 10.5 -> 11
	got := Calculate(105, 0, true, 10)
	assert.Equal(t, int64(11), got.TaxAmount)
	assert.Equal(t, int64(116), got.Total)

	// 104 * 10% = 10.4 -> 10
	got = Calculate(104, 0, true, 10)
	assert.Equal(t, int64(10), got.TaxAmount)
}

func TestCalculate_TotalInvariant(t *testing.T) {
	cases := []struct {
		subtotal, shipping int64
		pct                float64
	}{
		{0, 0, 0},
		{1, 1, 100},
		{999999, 25000, 11},
		{1250000, 0, 2.5},
	}
	for _, tc := range cases {
		got := Calculate(tc.subtotal, tc.shipping, true, tc.pct)
		assert.Equal(t, got.Subtotal+got.ShippingCost+got.TaxAmount, got.Total)
		expectedTax := int64(math.Round(float64(tc.subtotal) * tc.pct / 100))
		assert.Equal(t, expectedTax, got.TaxAmount)
	}
}

func TestCalculate_DifferentPercentagesDiverge(t *testing.T) {
	a := Calculate(100000, 0, true, 10)
	b := Calculate(100000, 0, true, 11)

	assert.NotEqual(t, a.Total, b.Total)
	assert.GreaterOrEqual(t, abs(a.Total-b.Total), int64(2))
}

func TestItemSubtotal_Standard(t *testing.T) {
	assert.Equal(t, int64(150000), ItemSubtotal(Item{Quantity: 3, UnitPrice: 50000}))
	assert.Equal(t, int64(0), ItemSubtotal(Item{Quantity: 0, UnitPrice: 50000}))
}

func TestItemSubtotal_Buyback(t *testing.T) {
	// 2.5 g at 950000/g
	assert.Equal(t, int64(2375000), ItemSubtotal(Item{Buyback: true, Gram: 2.5, BuybackRate: 950000}))
	// fractional grams round half-up
	assert.Equal(t, int64(333), ItemSubtotal(Item{Buyback: true, Gram: 0.3325, BuybackRate: 1000}))
}

func TestItemSubtotal_BuybackIgnoresStandardFields(t *testing.T) {
	item := Item{Buyback: true, Gram: 1, BuybackRate: 100, Quantity: 99, UnitPrice: 99}
	assert.Equal(t, int64(100), ItemSubtotal(item))
}

func TestSumItems(t *testing.T) {
	items := []Item{
		{Quantity: 2, UnitPrice: 1000},
		{Buyback: true, Gram: 1.5, BuybackRate: 2000},
	}
	assert.Equal(t, int64(5000), SumItems(items))
	assert.Equal(t, int64(0), SumItems(nil))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
