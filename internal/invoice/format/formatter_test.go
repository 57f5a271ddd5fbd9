package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	issuedAt := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)

	out, err := FormatInvoiceNumber(DefaultInvoiceNumberTemplate, issuedAt, 42)
	assert.NoError(t, err)
	assert.Equal(t, "INV-20250307-0042", out)
}

func TestFormatInvoiceNumber_CustomTemplate(t *testing.T) {
	issuedAt := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	out, err := FormatInvoiceNumber("{YY}{MM}/{SEQ}", issuedAt, 7)
	assert.NoError(t, err)
	assert.Equal(t, "2412/7", out)
}

func TestFormatInvoiceNumber_InvalidInput(t *testing.T) {
	now := time.Now()

	_, err := FormatInvoiceNumber("", now, 1)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{SEQ}", now, 0)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{UNKNOWN}", now, 1)
	assert.Error(t, err)
}

func TestFormatMoney_IDR(t *testing.T) {
	m := FormatMoney(1250000, "IDR")
	assert.Equal(t, "Rp", m.Symbol)
	assert.Equal(t, "1.250.000", m.Amount)
	assert.Equal(t, "Rp1.250.000", m.String())
}

func TestFormatMoney_USD(t *testing.T) {
	m := FormatMoney(123456, "USD")
	assert.Equal(t, "$", m.Symbol)
	assert.Equal(t, "1,234.56", m.Amount)
}

func TestFormatMoney_PadsMinorUnits(t *testing.T) {
	m := FormatMoney(1005, "usd")
	assert.Equal(t, "10.05", m.Amount)
}

func TestFormatMoney_Negative(t *testing.T) {
	m := FormatMoney(-50000, "IDR")
	assert.Equal(t, "-50.000", m.Amount)
}

func TestFormatMoney_UnknownCurrency(t *testing.T) {
	m := FormatMoney(150, "XYZ")
	assert.Equal(t, "XYZ ", m.Symbol)
	assert.Equal(t, "1.50", m.Amount)
}
