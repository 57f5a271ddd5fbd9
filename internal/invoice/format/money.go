package format

import (
	"strconv"
	"strings"
)

// Money is a display-ready monetary value split into its currency symbol and
// formatted amount. Layouts that place the symbol and the number in separate
// elements consume the fields directly instead of re-parsing a formatted
// string.
type Money struct {
	Symbol string
	Amount string
}

func (m Money) String() string {
	return m.Symbol + m.Amount
}

type currencySpec struct {
	symbol   string
	exponent int
	thousand string
	decimal  string
}

var currencies = map[string]currencySpec{
	"IDR": {symbol: "Rp", exponent: 0, thousand: ".", decimal: ","},
	"USD": {symbol: "$", exponent: 2, thousand: ",", decimal: "."},
	"EUR": {symbol: "€", exponent: 2, thousand: ",", decimal: "."},
	"SGD": {symbol: "S$", exponent: 2, thousand: ",", decimal: "."},
	"MYR": {symbol: "RM", exponent: 2, thousand: ",", decimal: "."},
	"JPY": {symbol: "¥", exponent: 0, thousand: ",", decimal: "."},
}

// SupportedCurrency reports whether the code has a dedicated formatting rule.
func SupportedCurrency(code string) bool {
	_, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// FormatMoney formats an amount in minor units for the given ISO currency.
// Unknown currencies fall back to the uppercased code as symbol with two
// decimal places.
func FormatMoney(amount int64, currency string) Money {
	code := strings.ToUpper(strings.TrimSpace(currency))
	spec, ok := currencies[code]
	if !ok {
		spec = currencySpec{symbol: code + " ", exponent: 2, thousand: ",", decimal: "."}
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	divisor := int64(1)
	for i := 0; i < spec.exponent; i++ {
		divisor *= 10
	}

	major := amount / divisor
	minor := amount % divisor

	formatted := groupThousands(strconv.FormatInt(major, 10), spec.thousand)
	if spec.exponent > 0 {
		minorStr := strconv.FormatInt(minor, 10)
		for len(minorStr) < spec.exponent {
			minorStr = "0" + minorStr
		}
		formatted += spec.decimal + minorStr
	}
	if negative {
		formatted = "-" + formatted
	}

	return Money{Symbol: spec.symbol, Amount: formatted}
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
