package output

import (
	"github.com/shopspring/decimal"

	money "github.com/homeplan/homeplan/pkg/decimal"
)

// FormatCurrency formats a decimal as currency with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatSignedCurrency prefixes positive amounts with "+" so income and
// expenses read unambiguously in transaction listings.
func FormatSignedCurrency(amount decimal.Decimal) string {
	s := FormatCurrency(amount)
	if amount.GreaterThan(decimal.Zero) {
		return "+" + s
	}
	return s
}

// FormatPercentage formats a decimal fraction as a percentage with 2 decimals.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
