package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money wraps a decimal amount for currency rendering.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount as a currency string with thousands
// separators: $1,234.56 for positive amounts, -$1,234.56 for negative.
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(2)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if m.Decimal.IsNegative() {
		return "-$" + b.String() + fracPart
	}
	return "$" + b.String() + fracPart
}
