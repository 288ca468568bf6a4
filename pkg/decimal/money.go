package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

var (
	lakh  = decimal.NewFromInt(1_00_000)
	crore = decimal.NewFromInt(1_00_00_000)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromLakhs converts an amount given in lakhs to rupees
func FromLakhs(lakhs float64) Money {
	return Money{decimal.NewFromFloat(lakhs).Mul(lakh)}
}

// Lakhs returns the amount expressed in lakhs (1,00,000)
func (m Money) Lakhs() decimal.Decimal {
	return m.Decimal.Div(lakh)
}

// Crores returns the amount expressed in crores (1,00,00,000)
func (m Money) Crores() decimal.Decimal {
	return m.Decimal.Div(crore)
}

// String returns the plain two-decimal representation
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in rupees with Indian digit grouping and paise,
// e.g. ₹12,34,567.89
func (m Money) Format() string {
	return sign(m) + rupee + groupIndian(m.Decimal.Abs().StringFixed(2))
}

// FormatWhole renders the amount rounded to whole rupees, e.g. ₹20,00,000
func (m Money) FormatWhole() string {
	rounded := m.Decimal.Round(0)
	return sign(Money{rounded}) + rupee + groupIndian(rounded.Abs().StringFixed(0))
}

// FormatCompact switches to lakhs at one lakh and above, e.g. ₹1.20 Lakhs,
// and otherwise falls back to Format.
func (m Money) FormatCompact() string {
	if m.Decimal.Abs().LessThan(lakh) {
		return m.Format()
	}
	return sign(m) + rupee + Money{m.Decimal.Abs()}.Lakhs().StringFixed(2) + " Lakhs"
}

// FormatCrores renders the amount in crores, e.g. ₹7.20 Cr
func (m Money) FormatCrores() string {
	return sign(m) + rupee + Money{m.Decimal.Abs()}.Crores().StringFixed(2) + " Cr"
}

func sign(m Money) string {
	if m.Decimal.Round(2).IsNegative() {
		return "-"
	}
	return ""
}

// groupIndian inserts Indian-style separators into an unsigned decimal string:
// the last three integer digits form one group and the rest are grouped in
// pairs, so 12345678.5 becomes 1,23,45,678.5.
func groupIndian(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		intPart = strings.Join(append(groups, tail), ",")
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}
