package output

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rpgo/swp-calculator/pkg/dateutil"
	money "github.com/rpgo/swp-calculator/pkg/decimal"
)

// FormatCurrency formats an amount in rupees with Indian grouping and paise.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return money.NewMoney(amount).Format() }

// FormatWholeRupees formats an amount rounded to whole rupees.
func FormatWholeRupees(amount float64) string { return money.NewMoney(amount).FormatWhole() }

// FormatCompact formats an amount in lakhs once it reaches one lakh.
func FormatCompact(amount float64) string { return money.NewMoney(amount).FormatCompact() }

// FormatCrores formats an amount in crores.
func FormatCrores(amount float64) string { return money.NewMoney(amount).FormatCrores() }

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string { return decimal.NewFromFloat(pct).StringFixed(2) + "%" }

// FormatMonthlyRate formats a fractional monthly rate as a percentage with 4 decimals.
func FormatMonthlyRate(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(4) + "%"
}

// FormatDuration renders whole years and months, e.g. "2 years and 7 months".
func FormatDuration(years, months int) string {
	return fmt.Sprintf("%s and %s", plural(years, "year"), plural(months, "month"))
}

// FormatMonths renders a month count the way FormatDuration does.
func FormatMonths(total int) string {
	return FormatDuration(dateutil.SplitMonths(total))
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// plainAmount is the machine-readable rendering used in CSV cells.
func plainAmount(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }

func lakhsCell(v float64) string { return money.NewMoney(v).Lakhs().StringFixed(2) }

func croresCell(v float64) string { return money.NewMoney(v).Crores().StringFixed(2) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
