package output

import (
	"fmt"

	calc "github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling conventions shared by every calculation.
var DefaultAssumptions = []string{
	"Withdrawals are taken at the start of each month; returns accrue on what remains",
	"Annual return and growth rates compound monthly: (1 + annual)^(1/12) - 1",
	"Loan interest is flat: annual rate / 12 per month, principal repaid at the end",
}

// GenerateAssumptions lists the conventions behind the sections present in report,
// with the actual rates substituted.
func GenerateAssumptions(report *domain.Report) []string {
	if report == nil {
		return DefaultAssumptions
	}
	var out []string
	if inv := report.Investment; inv != nil {
		out = append(out,
			fmt.Sprintf("Return of %s a year compounds monthly at %s",
				FormatPercentage(inv.Rates.AnnualReturnPct), FormatMonthlyRate(inv.Rates.MonthlyReturn)),
			fmt.Sprintf("Withdrawals grow %s a year, %s each month",
				FormatPercentage(inv.Rates.AnnualGrowthPct), FormatMonthlyRate(inv.Rates.MonthlyGrowth)),
			fmt.Sprintf("Final balance is discounted at the annual return over %v years", inv.Plan.DurationYears),
		)
	}
	if report.Depletion != nil {
		out = append(out,
			fmt.Sprintf("Depletion is simulated month by month for at most %d years", calc.DepletionSafetyCapMonths/12),
		)
	}
	if mc := report.MonteCarlo; mc != nil {
		out = append(out,
			fmt.Sprintf("Stress test draws each year's return from a normal distribution (mean %s, deviation %s), floored at -99%%",
				FormatPercentage(mc.Plan.AnnualReturnPct), FormatPercentage(mc.Settings.ReturnVolatilityPct)),
		)
	}
	if loan := report.Loan; loan != nil {
		out = append(out,
			fmt.Sprintf("Loan interest is flat at %s a month for %d of %d months; principal repaid at the end",
				FormatMonthlyRate(loan.MonthlyInterestRate), max(loan.Parameters.TenureMonths-1, 0), loan.Parameters.TenureMonths),
			fmt.Sprintf("Loan proceeds are invested at %s a month", FormatMonthlyRate(loan.MonthlyReturnRate)),
		)
	}
	if len(out) == 0 {
		return DefaultAssumptions
	}
	return out
}
