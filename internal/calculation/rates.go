package calculation

import (
	"math"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// MonthlyRate converts an annual percentage into the effective monthly rate
// that compounds to it: (1+r)^12 = 1 + annualPct/100.
// Used for investment returns and withdrawal growth.
func MonthlyRate(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/12) - 1
}

// FlatMonthlyInterestRate splits an annual loan interest percentage evenly
// across twelve months without compounding. Loan interest is quoted this way
// and must not be converted with MonthlyRate.
func FlatMonthlyInterestRate(annualPct float64) float64 {
	return annualPct / 12 / 100
}

// NewRateSet derives the monthly return and growth rates from annual percentages.
func NewRateSet(annualReturnPct, annualGrowthPct float64) domain.RateSet {
	return domain.RateSet{
		AnnualReturnPct: annualReturnPct,
		AnnualGrowthPct: annualGrowthPct,
		MonthlyReturn:   MonthlyRate(annualReturnPct),
		MonthlyGrowth:   MonthlyRate(annualGrowthPct),
	}
}
