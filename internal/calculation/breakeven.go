package calculation

import (
	"math"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// CalculateLoanBreakEven finds where a loan stops paying for itself, holding
// the other parameters of p fixed.
//
// Net profit is affine in the loan amount: net(L) = L*margin - fee, where
// margin = (1+r)^T - 1 - i*(T-1). When margin is positive any amount above
// fee/margin is profitable; otherwise no amount is. The break-even annual
// return is the rate at which the invested amount exactly repays the outflow.
func CalculateLoanBreakEven(p domain.LoanParameters) (*domain.LoanBreakEven, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tenure := float64(p.TenureMonths)
	growth := math.Pow(1+MonthlyRate(p.ExpectedAnnualReturnPct), tenure)
	margin := growth - 1 - FlatMonthlyInterestRate(p.AnnualInterestRatePct)*(tenure-1)
	if err := domain.CheckFinite("margin_per_rupee", margin); err != nil {
		return nil, err
	}

	be := &domain.LoanBreakEven{MarginPerRupee: margin}
	if margin > 0 {
		be.MinimumProfitableAmount = p.ProcessingFee / margin
		be.AmountExists = true
	}

	if p.LoanAmount > 0 {
		outflow := p.LoanAmount*(1+FlatMonthlyInterestRate(p.AnnualInterestRatePct)*(tenure-1)) + p.ProcessingFee
		be.BreakEvenReturnPct = (math.Pow(outflow/p.LoanAmount, 12/tenure) - 1) * 100
		be.ReturnDefined = true
	}

	if err := checkFinite(
		namedValue{"minimum_profitable_amount", be.MinimumProfitableAmount},
		namedValue{"break_even_return_pct", be.BreakEvenReturnPct},
	); err != nil {
		return nil, err
	}
	return be, nil
}
