package calculation

import (
	"math"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// CalculateLoanOutcome compares borrowing p.LoanAmount and investing it for
// the tenure against the total cost of the loan.
//
// Interest is charged monthly on the full principal at the flat monthly rate
// for every month except the last, in which the principal is repaid:
// interest = amount * monthlyRate * (tenure - 1). This is a bullet loan, not
// an amortizing one. The investment compounds at the effective monthly rate of
// the expected annual return.
func CalculateLoanOutcome(p domain.LoanParameters) (*domain.LoanOutcome, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	monthlyInterest := FlatMonthlyInterestRate(p.AnnualInterestRatePct)
	monthlyReturn := MonthlyRate(p.ExpectedAnnualReturnPct)

	totalInterest := p.LoanAmount * monthlyInterest * float64(p.TenureMonths-1)
	totalOutflow := p.LoanAmount + totalInterest + p.ProcessingFee
	investmentValue := p.LoanAmount * math.Pow(1+monthlyReturn, float64(p.TenureMonths))
	net := investmentValue - totalOutflow

	if err := checkFinite(
		namedValue{"total_interest_paid", totalInterest},
		namedValue{"total_outflow", totalOutflow},
		namedValue{"investment_value", investmentValue},
		namedValue{"net_profit_loss", net},
	); err != nil {
		return nil, err
	}

	return &domain.LoanOutcome{
		Parameters:          p,
		MonthlyInterestRate: monthlyInterest,
		MonthlyReturnRate:   monthlyReturn,
		TotalInterestPaid:   totalInterest,
		TotalOutflow:        totalOutflow,
		InvestmentValue:     investmentValue,
		NetProfitLoss:       net,
		Decision:            decide(net),
	}, nil
}

// A net of exactly zero is not a profit.
func decide(net float64) domain.Decision {
	if net > 0 {
		return domain.TakeLoan
	}
	return domain.DoNotTakeLoan
}
