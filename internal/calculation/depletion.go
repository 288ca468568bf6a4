package calculation

import (
	"math"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// DepletionSafetyCapMonths bounds the depletion simulation at 1,000 years.
// A capital still positive after this many months is reported as lasting
// indefinitely.
const DepletionSafetyCapMonths = domain.MaxProjectionMonths

// CalculateDepletion runs the month-by-month depletion simulation for plan.
func CalculateDepletion(plan domain.DepletionPlan) (*domain.DepletionResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	rates := NewRateSet(plan.AnnualReturnPct, plan.AnnualGrowthPct)
	result, err := SimulateDepletion(plan.InitialCapital, plan.MonthlyWithdrawal, rates.MonthlyGrowth, rates.MonthlyReturn, DepletionSafetyCapMonths)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Rates = rates
	return result, nil
}

// SimulateDepletion grows capital by r each month and then takes a withdrawal
// of withdrawal0*(1+g)^m (m counted from 0). The first month whose
// post-withdrawal balance is zero or negative is the depletion month and is
// reported 1-based in ElapsedMonths. If capMonths pass without depletion the
// result has Terminated == false and ElapsedMonths == capMonths. A balance
// that overflows while withdrawals grow no faster than returns can never be
// depleted; it is reported the same way, with the trajectory up to the
// overflow.
func SimulateDepletion(capital, withdrawal0, g, r float64, capMonths int) (*domain.DepletionResult, error) {
	if capital <= 0 {
		return nil, domain.InvalidParameterf("initial_capital must be positive, got %v", capital)
	}
	if withdrawal0 < 0 {
		return nil, domain.InvalidParameterf("monthly_withdrawal cannot be negative, got %v", withdrawal0)
	}
	if capMonths < 1 {
		return nil, domain.InvalidParameterf("safety cap must be at least one month, got %d", capMonths)
	}

	trajectory := make([]domain.ProjectionPoint, 0, min(capMonths, 1200))
	balance := capital
	for m := 0; m < capMonths; m++ {
		withdrawal := withdrawal0 * math.Pow(1+g, float64(m))
		trajectory = append(trajectory, domain.ProjectionPoint{
			Month:                   m + 1,
			BalanceBeforeWithdrawal: balance,
			Withdrawal:              withdrawal,
		})
		balance = balance*(1+r) - withdrawal
		if math.IsInf(balance, 1) && g <= r {
			break
		}
		if err := domain.CheckFinite("balance", balance); err != nil {
			return nil, err
		}
		if balance <= 0 {
			shortfall := 0.0
			if balance < 0 {
				shortfall = -balance
			}
			return &domain.DepletionResult{
				ElapsedMonths: m + 1,
				Terminated:    true,
				Shortfall:     shortfall,
				Trajectory:    trajectory,
			}, nil
		}
	}
	return &domain.DepletionResult{
		ElapsedMonths: capMonths,
		Terminated:    false,
		Trajectory:    trajectory,
	}, nil
}
