package calculation

import (
	"math"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// CalculateRequiredInvestment returns the capital that must be invested today
// to pay plan.MonthlyWithdrawal (growing monthly) for the plan duration and
// still hold plan.FinalBalance at the end, along with the balance trajectory.
//
// The final balance is discounted with the annual rate over DurationYears
// rather than the monthly rate over TotalMonths. Both agree whenever the
// duration is a whole number of months.
func CalculateRequiredInvestment(plan domain.WithdrawalPlan) (*domain.RequiredInvestmentResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	rates := NewRateSet(plan.AnnualReturnPct, plan.AnnualGrowthPct)
	r, g := rates.MonthlyReturn, rates.MonthlyGrowth
	totalMonths := plan.TotalMonths()

	annualFactor := math.Pow(1+plan.AnnualReturnPct/100, plan.DurationYears)
	pvAnnuity := GrowingAnnuityPV(plan.MonthlyWithdrawal, g, r, totalMonths)
	pvFinal := plan.FinalBalance / annualFactor
	totalInvestment := pvAnnuity + pvFinal

	result := &domain.RequiredInvestmentResult{
		Plan:            plan,
		Rates:           rates,
		TotalMonths:     totalMonths,
		PVAnnuity:       pvAnnuity,
		PVFinal:         pvFinal,
		TotalInvestment: totalInvestment,
		FVAnnuity:       GrowingAnnuityFV(plan.MonthlyWithdrawal, g, r, totalMonths),
		FutureValue:     totalInvestment * annualFactor,
	}
	if err := checkFinite(
		namedValue{"pv_annuity", result.PVAnnuity},
		namedValue{"pv_final", result.PVFinal},
		namedValue{"total_investment", result.TotalInvestment},
		namedValue{"fv_annuity", result.FVAnnuity},
		namedValue{"future_value", result.FutureValue},
	); err != nil {
		return nil, err
	}

	trajectory, final, err := ReplayWithdrawals(totalInvestment, plan.MonthlyWithdrawal, g, r, totalMonths)
	if err != nil {
		return nil, err
	}
	result.Trajectory = trajectory
	result.FinalBalance = final
	return result, nil
}

// ReplayWithdrawals simulates months 1..n from a starting balance: record the
// balance, then grow it by r and take the month's withdrawal
// payment*(1+g)^(m-1). It returns the points and the balance after month n.
func ReplayWithdrawals(start, payment, g, r float64, n int) ([]domain.ProjectionPoint, float64, error) {
	points := make([]domain.ProjectionPoint, 0, n)
	balance := start
	for m := 1; m <= n; m++ {
		withdrawal := payment * math.Pow(1+g, float64(m-1))
		points = append(points, domain.ProjectionPoint{
			Month:                   m,
			BalanceBeforeWithdrawal: balance,
			Withdrawal:              withdrawal,
		})
		balance = balance*(1+r) - withdrawal
		if err := domain.CheckFinite("balance", balance); err != nil {
			return nil, 0, err
		}
	}
	return points, balance, nil
}
