package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// CalculationEngine runs the projection calculations and logs what it does.
// It holds no state between calls; every method recomputes from its inputs.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RequiredInvestment computes the capital needed today for a withdrawal plan.
func (ce *CalculationEngine) RequiredInvestment(plan domain.WithdrawalPlan) (*domain.RequiredInvestmentResult, error) {
	ce.Logger.Debugf("required investment: years=%v withdrawal=%v return=%v%% growth=%v%% final=%v",
		plan.DurationYears, plan.MonthlyWithdrawal, plan.AnnualReturnPct, plan.AnnualGrowthPct, plan.FinalBalance)

	result, err := CalculateRequiredInvestment(plan)
	if err != nil {
		ce.Logger.Errorf("required investment failed: %v", err)
		return nil, err
	}
	if ratesEqual(result.Rates.MonthlyReturn, result.Rates.MonthlyGrowth) {
		ce.Logger.Infof("return and growth rates are equal; using the limiting annuity form")
	}
	if result.Rates.MonthlyReturn <= result.Rates.MonthlyGrowth && plan.FinalBalance > 0 {
		ce.Logger.Warnf("withdrawals grow at least as fast as returns; trajectory may be implausible")
	}
	ce.Logger.Infof("required investment: total=%.2f over %d months (final balance %.2f)",
		result.TotalInvestment, result.TotalMonths, result.FinalBalance)
	return result, nil
}

// InvestmentDuration computes how long a capital lasts under a depletion plan.
func (ce *CalculationEngine) InvestmentDuration(plan domain.DepletionPlan) (*domain.DepletionResult, error) {
	ce.Logger.Debugf("investment duration: capital=%v withdrawal=%v return=%v%% growth=%v%%",
		plan.InitialCapital, plan.MonthlyWithdrawal, plan.AnnualReturnPct, plan.AnnualGrowthPct)

	result, err := CalculateDepletion(plan)
	if err != nil {
		ce.Logger.Errorf("investment duration failed: %v", err)
		return nil, err
	}
	if !result.Terminated {
		ce.Logger.Warnf("capital still positive after %d months; reporting as indefinite", result.ElapsedMonths)
		return result, nil
	}
	ce.Logger.Infof("capital lasts %d years %d months", result.Years(), result.Months())
	return result, nil
}

// LoanOutcome evaluates a single loan-versus-investment comparison.
func (ce *CalculationEngine) LoanOutcome(p domain.LoanParameters) (*domain.LoanOutcome, error) {
	ce.Logger.Debugf("loan outcome: amount=%v interest=%v%% fee=%v tenure=%d return=%v%%",
		p.LoanAmount, p.AnnualInterestRatePct, p.ProcessingFee, p.TenureMonths, p.ExpectedAnnualReturnPct)

	outcome, err := CalculateLoanOutcome(p)
	if err != nil {
		ce.Logger.Errorf("loan outcome failed: %v", err)
		return nil, err
	}
	ce.Logger.Infof("loan outcome: net=%.2f decision=%s", outcome.NetProfitLoss, outcome.Decision)
	return outcome, nil
}

// LoanBreakEven reports the minimum profitable amount and break-even return for p.
func (ce *CalculationEngine) LoanBreakEven(p domain.LoanParameters) (*domain.LoanBreakEven, error) {
	be, err := CalculateLoanBreakEven(p)
	if err != nil {
		ce.Logger.Errorf("loan break-even failed: %v", err)
		return nil, err
	}
	if !be.AmountExists {
		ce.Logger.Infof("loan break-even: no amount is profitable at these rates")
	}
	return be, nil
}

// LoanSensitivity sweeps the loan amount across rng.
func (ce *CalculationEngine) LoanSensitivity(p domain.LoanParameters, rng domain.SweepRange) (*domain.SensitivitySeries, error) {
	series, err := CalculateLoanSensitivity(p, rng)
	if err != nil {
		ce.Logger.Errorf("loan sensitivity failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("loan sensitivity: %d points from %v to %v", len(series.Points), rng.Min, rng.Max)
	return series, nil
}

// StressTest runs a Monte Carlo depletion simulation for plan.
func (ce *CalculationEngine) StressTest(ctx context.Context, plan domain.DepletionPlan, settings domain.MonteCarloSettings) (*domain.MonteCarloResult, error) {
	mcs, err := NewMonteCarloSimulator(plan, settings)
	if err != nil {
		ce.Logger.Errorf("monte carlo failed: %v", err)
		return nil, err
	}
	ce.Logger.Debugf("monte carlo: %d simulations over %d years, volatility=%v%% seed=%d",
		mcs.Settings.Simulations, mcs.Settings.HorizonYears, mcs.Settings.ReturnVolatilityPct, mcs.Settings.Seed)

	result, err := mcs.RunSimulation(ctx)
	if err != nil {
		ce.Logger.Errorf("monte carlo failed: %v", err)
		return nil, err
	}
	if result.SuccessRate < 0.5 {
		ce.Logger.Warnf("capital outlives the %d year horizon in only %.1f%% of runs",
			mcs.Settings.HorizonYears, result.SuccessRate*100)
	}
	ce.Logger.Infof("monte carlo: success rate %.1f%%, median depletion month %d",
		result.SuccessRate*100, result.Percentiles.P50)
	return result, nil
}

// RunPlan runs every section present in config and bundles the results.
func (ce *CalculationEngine) RunPlan(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	report := NewReport()

	if config.WithdrawalPlan != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := ce.RequiredInvestment(*config.WithdrawalPlan)
		if err != nil {
			return nil, fmt.Errorf("withdrawal plan: %w", err)
		}
		report.Investment = result
	}

	if config.DepletionPlan != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := ce.InvestmentDuration(*config.DepletionPlan)
		if err != nil {
			return nil, fmt.Errorf("depletion plan: %w", err)
		}
		report.Depletion = result
	}

	if config.MonteCarlo != nil {
		if config.DepletionPlan == nil {
			return nil, domain.InvalidParameterf("monte_carlo requires a depletion_plan")
		}
		result, err := ce.StressTest(ctx, *config.DepletionPlan, *config.MonteCarlo)
		if err != nil {
			return nil, fmt.Errorf("monte carlo: %w", err)
		}
		report.MonteCarlo = result
	}

	if config.LoanPlan != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcome, err := ce.LoanOutcome(config.LoanPlan.LoanParameters)
		if err != nil {
			return nil, fmt.Errorf("loan plan: %w", err)
		}
		report.Loan = outcome

		be, err := ce.LoanBreakEven(config.LoanPlan.LoanParameters)
		if err != nil {
			return nil, fmt.Errorf("loan break-even: %w", err)
		}
		report.BreakEven = be

		series, err := ce.LoanSensitivity(config.LoanPlan.LoanParameters, config.LoanPlan.SweepOrDefault())
		if err != nil {
			return nil, fmt.Errorf("loan sensitivity: %w", err)
		}
		report.Sensitivity = series
	}

	return report, nil
}

// NewReport wraps results that were computed individually.
func NewReport() *domain.Report {
	return &domain.Report{ID: reportIDFunc(), GeneratedAt: nowFunc()}
}
