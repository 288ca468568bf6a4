package domain

import (
	"math"

	"github.com/rpgo/swp-calculator/pkg/dateutil"
)

// RateSet holds the annual percentages a caller supplied together with their
// effective monthly equivalents. (1+MonthlyReturn)^12 == 1+AnnualReturnPct/100.
type RateSet struct {
	AnnualReturnPct float64 `json:"annual_return_pct"`
	AnnualGrowthPct float64 `json:"annual_growth_pct"`
	MonthlyReturn   float64 `json:"monthly_return_rate"`
	MonthlyGrowth   float64 `json:"monthly_growth_rate"`
}

// WithdrawalPlan is the input for the required-investment calculation:
// a growing monthly withdrawal sustained for DurationYears with FinalBalance
// left over at the end.
type WithdrawalPlan struct {
	DurationYears     float64 `yaml:"duration_years" json:"duration_years"`
	FinalBalance      float64 `yaml:"final_balance" json:"final_balance"`
	MonthlyWithdrawal float64 `yaml:"monthly_withdrawal" json:"monthly_withdrawal"`
	AnnualReturnPct   float64 `yaml:"annual_return_pct" json:"annual_return_pct"`
	AnnualGrowthPct   float64 `yaml:"annual_growth_pct" json:"annual_growth_pct"`
}

// MaxProjectionMonths bounds every month-by-month projection at 1,000 years.
const MaxProjectionMonths = 12000

// MaxSweepPoints bounds the number of grid points in a SweepRange.
const MaxSweepPoints = 10000

type namedField struct {
	name  string
	value float64
}

func checkFiniteFields(fields ...namedField) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return InvalidParameterf("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	return nil
}

// TotalMonths returns the whole number of months covered by the plan.
func (p WithdrawalPlan) TotalMonths() int {
	return dateutil.WholeMonths(p.DurationYears)
}

// Validate checks the plan before any computation runs.
func (p WithdrawalPlan) Validate() error {
	if err := checkFiniteFields(
		namedField{"duration_years", p.DurationYears},
		namedField{"final_balance", p.FinalBalance},
		namedField{"monthly_withdrawal", p.MonthlyWithdrawal},
	); err != nil {
		return err
	}
	if p.DurationYears <= 0 {
		return InvalidParameterf("duration_years must be positive, got %v", p.DurationYears)
	}
	if p.DurationYears*12 >= MaxProjectionMonths+1 {
		return InvalidParameterf("duration_years cannot exceed %d, got %v", MaxProjectionMonths/12, p.DurationYears)
	}
	if p.TotalMonths() < 1 {
		return InvalidParameterf("duration_years must cover at least one month, got %v", p.DurationYears)
	}
	if p.FinalBalance < 0 {
		return InvalidParameterf("final_balance cannot be negative, got %v", p.FinalBalance)
	}
	if p.MonthlyWithdrawal < 0 {
		return InvalidParameterf("monthly_withdrawal cannot be negative, got %v", p.MonthlyWithdrawal)
	}
	if err := validateAnnualPct("annual_return_pct", p.AnnualReturnPct); err != nil {
		return err
	}
	return validateAnnualPct("annual_growth_pct", p.AnnualGrowthPct)
}

// DepletionPlan is the input for the investment-duration calculation.
type DepletionPlan struct {
	InitialCapital    float64 `yaml:"initial_capital" json:"initial_capital"`
	MonthlyWithdrawal float64 `yaml:"monthly_withdrawal" json:"monthly_withdrawal"`
	AnnualReturnPct   float64 `yaml:"annual_return_pct" json:"annual_return_pct"`
	AnnualGrowthPct   float64 `yaml:"annual_growth_pct" json:"annual_growth_pct"`
}

// Validate checks the plan before any computation runs.
func (p DepletionPlan) Validate() error {
	if err := checkFiniteFields(
		namedField{"initial_capital", p.InitialCapital},
		namedField{"monthly_withdrawal", p.MonthlyWithdrawal},
	); err != nil {
		return err
	}
	if p.InitialCapital <= 0 {
		return InvalidParameterf("initial_capital must be positive, got %v", p.InitialCapital)
	}
	if p.MonthlyWithdrawal < 0 {
		return InvalidParameterf("monthly_withdrawal cannot be negative, got %v", p.MonthlyWithdrawal)
	}
	if err := validateAnnualPct("annual_return_pct", p.AnnualReturnPct); err != nil {
		return err
	}
	return validateAnnualPct("annual_growth_pct", p.AnnualGrowthPct)
}

// LoanParameters describes a loan against collateral whose proceeds are
// invested for the loan tenure.
type LoanParameters struct {
	LoanAmount              float64 `yaml:"loan_amount" json:"loan_amount"`
	AnnualInterestRatePct   float64 `yaml:"annual_interest_rate_pct" json:"annual_interest_rate_pct"`
	ProcessingFee           float64 `yaml:"processing_fee" json:"processing_fee"`
	TenureMonths            int     `yaml:"tenure_months" json:"tenure_months"`
	ExpectedAnnualReturnPct float64 `yaml:"expected_annual_return_pct" json:"expected_annual_return_pct"`
}

// Validate checks the loan parameters before any computation runs.
func (p LoanParameters) Validate() error {
	if err := checkFiniteFields(
		namedField{"loan_amount", p.LoanAmount},
		namedField{"annual_interest_rate_pct", p.AnnualInterestRatePct},
		namedField{"processing_fee", p.ProcessingFee},
		namedField{"expected_annual_return_pct", p.ExpectedAnnualReturnPct},
	); err != nil {
		return err
	}
	if p.LoanAmount < 0 {
		return InvalidParameterf("loan_amount cannot be negative, got %v", p.LoanAmount)
	}
	if p.AnnualInterestRatePct < 0 {
		return InvalidParameterf("annual_interest_rate_pct cannot be negative, got %v", p.AnnualInterestRatePct)
	}
	if p.ProcessingFee < 0 {
		return InvalidParameterf("processing_fee cannot be negative, got %v", p.ProcessingFee)
	}
	if p.TenureMonths < 1 {
		return InvalidParameterf("tenure_months must be at least 1, got %d", p.TenureMonths)
	}
	if p.ExpectedAnnualReturnPct < 0 {
		return InvalidParameterf("expected_annual_return_pct cannot be negative, got %v", p.ExpectedAnnualReturnPct)
	}
	return nil
}

// SweepRange is an inclusive range of loan amounts walked in fixed steps.
type SweepRange struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step" json:"step"`
}

// DefaultSweepRange is ₹25,000 to ₹10,00,000 in ₹25,000 steps.
var DefaultSweepRange = SweepRange{Min: 25000, Max: 1000000, Step: 25000}

// Validate checks that the range is well formed.
func (r SweepRange) Validate() error {
	if err := checkFiniteFields(
		namedField{"sweep min", r.Min},
		namedField{"sweep max", r.Max},
		namedField{"sweep step", r.Step},
	); err != nil {
		return err
	}
	if r.Min < 0 {
		return InvalidParameterf("sweep min cannot be negative, got %v", r.Min)
	}
	if r.Step <= 0 {
		return InvalidParameterf("sweep step must be positive, got %v", r.Step)
	}
	if r.Max < r.Min {
		return InvalidParameterf("sweep max (%v) cannot be below min (%v)", r.Max, r.Min)
	}
	if steps := (r.Max - r.Min) / r.Step; math.IsInf(steps, 0) || steps >= MaxSweepPoints {
		return InvalidParameterf("sweep of %v to %v in steps of %v exceeds %d points", r.Min, r.Max, r.Step, MaxSweepPoints)
	}
	return nil
}

// LoanPlan groups loan parameters with the sweep used for sensitivity output.
type LoanPlan struct {
	LoanParameters `yaml:",inline"`
	Sweep          *SweepRange `yaml:"sweep,omitempty" json:"sweep,omitempty"`
}

// SweepOrDefault returns the configured sweep or DefaultSweepRange.
func (p LoanPlan) SweepOrDefault() SweepRange {
	if p.Sweep == nil {
		return DefaultSweepRange
	}
	return *p.Sweep
}

// Configuration is a plan file: any subset of the three calculations.
type Configuration struct {
	WithdrawalPlan *WithdrawalPlan `yaml:"withdrawal_plan,omitempty" json:"withdrawal_plan,omitempty"`
	DepletionPlan  *DepletionPlan  `yaml:"depletion_plan,omitempty" json:"depletion_plan,omitempty"`
	LoanPlan       *LoanPlan       `yaml:"loan_plan,omitempty" json:"loan_plan,omitempty"`

	// MonteCarlo stress-tests DepletionPlan with random annual returns.
	MonteCarlo *MonteCarloSettings `yaml:"monte_carlo,omitempty" json:"monte_carlo,omitempty"`
}

// A rate at or below -100% has no real monthly equivalent.
func validateAnnualPct(field string, pct float64) error {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return InvalidParameterf("%s must be a finite number, got %v", field, pct)
	}
	if pct <= -100 {
		return InvalidParameterf("%s must be greater than -100, got %v", field, pct)
	}
	return nil
}
