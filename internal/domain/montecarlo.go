package domain

import "math"

// MonteCarloSettings configures a stochastic depletion run. Each simulated year
// draws its annual return from a normal distribution centred on the plan's
// AnnualReturnPct with ReturnVolatilityPct as the standard deviation.
type MonteCarloSettings struct {
	Simulations         int     `yaml:"simulations" json:"simulations"`
	ReturnVolatilityPct float64 `yaml:"return_volatility_pct" json:"return_volatility_pct"`
	HorizonYears        int     `yaml:"horizon_years" json:"horizon_years"`
	Seed                int64   `yaml:"seed,omitempty" json:"seed,omitempty"` // 0 picks a random seed
}

// Defaults for fields left at zero.
const (
	DefaultSimulations  = 1000
	DefaultHorizonYears = 50
	MaxSimulations      = 100000
)

// WithDefaults fills zero Simulations and HorizonYears.
func (s MonteCarloSettings) WithDefaults() MonteCarloSettings {
	if s.Simulations == 0 {
		s.Simulations = DefaultSimulations
	}
	if s.HorizonYears == 0 {
		s.HorizonYears = DefaultHorizonYears
	}
	return s
}

// Validate checks the settings after defaults have been applied.
func (s MonteCarloSettings) Validate() error {
	if s.Simulations < 1 || s.Simulations > MaxSimulations {
		return InvalidParameterf("simulations must be between 1 and %d, got %d", MaxSimulations, s.Simulations)
	}
	if math.IsNaN(s.ReturnVolatilityPct) || math.IsInf(s.ReturnVolatilityPct, 0) {
		return InvalidParameterf("return_volatility_pct must be a finite number, got %v", s.ReturnVolatilityPct)
	}
	if s.ReturnVolatilityPct < 0 {
		return InvalidParameterf("return_volatility_pct cannot be negative, got %v", s.ReturnVolatilityPct)
	}
	if s.HorizonYears < 1 || s.HorizonYears > 1000 {
		return InvalidParameterf("horizon_years must be between 1 and 1000, got %d", s.HorizonYears)
	}
	return nil
}

// MonthPercentiles are depletion months at selected percentiles. A run that
// survives the horizon counts as the horizon month count.
type MonthPercentiles struct {
	P10 int `json:"p10"`
	P25 int `json:"p25"`
	P50 int `json:"p50"`
	P75 int `json:"p75"`
	P90 int `json:"p90"`
}

// MonteCarloResult aggregates a stochastic depletion run.
type MonteCarloResult struct {
	Plan          DepletionPlan      `json:"plan"`
	Settings      MonteCarloSettings `json:"settings"`
	HorizonMonths int                `json:"horizon_months"`
	Survived      int                `json:"survived"`
	SuccessRate   float64            `json:"success_rate"` // share of runs with money left at the horizon
	Percentiles   MonthPercentiles   `json:"percentiles"`
	MedianEnding  float64            `json:"median_ending_balance"`
	Outcomes      []RunOutcome       `json:"-"`
}

// RunOutcome is a single simulated path.
type RunOutcome struct {
	ElapsedMonths int     `json:"elapsed_months"`
	Terminated    bool    `json:"terminated"`
	EndingBalance float64 `json:"ending_balance"` // zero when terminated
}
