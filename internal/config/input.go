package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan from YAML bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ErrEmptyConfiguration is returned for a plan without any section.
var ErrEmptyConfiguration = errors.New("no plan sections provided (expected withdrawal_plan, depletion_plan or loan_plan)")

// ValidateConfiguration validates every section present in the plan
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.WithdrawalPlan == nil && config.DepletionPlan == nil && config.LoanPlan == nil {
		return ErrEmptyConfiguration
	}

	if config.WithdrawalPlan != nil {
		if err := config.WithdrawalPlan.Validate(); err != nil {
			return fmt.Errorf("withdrawal_plan: %w", err)
		}
	}

	if config.DepletionPlan != nil {
		if err := config.DepletionPlan.Validate(); err != nil {
			return fmt.Errorf("depletion_plan: %w", err)
		}
	}

	if config.LoanPlan != nil {
		if err := config.LoanPlan.Validate(); err != nil {
			return fmt.Errorf("loan_plan: %w", err)
		}
		if config.LoanPlan.Sweep != nil {
			if err := config.LoanPlan.Sweep.Validate(); err != nil {
				return fmt.Errorf("loan_plan.sweep: %w", err)
			}
		}
	}

	if config.MonteCarlo != nil {
		if config.DepletionPlan == nil {
			return fmt.Errorf("monte_carlo: %w", domain.InvalidParameterf("requires a depletion_plan"))
		}
		if err := config.MonteCarlo.WithDefaults().Validate(); err != nil {
			return fmt.Errorf("monte_carlo: %w", err)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example plan with the calculator's defaults
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	sweep := domain.DefaultSweepRange
	return &domain.Configuration{
		WithdrawalPlan: &domain.WithdrawalPlan{
			DurationYears:     100,
			FinalBalance:      0,
			MonthlyWithdrawal: 63200,
			AnnualReturnPct:   6.1,
			AnnualGrowthPct:   6.0,
		},
		DepletionPlan: &domain.DepletionPlan{
			InitialCapital:    20 * 100000,
			MonthlyWithdrawal: 63200,
			AnnualReturnPct:   3,
			AnnualGrowthPct:   6,
		},
		LoanPlan: &domain.LoanPlan{
			LoanParameters: domain.LoanParameters{
				LoanAmount:              100000,
				AnnualInterestRatePct:   10.5,
				ProcessingFee:           1179,
				TenureMonths:            12,
				ExpectedAnnualReturnPct: 12,
			},
			Sweep: &sweep,
		},
	}
}
