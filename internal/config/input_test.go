package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/swp-calculator/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(filepath.Join("testdata", "plan.yaml"))
	require.NoError(t, err)

	require.NotNil(t, config.WithdrawalPlan)
	assert.Equal(t, 30.0, config.WithdrawalPlan.DurationYears)
	assert.Equal(t, 6.1, config.WithdrawalPlan.AnnualReturnPct)

	require.NotNil(t, config.DepletionPlan)
	assert.Equal(t, 2000000.0, config.DepletionPlan.InitialCapital)

	require.NotNil(t, config.LoanPlan)
	assert.Equal(t, 12, config.LoanPlan.TenureMonths)
	assert.Equal(t, domain.DefaultSweepRange, config.LoanPlan.SweepOrDefault())
}

func TestLoadFromFile_SingleSection(t *testing.T) {
	path := writeTemp(t, "loan_plan:\n  loan_amount: 50000\n  annual_interest_rate_pct: 12\n  tenure_months: 6\n  expected_annual_return_pct: 14\n")
	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Nil(t, config.WithdrawalPlan)
	assert.Nil(t, config.DepletionPlan)
	require.NotNil(t, config.LoanPlan)
	assert.Nil(t, config.LoanPlan.Sweep)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "withdrawal_plan:\n\tduration_years: 30\n")
	config, err := NewInputParser().LoadFromFile(path)

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_WrongType(t *testing.T) {
	path := writeTemp(t, "depletion_plan:\n  initial_capital: \"twenty lakhs\"\n")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	assert.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))

	err := parser.ValidateConfiguration(&domain.Configuration{})
	assert.ErrorIs(t, err, ErrEmptyConfiguration)

	testCases := []struct {
		desc    string
		config  *domain.Configuration
		section string
	}{
		{
			desc:    "zero duration",
			config:  &domain.Configuration{WithdrawalPlan: &domain.WithdrawalPlan{MonthlyWithdrawal: 100}},
			section: "withdrawal_plan",
		},
		{
			desc:    "no capital",
			config:  &domain.Configuration{DepletionPlan: &domain.DepletionPlan{MonthlyWithdrawal: 100}},
			section: "depletion_plan",
		},
		{
			desc:    "zero tenure",
			config:  &domain.Configuration{LoanPlan: &domain.LoanPlan{LoanParameters: domain.LoanParameters{LoanAmount: 1000}}},
			section: "loan_plan",
		},
		{
			desc: "bad sweep",
			config: &domain.Configuration{LoanPlan: &domain.LoanPlan{
				LoanParameters: domain.LoanParameters{LoanAmount: 1000, TenureMonths: 12},
				Sweep:          &domain.SweepRange{Min: 0, Max: 1000, Step: 0},
			}},
			section: "loan_plan.sweep",
		},
		{
			desc: "monte carlo without depletion plan",
			config: &domain.Configuration{
				LoanPlan:   &domain.LoanPlan{LoanParameters: domain.LoanParameters{LoanAmount: 1000, TenureMonths: 12}},
				MonteCarlo: &domain.MonteCarloSettings{},
			},
			section: "monte_carlo",
		},
		{
			desc: "negative simulations",
			config: &domain.Configuration{
				DepletionPlan: &domain.DepletionPlan{InitialCapital: 1000, MonthlyWithdrawal: 10},
				MonteCarlo:    &domain.MonteCarloSettings{Simulations: -1},
			},
			section: "monte_carlo",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := parser.ValidateConfiguration(tc.config)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
			assert.Contains(t, err.Error(), tc.section+":")
		})
	}
}

func TestLoadFromFile_MonteCarloSection(t *testing.T) {
	path := writeTemp(t, "depletion_plan:\n  initial_capital: 2000000\n  monthly_withdrawal: 63200\n  annual_return_pct: 3\n  annual_growth_pct: 6\n"+
		"monte_carlo:\n  return_volatility_pct: 12\n  seed: 7\n")
	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, config.MonteCarlo)
	assert.Equal(t, 12.0, config.MonteCarlo.ReturnVolatilityPct)
	assert.Equal(t, int64(7), config.MonteCarlo.Seed)
	assert.Equal(t, 0, config.MonteCarlo.Simulations)
}

func TestLoadFromFile_ValidationFailureIsWrapped(t *testing.T) {
	path := writeTemp(t, "depletion_plan:\n  initial_capital: -5\n  monthly_withdrawal: 100\n")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config.WithdrawalPlan)
	assert.Equal(t, 100.0, config.WithdrawalPlan.DurationYears)
	assert.Equal(t, 63200.0, config.WithdrawalPlan.MonthlyWithdrawal)
	require.NotNil(t, config.DepletionPlan)
	assert.Equal(t, 2000000.0, config.DepletionPlan.InitialCapital)
	require.NotNil(t, config.LoanPlan)
	assert.Equal(t, 1179.0, config.LoanPlan.ProcessingFee)

	// The example must survive a YAML round trip through the parser.
	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	back, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config, back)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
