package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMonteCarloSettings_WithDefaults(t *testing.T) {
	s := MonteCarloSettings{ReturnVolatilityPct: 10}.WithDefaults()
	assert.Equal(t, DefaultSimulations, s.Simulations)
	assert.Equal(t, DefaultHorizonYears, s.HorizonYears)
	assert.Equal(t, 10.0, s.ReturnVolatilityPct)
	assert.Equal(t, int64(0), s.Seed)

	kept := MonteCarloSettings{Simulations: 7, HorizonYears: 3}.WithDefaults()
	assert.Equal(t, 7, kept.Simulations)
	assert.Equal(t, 3, kept.HorizonYears)
}

func TestMonteCarloSettings_Validate(t *testing.T) {
	valid := MonteCarloSettings{Simulations: 100, ReturnVolatilityPct: 15, HorizonYears: 30}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(s *MonteCarloSettings)
	}{
		{"Zero simulations", func(s *MonteCarloSettings) { s.Simulations = 0 }},
		{"Too many simulations", func(s *MonteCarloSettings) { s.Simulations = MaxSimulations + 1 }},
		{"Negative volatility", func(s *MonteCarloSettings) { s.ReturnVolatilityPct = -0.1 }},
		{"Infinite volatility", func(s *MonteCarloSettings) { s.ReturnVolatilityPct = math.Inf(1) }},
		{"Zero horizon", func(s *MonteCarloSettings) { s.HorizonYears = 0 }},
		{"Horizon beyond cap", func(s *MonteCarloSettings) { s.HorizonYears = 1001 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidParameter)
		})
	}
}

func TestMonteCarloSettings_YAML(t *testing.T) {
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte("monte_carlo:\n  simulations: 500\n  return_volatility_pct: 14.5\n  seed: 11\n"), &cfg))
	require.NotNil(t, cfg.MonteCarlo)
	assert.Equal(t, MonteCarloSettings{Simulations: 500, ReturnVolatilityPct: 14.5, Seed: 11}, *cfg.MonteCarlo)
}
