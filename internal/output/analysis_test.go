package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpgo/swp-calculator/internal/domain"
)

func point(amount, net float64) domain.SensitivityPoint {
	d := domain.DoNotTakeLoan
	if net > 0 {
		d = domain.TakeLoan
	}
	return domain.SensitivityPoint{LoanAmount: amount, NetProfitLoss: net, Decision: d}
}

func TestAnalyzeSensitivity(t *testing.T) {
	series := &domain.SensitivitySeries{Points: []domain.SensitivityPoint{
		point(25000, -585.25),
		point(50000, 8.5),
		point(75000, 602.25),
		point(100000, 1196),
	}}

	s := AnalyzeSensitivity(series)
	assert.Equal(t, 4, s.Points)
	assert.Equal(t, 3, s.ProfitablePoints)
	assert.True(t, s.HasProfitable)
	assert.Equal(t, 50000.0, s.FirstProfitableAmount)
	assert.Equal(t, 100000.0, s.Best.LoanAmount)
	assert.Equal(t, 25000.0, s.Worst.LoanAmount)
}

func TestAnalyzeSensitivity_NothingProfitable(t *testing.T) {
	series := &domain.SensitivitySeries{Points: []domain.SensitivityPoint{
		point(25000, -100),
		point(50000, -200),
	}}
	s := AnalyzeSensitivity(series)
	assert.False(t, s.HasProfitable)
	assert.Zero(t, s.ProfitablePoints)
	assert.Equal(t, 25000.0, s.Best.LoanAmount)
	assert.Equal(t, 50000.0, s.Worst.LoanAmount)

	assert.Equal(t, SweepSummary{}, AnalyzeSensitivity(nil))
}
