package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/config"
	"github.com/rpgo/swp-calculator/internal/domain"
	"github.com/rpgo/swp-calculator/internal/output"
)

func loadExampleReport(t *testing.T) *domain.Report {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func TestEndToEndCalculation(t *testing.T) {
	report := loadExampleReport(t)

	require.NotNil(t, report.Investment)
	assert.Equal(t, 1200, report.Investment.TotalMonths)
	assert.InDelta(t, 72020709.18, report.Investment.TotalInvestment, 1)

	require.NotNil(t, report.Depletion)
	assert.Equal(t, 31, report.Depletion.ElapsedMonths)
	assert.InDelta(t, 28339.06, report.Depletion.Shortfall, 0.01)

	require.NotNil(t, report.Loan)
	assert.InDelta(t, 1196, report.Loan.NetProfitLoss, 0.01)
	assert.Equal(t, domain.TakeLoan, report.Loan.Decision)

	require.NotNil(t, report.BreakEven)
	assert.InDelta(t, 49642.105, report.BreakEven.MinimumProfitableAmount, 0.01)

	require.NotNil(t, report.Sensitivity)
	assert.Len(t, report.Sensitivity.Points, 40)

	require.NotNil(t, report.MonteCarlo)
	assert.Len(t, report.MonteCarlo.Outcomes, 200)
	assert.Equal(t, int64(2024), report.MonteCarlo.Settings.Seed)
}

func TestEndToEndIsReproducible(t *testing.T) {
	a := loadExampleReport(t)
	b := loadExampleReport(t)

	// IDs and timestamps differ per run; the figures must not.
	assert.Equal(t, a.Investment, b.Investment)
	assert.Equal(t, a.Depletion, b.Depletion)
	assert.Equal(t, a.Sensitivity, b.Sensitivity)
	assert.Equal(t, a.MonteCarlo, b.MonteCarlo)
}

func TestOutputGeneration(t *testing.T) {
	report := loadExampleReport(t)

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, report, format))
			assert.NotEmpty(t, buf.String())
		})
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, output.GenerateReport(&buf, report, "html"), output.ErrUnsupportedFormat)
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	path := t.TempDir() + "/plan.yaml"
	require.NoError(t, output.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, parser.CreateExampleConfiguration(), cfg)
}
