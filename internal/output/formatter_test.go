package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calc "github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/domain"
)

func buildTestReport(t *testing.T) *domain.Report {
	t.Helper()
	inv, err := calc.CalculateRequiredInvestment(domain.WithdrawalPlan{
		DurationYears: 2, FinalBalance: 100000, MonthlyWithdrawal: 10000, AnnualReturnPct: 8, AnnualGrowthPct: 5,
	})
	require.NoError(t, err)
	dep, err := calc.CalculateDepletion(domain.DepletionPlan{
		InitialCapital: 2000000, MonthlyWithdrawal: 63200, AnnualReturnPct: 3, AnnualGrowthPct: 6,
	})
	require.NoError(t, err)
	params := domain.LoanParameters{
		LoanAmount: 100000, AnnualInterestRatePct: 10.5, ProcessingFee: 1179, TenureMonths: 12, ExpectedAnnualReturnPct: 12,
	}
	loan, err := calc.CalculateLoanOutcome(params)
	require.NoError(t, err)
	be, err := calc.CalculateLoanBreakEven(params)
	require.NoError(t, err)
	series, err := calc.CalculateLoanSensitivity(params, domain.SweepRange{Min: 25000, Max: 200000, Step: 25000})
	require.NoError(t, err)

	start := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Report{
		ID:          "test-report",
		GeneratedAt: time.Date(2025, time.October, 19, 10, 0, 0, 0, time.UTC),
		StartDate:   &start,
		Investment:  inv,
		Depletion:   dep,
		Loan:        loan,
		BreakEven:   be,
		Sensitivity: series,
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "SWP CALCULATOR REPORT\n"))
	assert.Contains(t, content, "Report test-report · generated 2025-10-19 10:00")
	assert.Contains(t, content, "REQUIRED INVESTMENT")
	assert.Contains(t, content, "You need to invest ₹")
	assert.Contains(t, content, "Your investment will last 2 years and 7 months")
	assert.Contains(t, content, "Current investment:         ₹20,00,000 (₹20.00 Lakhs)")
	assert.Contains(t, content, "Last withdrawal short by:   ₹28,339.06")
	assert.Contains(t, content, "Runs out in:                May 2028")
	assert.Contains(t, content, "Total interest paid:  ₹9,625.00")
	assert.Contains(t, content, "Investment value:     ₹1.12 Lakhs")
	assert.Contains(t, content, "Net profit/loss:      ₹1,196.00")
	assert.Contains(t, content, "Decision:             YES, take the loan")
	assert.Contains(t, content, "Profitable above:     ₹49,642.11")
	assert.Contains(t, content, "Break-even return:    10.80% a year")
	assert.Contains(t, content, "◀ selected")
	assert.Contains(t, content, "Profitable from ₹50,000.00")
	assert.Contains(t, content, "KEY ASSUMPTIONS")
	assert.NotContains(t, content, "\x1b[", "no escape codes without a terminal")
}

func TestConsoleFormatter_Indefinite(t *testing.T) {
	dep, err := calc.CalculateDepletion(domain.DepletionPlan{InitialCapital: 100000, AnnualReturnPct: 5})
	require.NoError(t, err)
	out, err := ConsoleFormatter{}.Format(&domain.Report{ID: "x", Depletion: dep})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Your investment lasts beyond 1000 years and 0 months")
	assert.NotContains(t, string(out), "Runs out in")

	// Balance outgrows the float range long before the cap.
	dep, err = calc.CalculateDepletion(domain.DepletionPlan{InitialCapital: 100000, AnnualReturnPct: 300})
	require.NoError(t, err)
	out, err = ConsoleFormatter{}.Format(&domain.Report{ID: "x", Depletion: dep})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Your investment lasts beyond 1000 years and 0 months")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "WITHDRAWAL PLAN YEAR BY YEAR")
	assert.Contains(t, content, "DEPLETION YEAR BY YEAR")
	// 24-month plan: months 1, 13 and the final month 24.
	section := content[strings.Index(content, "WITHDRAWAL PLAN YEAR BY YEAR"):strings.Index(content, "DEPLETION YEAR BY YEAR")]
	assert.Equal(t, 3, strings.Count(section, "₹10,"), "one row per year plus the final month")
}

func TestYearlyPoints(t *testing.T) {
	var pts []domain.ProjectionPoint
	for m := 1; m <= 31; m++ {
		pts = append(pts, domain.ProjectionPoint{Month: m})
	}
	got := yearlyPoints(pts)
	months := make([]int, len(got))
	for i, p := range got {
		months[i] = p.Month
	}
	assert.Equal(t, []int{1, 13, 25, 31}, months)
}

func TestJSONFormatter(t *testing.T) {
	report := buildTestReport(t)
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "test-report", decoded["id"])
	loan := decoded["loan"].(map[string]any)
	assert.Equal(t, "take_loan", loan["decision"])
	assert.InDelta(t, 1196, loan["net_profit_loss"].(float64), 0.01)
	assert.Contains(t, decoded, "break_even")

	out, err = JSONFormatter{}.Format(&domain.Report{ID: "empty"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "investment")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Section", "Metric", "Value"}, records[0])

	values := map[string]string{}
	for _, r := range records[1:] {
		values[r[0]+"."+r[1]] = r[2]
	}
	assert.Equal(t, "24", values["investment.total_months"])
	assert.Equal(t, "31", values["depletion.elapsed_months"])
	assert.Equal(t, "28339.06", values["depletion.shortfall"])
	assert.Equal(t, "2000000.00", values["depletion.initial_capital"])
	assert.Equal(t, "20.00", values["depletion.initial_capital_lakhs"])
	assert.NotEmpty(t, values["investment.total_investment_crores"])
	assert.Equal(t, "9625.00", values["loan.total_interest_paid"])
	assert.Equal(t, "take_loan", values["loan.decision"])
	assert.Equal(t, "8", values["sensitivity.points"])
	assert.Equal(t, "50000.00", values["sensitivity.first_profitable_amount"])
}

func TestCSVDetailedExporter(t *testing.T) {
	report := buildTestReport(t)
	out, err := CSVDetailedExporter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	want := 1 + len(report.Investment.Trajectory) + len(report.Depletion.Trajectory) + len(report.Sensitivity.Points)
	assert.Len(t, records, want)

	first := records[1]
	assert.Equal(t, "investment", first[0])
	assert.Equal(t, "1", first[1])
	assert.Equal(t, "10000.00", first[4])

	last := records[len(records)-1]
	assert.Equal(t, "sensitivity", last[0])
	assert.Equal(t, "200000.00", last[5])
	assert.Equal(t, "false", last[8])
}

func TestFormatterAliasResolution(t *testing.T) {
	f := GetFormatterByName("verbose")
	require.NotNil(t, f)
	assert.Equal(t, "console-verbose", f.Name())

	f = GetFormatterByName(" JSON ")
	require.NotNil(t, f)
	assert.Equal(t, "json", f.Name())

	assert.Nil(t, GetFormatterByName("html"))
	assert.Equal(t, []string{"console", "console-verbose", "csv", "detailed-csv", "json"}, AvailableFormatterNames())
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "id-only", F: func(r *domain.Report) ([]byte, error) { return []byte(r.ID), nil }}
	out, err := f.Format(&domain.Report{ID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, "id-only", f.Name())
}

func TestWithRenderer(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	f := WithRenderer(ConsoleFormatter{}, r)
	assert.Same(t, r, f.(ConsoleFormatter).Renderer)

	f = WithRenderer(ConsoleVerboseFormatter{}, r)
	assert.Same(t, r, f.(ConsoleVerboseFormatter).Renderer)

	assert.Equal(t, JSONFormatter{}, WithRenderer(JSONFormatter{}, r))
}

func TestMonteCarloSections(t *testing.T) {
	mc, err := calc.RunMonteCarlo(context.Background(), domain.DepletionPlan{
		InitialCapital: 2000000, MonthlyWithdrawal: 63200, AnnualReturnPct: 3, AnnualGrowthPct: 6,
	}, domain.MonteCarloSettings{Simulations: 10, Seed: 1})
	require.NoError(t, err)
	report := &domain.Report{ID: "mc", MonteCarlo: mc}

	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "MONTE CARLO STRESS TEST")
	assert.Contains(t, content, "Simulations:        10 (seed 1)")
	assert.Contains(t, content, "Median:    lasts 2 years and 7 months")
	assert.Contains(t, content, "Money left after 50 years in 0.00% of runs")
	assert.NotContains(t, content, "Median balance left")
	assert.Contains(t, content, "normal distribution (mean 3.00%, deviation 0.00%)")

	out, err = CSVSummarizer{}.Format(report)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	values := map[string]string{}
	for _, r := range records[1:] {
		values[r[0]+"."+r[1]] = r[2]
	}
	assert.Equal(t, "10", values["monte_carlo.simulations"])
	assert.Equal(t, "600", values["monte_carlo.horizon_months"])
	assert.Equal(t, "0", values["monte_carlo.success_rate"])
	assert.Equal(t, "31", values["monte_carlo.p50_months"])
}

func TestMonteCarloSections_SurvivesHorizon(t *testing.T) {
	mc, err := calc.RunMonteCarlo(context.Background(), domain.DepletionPlan{
		InitialCapital: 100000, MonthlyWithdrawal: 500, AnnualReturnPct: 12,
	}, domain.MonteCarloSettings{Simulations: 4, HorizonYears: 10, Seed: 1})
	require.NoError(t, err)

	out, err := ConsoleFormatter{}.Format(&domain.Report{ID: "mc", MonteCarlo: mc})
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Worst 10%: lasts beyond the horizon")
	assert.Contains(t, content, "Money left after 10 years in 100.00% of runs")
	assert.Contains(t, content, "Median balance left:")
}
