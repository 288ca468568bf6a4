package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per headline figure).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Metric", "Value"}); err != nil {
		return nil, err
	}
	for _, row := range summaryRows(report) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func summaryRows(report *domain.Report) [][]string {
	var rows [][]string
	add := func(section, metric, value string) {
		rows = append(rows, []string{section, metric, value})
	}
	if inv := report.Investment; inv != nil {
		add("investment", "total_months", intToString(inv.TotalMonths))
		add("investment", "monthly_return_rate", floatCell(inv.Rates.MonthlyReturn))
		add("investment", "monthly_growth_rate", floatCell(inv.Rates.MonthlyGrowth))
		add("investment", "pv_annuity", plainAmount(inv.PVAnnuity))
		add("investment", "pv_final", plainAmount(inv.PVFinal))
		add("investment", "total_investment", plainAmount(inv.TotalInvestment))
		add("investment", "total_investment_crores", croresCell(inv.TotalInvestment))
		add("investment", "fv_annuity", plainAmount(inv.FVAnnuity))
		add("investment", "future_value", plainAmount(inv.FutureValue))
		add("investment", "final_balance", plainAmount(inv.FinalBalance))
	}
	if dep := report.Depletion; dep != nil {
		add("depletion", "initial_capital", plainAmount(dep.Plan.InitialCapital))
		add("depletion", "initial_capital_lakhs", lakhsCell(dep.Plan.InitialCapital))
		add("depletion", "elapsed_months", intToString(dep.ElapsedMonths))
		add("depletion", "years", intToString(dep.Years()))
		add("depletion", "months", intToString(dep.Months()))
		add("depletion", "terminated", boolToString(dep.Terminated))
		add("depletion", "shortfall", plainAmount(dep.Shortfall))
	}
	if mc := report.MonteCarlo; mc != nil {
		add("monte_carlo", "simulations", intToString(mc.Settings.Simulations))
		add("monte_carlo", "seed", strconv.FormatInt(mc.Settings.Seed, 10))
		add("monte_carlo", "horizon_months", intToString(mc.HorizonMonths))
		add("monte_carlo", "success_rate", floatCell(mc.SuccessRate))
		add("monte_carlo", "p10_months", intToString(mc.Percentiles.P10))
		add("monte_carlo", "p50_months", intToString(mc.Percentiles.P50))
		add("monte_carlo", "p90_months", intToString(mc.Percentiles.P90))
		add("monte_carlo", "median_ending_balance", plainAmount(mc.MedianEnding))
	}
	if loan := report.Loan; loan != nil {
		add("loan", "monthly_interest_rate", floatCell(loan.MonthlyInterestRate))
		add("loan", "monthly_return_rate", floatCell(loan.MonthlyReturnRate))
		add("loan", "total_interest_paid", plainAmount(loan.TotalInterestPaid))
		add("loan", "total_outflow", plainAmount(loan.TotalOutflow))
		add("loan", "investment_value", plainAmount(loan.InvestmentValue))
		add("loan", "net_profit_loss", plainAmount(loan.NetProfitLoss))
		add("loan", "decision", string(loan.Decision))
	}
	if be := report.BreakEven; be != nil {
		if be.AmountExists {
			add("break_even", "minimum_profitable_amount", plainAmount(be.MinimumProfitableAmount))
		}
		if be.ReturnDefined {
			add("break_even", "break_even_return_pct", floatCell(be.BreakEvenReturnPct))
		}
	}
	if s := report.Sensitivity; s != nil {
		sum := AnalyzeSensitivity(s)
		add("sensitivity", "points", intToString(sum.Points))
		add("sensitivity", "profitable_points", intToString(sum.ProfitablePoints))
		if sum.HasProfitable {
			add("sensitivity", "first_profitable_amount", plainAmount(sum.FirstProfitableAmount))
		}
		add("sensitivity", "best_amount", plainAmount(sum.Best.LoanAmount))
		add("sensitivity", "best_net_profit_loss", plainAmount(sum.Best.NetProfitLoss))
	}
	return rows
}
