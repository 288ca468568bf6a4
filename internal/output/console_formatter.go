package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// ConsoleFormatter renders a styled summary of every section in a report.
// Renderer decides colour support; nil renders plain text.
type ConsoleFormatter struct {
	Renderer *lipgloss.Renderer
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	th := newTheme(c.Renderer, &buf)
	writeSummary(&buf, th, report)
	return buf.Bytes(), nil
}

// WithRenderer returns f styled for r when f is a console formatter and f unchanged otherwise.
func WithRenderer(f Formatter, r *lipgloss.Renderer) Formatter {
	switch c := f.(type) {
	case ConsoleFormatter:
		c.Renderer = r
		return c
	case ConsoleVerboseFormatter:
		c.Renderer = r
		return c
	}
	return f
}

type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Headline lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Card     lipgloss.Style
}

func newTheme(r *lipgloss.Renderer, w io.Writer) theme {
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Section:  r.NewStyle().Bold(true).Underline(true),
		Headline: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Good:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Bad:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

func (th theme) decision(d domain.Decision) string {
	if d == domain.TakeLoan {
		return th.Good.Render(d.String())
	}
	return th.Bad.Render(d.String())
}

func writeSummary(buf *bytes.Buffer, th theme, report *domain.Report) {
	fmt.Fprintln(buf, th.Title.Render("SWP CALCULATOR REPORT"))
	fmt.Fprintln(buf, th.Subtitle.Render(fmt.Sprintf("Report %s · generated %s", report.ID, report.GeneratedAt.Format("2006-01-02 15:04"))))
	fmt.Fprintln(buf)

	if inv := report.Investment; inv != nil {
		writeInvestment(buf, th, inv)
	}
	if dep := report.Depletion; dep != nil {
		writeDepletion(buf, th, dep, report)
	}
	if mc := report.MonteCarlo; mc != nil {
		writeMonteCarlo(buf, th, mc)
	}
	if loan := report.Loan; loan != nil {
		writeLoan(buf, th, loan, report.BreakEven)
	}
	if s := report.Sensitivity; s != nil {
		writeSensitivity(buf, th, s)
	}

	fmt.Fprintln(buf, th.Section.Render("KEY ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(buf, "• %s\n", a)
	}
}

func writeInvestment(buf *bytes.Buffer, th theme, inv *domain.RequiredInvestmentResult) {
	fmt.Fprintln(buf, th.Section.Render("REQUIRED INVESTMENT"))
	fmt.Fprintf(buf, "  Duration:                 %v years (%d months)\n", inv.Plan.DurationYears, inv.TotalMonths)
	fmt.Fprintf(buf, "  First monthly withdrawal: %s\n", FormatCurrency(inv.Plan.MonthlyWithdrawal))
	fmt.Fprintf(buf, "  Withdrawal growth:        %s a year (%s a month)\n", FormatPercentage(inv.Rates.AnnualGrowthPct), FormatMonthlyRate(inv.Rates.MonthlyGrowth))
	fmt.Fprintf(buf, "  Expected return:          %s a year (%s a month)\n", FormatPercentage(inv.Rates.AnnualReturnPct), FormatMonthlyRate(inv.Rates.MonthlyReturn))
	fmt.Fprintf(buf, "  Final balance desired:    %s\n", FormatCurrency(inv.Plan.FinalBalance))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  PV of withdrawals:        %s\n", FormatCurrency(inv.PVAnnuity))
	fmt.Fprintf(buf, "  PV of final balance:      %s\n", FormatCurrency(inv.PVFinal))
	fmt.Fprintf(buf, "  FV of withdrawals:        %s\n", FormatCurrency(inv.FVAnnuity))
	fmt.Fprintf(buf, "  Investment grown %v years: %s\n", inv.Plan.DurationYears, FormatCurrency(inv.FutureValue))
	fmt.Fprintf(buf, "  Balance after last month: %s\n", FormatCurrency(inv.FinalBalance))
	fmt.Fprintln(buf, th.Card.Render(th.Headline.Render(
		fmt.Sprintf("You need to invest %s today (%s)", FormatCrores(inv.TotalInvestment), FormatCurrency(inv.TotalInvestment)))))
	fmt.Fprintln(buf)
}

func writeDepletion(buf *bytes.Buffer, th theme, dep *domain.DepletionResult, report *domain.Report) {
	fmt.Fprintln(buf, th.Section.Render("INVESTMENT DURATION"))
	fmt.Fprintf(buf, "  Current investment:         %s (%s)\n", FormatWholeRupees(dep.Plan.InitialCapital), FormatCompact(dep.Plan.InitialCapital))
	fmt.Fprintf(buf, "  Initial monthly withdrawal: %s\n", FormatCurrency(dep.Plan.MonthlyWithdrawal))
	fmt.Fprintf(buf, "  Expected return:            %s a year (%s a month)\n", FormatPercentage(dep.Rates.AnnualReturnPct), FormatMonthlyRate(dep.Rates.MonthlyReturn))
	fmt.Fprintf(buf, "  Inflation:                  %s a year (%s a month)\n", FormatPercentage(dep.Rates.AnnualGrowthPct), FormatMonthlyRate(dep.Rates.MonthlyGrowth))

	var headline string
	if !dep.Terminated {
		headline = fmt.Sprintf("Your investment lasts beyond %s", FormatDuration(dep.Years(), dep.Months()))
	} else {
		headline = fmt.Sprintf("Your investment will last %s", FormatDuration(dep.Years(), dep.Months()))
	}
	fmt.Fprintln(buf, th.Card.Render(th.Headline.Render(headline)))
	if dep.Terminated {
		if dep.Shortfall > 0 {
			fmt.Fprintf(buf, "  Last withdrawal short by:   %s\n", FormatCurrency(dep.Shortfall))
		}
		if report.StartDate != nil {
			fmt.Fprintf(buf, "  Runs out in:                %s\n", dep.DepletionDate(*report.StartDate).Format("January 2006"))
		}
	}
	fmt.Fprintln(buf)
}

func writeMonteCarlo(buf *bytes.Buffer, th theme, mc *domain.MonteCarloResult) {
	fmt.Fprintln(buf, th.Section.Render("MONTE CARLO STRESS TEST"))
	fmt.Fprintf(buf, "  Simulations:        %d (seed %d)\n", mc.Settings.Simulations, mc.Settings.Seed)
	fmt.Fprintf(buf, "  Return volatility:  %s a year around %s\n", FormatPercentage(mc.Settings.ReturnVolatilityPct), FormatPercentage(mc.Plan.AnnualReturnPct))
	fmt.Fprintf(buf, "  Horizon:            %d years\n", mc.Settings.HorizonYears)
	fmt.Fprintln(buf)

	p := mc.Percentiles
	for _, row := range []struct {
		label  string
		months int
	}{
		{"Worst 10%", p.P10}, {"Worst 25%", p.P25}, {"Median", p.P50}, {"Best 25%", p.P75}, {"Best 10%", p.P90},
	} {
		lasts := FormatMonths(row.months)
		if row.months >= mc.HorizonMonths {
			lasts = "beyond the horizon"
		}
		fmt.Fprintf(buf, "  %-10s lasts %s\n", row.label+":", lasts)
	}

	style := th.Good
	if mc.SuccessRate < 0.5 {
		style = th.Bad
	}
	fmt.Fprintln(buf, th.Card.Render(style.Render(
		fmt.Sprintf("Money left after %d years in %s of runs", mc.Settings.HorizonYears, FormatPercentage(mc.SuccessRate*100)))))
	if mc.MedianEnding > 0 {
		fmt.Fprintf(buf, "  Median balance left: %s\n", FormatCompact(mc.MedianEnding))
	}
	fmt.Fprintln(buf)
}

func writeLoan(buf *bytes.Buffer, th theme, loan *domain.LoanOutcome, be *domain.LoanBreakEven) {
	p := loan.Parameters
	fmt.Fprintln(buf, th.Section.Render("LOAN AGAINST MUTUAL FUNDS"))
	fmt.Fprintf(buf, "  Loan amount:          %s\n", FormatCurrency(p.LoanAmount))
	fmt.Fprintf(buf, "  Interest rate:        %s a year (%s a month, flat)\n", FormatPercentage(p.AnnualInterestRatePct), FormatMonthlyRate(loan.MonthlyInterestRate))
	fmt.Fprintf(buf, "  Processing fee:       %s\n", FormatCurrency(p.ProcessingFee))
	fmt.Fprintf(buf, "  Tenure:               %d months\n", p.TenureMonths)
	fmt.Fprintf(buf, "  Expected return:      %s a year (%s a month)\n", FormatPercentage(p.ExpectedAnnualReturnPct), FormatMonthlyRate(loan.MonthlyReturnRate))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Total interest paid:  %s\n", FormatCompact(loan.TotalInterestPaid))
	fmt.Fprintf(buf, "  Total outflow:        %s\n", FormatCompact(loan.TotalOutflow))
	fmt.Fprintf(buf, "  Investment value:     %s\n", FormatCompact(loan.InvestmentValue))
	fmt.Fprintf(buf, "  Net profit/loss:      %s\n", FormatCompact(loan.NetProfitLoss))
	fmt.Fprintf(buf, "  Decision:             %s\n", th.decision(loan.Decision))
	if be != nil {
		if be.AmountExists {
			fmt.Fprintf(buf, "  Profitable above:     %s\n", FormatCurrency(be.MinimumProfitableAmount))
		} else {
			fmt.Fprintln(buf, "  Profitable above:     no amount at these rates")
		}
		if be.ReturnDefined {
			fmt.Fprintf(buf, "  Break-even return:    %s a year\n", FormatPercentage(be.BreakEvenReturnPct))
		}
	}
	fmt.Fprintln(buf)
}

func writeSensitivity(buf *bytes.Buffer, th theme, s *domain.SensitivitySeries) {
	fmt.Fprintln(buf, th.Section.Render("NET PROFIT/LOSS BY LOAN AMOUNT"))
	fmt.Fprintf(buf, "  %-16s %-18s %s\n", "Loan amount", "Net profit/loss", "Decision")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 52))
	for _, p := range s.Points {
		marker := ""
		if p.Selected {
			marker = "  ◀ selected"
		}
		fmt.Fprintf(buf, "  %-16s %-18s %s%s\n", FormatCurrency(p.LoanAmount), FormatCompact(p.NetProfitLoss), th.decision(p.Decision), marker)
	}
	sum := AnalyzeSensitivity(s)
	if sum.HasProfitable {
		fmt.Fprintf(buf, "  Profitable from %s (%d of %d amounts); best %s at %s\n",
			FormatCurrency(sum.FirstProfitableAmount), sum.ProfitablePoints, sum.Points,
			FormatCompact(sum.Best.NetProfitLoss), FormatCurrency(sum.Best.LoanAmount))
	} else {
		fmt.Fprintln(buf, "  No loan amount in the range is profitable")
	}
	fmt.Fprintln(buf)
}
