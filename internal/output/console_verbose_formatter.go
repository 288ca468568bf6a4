package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the summary followed by year-by-year
// balance tables for the withdrawal and depletion trajectories.
type ConsoleVerboseFormatter struct {
	Renderer *lipgloss.Renderer
}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	th := newTheme(c.Renderer, &buf)
	writeSummary(&buf, th, report)

	if inv := report.Investment; inv != nil {
		fmt.Fprintln(&buf)
		writeTrajectory(&buf, th, "WITHDRAWAL PLAN YEAR BY YEAR", inv.Trajectory)
	}
	if dep := report.Depletion; dep != nil {
		fmt.Fprintln(&buf)
		writeTrajectory(&buf, th, "DEPLETION YEAR BY YEAR", dep.Trajectory)
	}
	return buf.Bytes(), nil
}

// writeTrajectory prints the first month of every year plus the final month.
func writeTrajectory(buf *bytes.Buffer, th theme, title string, points []domain.ProjectionPoint) {
	fmt.Fprintln(buf, th.Section.Render(title))
	fmt.Fprintf(buf, "  %-6s %-7s %-22s %s\n", "Year", "Month", "Balance", "Withdrawal")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 60))
	for _, p := range yearlyPoints(points) {
		fmt.Fprintf(buf, "  %-6d %-7d %-22s %s\n", (p.Month-1)/12+1, p.Month,
			FormatCurrency(p.BalanceBeforeWithdrawal), FormatCurrency(p.Withdrawal))
	}
}

func yearlyPoints(points []domain.ProjectionPoint) []domain.ProjectionPoint {
	var out []domain.ProjectionPoint
	for i, p := range points {
		if p.Month%12 == 1 || i == len(points)-1 {
			out = append(out, p)
		}
	}
	return out
}
