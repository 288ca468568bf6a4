package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// CSVDetailedExporter writes every series in the report as rows: the monthly
// trajectories of the withdrawal and depletion plans and the loan sweep.
// Columns that do not apply to a series are left empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Series", "Month", "Year", "BalanceBeforeWithdrawal", "Withdrawal", "LoanAmount", "NetProfitLoss", "Decision", "Selected"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	writePoints := func(series string, points []domain.ProjectionPoint) error {
		for _, p := range points {
			row := []string{
				series,
				intToString(p.Month),
				floatCell(p.Year()),
				plainAmount(p.BalanceBeforeWithdrawal),
				plainAmount(p.Withdrawal),
				"", "", "", "",
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if inv := report.Investment; inv != nil {
		if err := writePoints("investment", inv.Trajectory); err != nil {
			return nil, err
		}
	}
	if dep := report.Depletion; dep != nil {
		if err := writePoints("depletion", dep.Trajectory); err != nil {
			return nil, err
		}
	}
	if s := report.Sensitivity; s != nil {
		for _, p := range s.Points {
			row := []string{
				"sensitivity", "", "", "", "",
				plainAmount(p.LoanAmount),
				plainAmount(p.NetProfitLoss),
				string(p.Decision),
				boolToString(p.Selected),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// floatCell keeps full precision for rates, which lose meaning at two decimals.
func floatCell(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
