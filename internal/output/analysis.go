package output

import (
	"github.com/rpgo/swp-calculator/internal/domain"
)

// SweepSummary condenses a sensitivity series into the figures a reader looks for first.
type SweepSummary struct {
	Points                int
	ProfitablePoints      int
	HasProfitable         bool
	FirstProfitableAmount float64
	Best                  domain.SensitivityPoint
	Worst                 domain.SensitivityPoint
}

// AnalyzeSensitivity finds the smallest profitable amount and the best and
// worst points of a series. Ties go to the smaller loan amount.
func AnalyzeSensitivity(series *domain.SensitivitySeries) SweepSummary {
	if series == nil || len(series.Points) == 0 {
		return SweepSummary{}
	}
	s := SweepSummary{Points: len(series.Points), Best: series.Points[0], Worst: series.Points[0]}
	for _, p := range series.Points {
		if p.Decision == domain.TakeLoan {
			if !s.HasProfitable {
				s.FirstProfitableAmount = p.LoanAmount
				s.HasProfitable = true
			}
			s.ProfitablePoints++
		}
		if p.NetProfitLoss > s.Best.NetProfitLoss {
			s.Best = p
		}
		if p.NetProfitLoss < s.Worst.NetProfitLoss {
			s.Worst = p
		}
	}
	return s
}
