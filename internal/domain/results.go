package domain

import (
	"time"

	"github.com/rpgo/swp-calculator/pkg/dateutil"
)

// ProjectionPoint is one month of a balance trajectory.
type ProjectionPoint struct {
	Month                   int     `json:"month"` // 1-based
	BalanceBeforeWithdrawal float64 `json:"balance_before_withdrawal"`
	Withdrawal              float64 `json:"withdrawal"`
}

// Year returns the fractional year the point falls in (month 12 -> 1.0).
func (p ProjectionPoint) Year() float64 {
	return float64(p.Month) / 12
}

// RequiredInvestmentResult is the capital needed today to fund a WithdrawalPlan
// together with the reconstructed month-by-month trajectory.
type RequiredInvestmentResult struct {
	Plan            WithdrawalPlan    `json:"plan"`
	Rates           RateSet           `json:"rates"`
	TotalMonths     int               `json:"total_months"`
	PVAnnuity       float64           `json:"pv_annuity"`
	PVFinal         float64           `json:"pv_final"`
	TotalInvestment float64           `json:"total_investment"`
	FVAnnuity       float64           `json:"fv_annuity"`
	FutureValue     float64           `json:"future_value"`
	FinalBalance    float64           `json:"final_balance"` // after the last withdrawal
	Trajectory      []ProjectionPoint `json:"trajectory"`
}

// DepletionResult reports how long a capital lasts under growing withdrawals.
// Terminated is false when the safety cap was reached with money left.
type DepletionResult struct {
	Plan          DepletionPlan     `json:"plan"`
	Rates         RateSet           `json:"rates"`
	ElapsedMonths int               `json:"elapsed_months"`
	Terminated    bool              `json:"terminated"`
	Shortfall     float64           `json:"shortfall"`
	Trajectory    []ProjectionPoint `json:"trajectory"`
}

// Years returns the whole years of ElapsedMonths.
func (r DepletionResult) Years() int {
	y, _ := dateutil.SplitMonths(r.ElapsedMonths)
	return y
}

// Months returns the months remaining after Years.
func (r DepletionResult) Months() int {
	_, m := dateutil.SplitMonths(r.ElapsedMonths)
	return m
}

// DepletionDate is the calendar month in which the balance runs out when the
// first withdrawal happens in the month of start. The zero time is returned
// when the simulation did not terminate.
func (r DepletionResult) DepletionDate(start time.Time) time.Time {
	if !r.Terminated || r.ElapsedMonths == 0 {
		return time.Time{}
	}
	return dateutil.AddMonths(start, r.ElapsedMonths-1)
}

// Decision is the verdict of a loan-versus-investment comparison.
type Decision string

const (
	TakeLoan      Decision = "take_loan"
	DoNotTakeLoan Decision = "do_not_take_loan"
)

// String returns a human readable verdict.
func (d Decision) String() string {
	switch d {
	case TakeLoan:
		return "YES, take the loan"
	case DoNotTakeLoan:
		return "NO, not worth it"
	default:
		return string(d)
	}
}

// LoanOutcome compares what a loan costs with what its proceeds earn.
type LoanOutcome struct {
	Parameters          LoanParameters `json:"parameters"`
	MonthlyInterestRate float64        `json:"monthly_interest_rate"`
	MonthlyReturnRate   float64        `json:"monthly_return_rate"`
	TotalInterestPaid   float64        `json:"total_interest_paid"`
	TotalOutflow        float64        `json:"total_outflow"`
	InvestmentValue     float64        `json:"investment_value"`
	NetProfitLoss       float64        `json:"net_profit_loss"`
	Decision            Decision       `json:"decision"`
}

// LoanBreakEven locates the thresholds of a loan decision. AmountExists is false
// when no loan amount can be profitable at the given rates; ReturnDefined is
// false for a zero loan amount.
type LoanBreakEven struct {
	MarginPerRupee          float64 `json:"margin_per_rupee"`
	MinimumProfitableAmount float64 `json:"minimum_profitable_amount"`
	AmountExists            bool    `json:"amount_exists"`
	BreakEvenReturnPct      float64 `json:"break_even_return_pct"`
	ReturnDefined           bool    `json:"return_defined"`
}

// SensitivityPoint is one loan amount of a sweep.
type SensitivityPoint struct {
	LoanAmount    float64  `json:"loan_amount"`
	NetProfitLoss float64  `json:"net_profit_loss"`
	Decision      Decision `json:"decision"`
	Selected      bool     `json:"selected"`
}

// SensitivitySeries is net profit/loss across loan amounts, ordered by amount.
// It always contains the amount from Template; SelectedIndex points at it.
type SensitivitySeries struct {
	Template      LoanParameters     `json:"template"`
	Range         SweepRange         `json:"range"`
	Points        []SensitivityPoint `json:"points"`
	SelectedIndex int                `json:"selected_index"`
}

// Report bundles every result produced from one Configuration.
type Report struct {
	ID          string                    `json:"id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	StartDate   *time.Time                `json:"start_date,omitempty"` // month of the first withdrawal
	Investment  *RequiredInvestmentResult `json:"investment,omitempty"`
	Depletion   *DepletionResult          `json:"depletion,omitempty"`
	Loan        *LoanOutcome              `json:"loan,omitempty"`
	BreakEven   *LoanBreakEven            `json:"break_even,omitempty"`
	Sensitivity *SensitivitySeries        `json:"sensitivity,omitempty"`
	MonteCarlo  *MonteCarloResult         `json:"monte_carlo,omitempty"`
}
