package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/domain"
)

func addLoanFlags(c *cobra.Command, p *domain.LoanParameters) {
	c.Flags().Float64Var(&p.LoanAmount, "amount", 100000, "Loan amount (₹)")
	c.Flags().Float64Var(&p.AnnualInterestRatePct, "interest", 10.5, "Annual loan interest rate (%), charged flat")
	c.Flags().Float64Var(&p.ProcessingFee, "fee", 1179, "Processing fee (₹)")
	c.Flags().IntVar(&p.TenureMonths, "tenure", 12, "Loan tenure (months)")
	c.Flags().Float64Var(&p.ExpectedAnnualReturnPct, "return", 12, "Expected annual return on the invested amount (%)")
}

// loanReport evaluates p and its break-even figures.
func (a *app) loanReport(p domain.LoanParameters) (*domain.Report, error) {
	outcome, err := a.engine.LoanOutcome(p)
	if err != nil {
		return nil, err
	}
	be, err := a.engine.LoanBreakEven(p)
	if err != nil {
		return nil, err
	}
	report := calculation.NewReport()
	report.Loan = outcome
	report.BreakEven = be
	return report, nil
}

func (a *app) lamfCmd() *cobra.Command {
	var params domain.LoanParameters

	c := &cobra.Command{
		Use:   "lamf",
		Short: "Is a loan against mutual funds worth taking to invest the proceeds?",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := a.loanReport(params)
			if err != nil {
				return err
			}
			return a.render(cmd, report)
		},
	}
	addLoanFlags(c, &params)
	return c
}

func (a *app) sweepCmd() *cobra.Command {
	var params domain.LoanParameters
	rng := domain.DefaultSweepRange

	c := &cobra.Command{
		Use:   "sweep",
		Short: "Net profit/loss of a loan across a range of loan amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := a.loanReport(params)
			if err != nil {
				return err
			}
			series, err := a.engine.LoanSensitivity(params, rng)
			if err != nil {
				return err
			}
			report.Sensitivity = series
			return a.render(cmd, report)
		},
	}
	addLoanFlags(c, &params)
	c.Flags().Float64Var(&rng.Min, "min", rng.Min, "Smallest loan amount in the sweep (₹)")
	c.Flags().Float64Var(&rng.Max, "max", rng.Max, "Largest loan amount in the sweep (₹)")
	c.Flags().Float64Var(&rng.Step, "step", rng.Step, "Step between loan amounts (₹)")
	return c
}
