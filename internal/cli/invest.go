package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/domain"
)

func (a *app) investCmd() *cobra.Command {
	var plan domain.WithdrawalPlan

	c := &cobra.Command{
		Use:   "invest",
		Short: "Capital needed today to fund a growing monthly withdrawal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.engine.RequiredInvestment(plan)
			if err != nil {
				return err
			}
			report := calculation.NewReport()
			report.Investment = result
			return a.render(cmd, report)
		},
	}

	c.Flags().Float64Var(&plan.DurationYears, "years", 100, "How many years the withdrawals must last")
	c.Flags().Float64Var(&plan.FinalBalance, "final-balance", 0, "Balance to leave after the last withdrawal (₹)")
	c.Flags().Float64Var(&plan.MonthlyWithdrawal, "withdrawal", 63200, "First monthly withdrawal (₹)")
	c.Flags().Float64Var(&plan.AnnualReturnPct, "return", 6.1, "Expected annual return (%)")
	c.Flags().Float64Var(&plan.AnnualGrowthPct, "growth", 6.0, "Annual increase in the withdrawal (%)")
	return c
}
