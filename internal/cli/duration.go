package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/domain"
	"github.com/rpgo/swp-calculator/pkg/dateutil"
	money "github.com/rpgo/swp-calculator/pkg/decimal"
)

func (a *app) durationCmd() *cobra.Command {
	var plan domain.DepletionPlan
	var capitalLakhs float64
	var start string

	c := &cobra.Command{
		Use:   "duration",
		Short: "How long a capital lasts under inflation-linked withdrawals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolveCapital(cmd, &plan, capitalLakhs)
			report := calculation.NewReport()
			if err := setStart(report, start); err != nil {
				return err
			}
			result, err := a.engine.InvestmentDuration(plan)
			if err != nil {
				return err
			}
			report.Depletion = result
			return a.render(cmd, report)
		},
	}

	addDepletionFlags(c, &plan, &capitalLakhs)
	c.Flags().StringVar(&start, "start", "", "Month of the first withdrawal (YYYY-MM) to date the depletion")
	return c
}

func addDepletionFlags(c *cobra.Command, plan *domain.DepletionPlan, capitalLakhs *float64) {
	c.Flags().Float64Var(&plan.InitialCapital, "capital", 0, "Current investment (₹)")
	c.Flags().Float64Var(capitalLakhs, "capital-lakhs", 20, "Current investment in lakhs (used unless --capital is given)")
	c.Flags().Float64Var(&plan.MonthlyWithdrawal, "withdrawal", 63200, "Initial monthly withdrawal (₹)")
	c.Flags().Float64Var(&plan.AnnualReturnPct, "return", 3, "Expected annual return (%)")
	c.Flags().Float64Var(&plan.AnnualGrowthPct, "inflation", 6, "Annual increase in the withdrawal (%)")
	c.MarkFlagsMutuallyExclusive("capital", "capital-lakhs")
}

// resolveCapital applies --capital-lakhs unless --capital was given.
func resolveCapital(cmd *cobra.Command, plan *domain.DepletionPlan, capitalLakhs float64) {
	if !cmd.Flags().Changed("capital") {
		plan.InitialCapital = money.FromLakhs(capitalLakhs).InexactFloat64()
	}
}

func setStart(report *domain.Report, start string) error {
	if start == "" {
		return nil
	}
	t, err := dateutil.ParseYearMonth(start)
	if err != nil {
		return fmt.Errorf("%w: start must be YYYY-MM, got %q", domain.ErrInvalidParameter, start)
	}
	report.StartDate = &t
	return nil
}
