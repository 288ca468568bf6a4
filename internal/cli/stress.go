package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/domain"
)

func (a *app) stressCmd() *cobra.Command {
	var plan domain.DepletionPlan
	var settings domain.MonteCarloSettings
	var capitalLakhs float64

	c := &cobra.Command{
		Use:   "stress",
		Short: "Monte Carlo stress test of the depletion plan with volatile returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolveCapital(cmd, &plan, capitalLakhs)
			report := calculation.NewReport()

			depletion, err := a.engine.InvestmentDuration(plan)
			if err != nil {
				return err
			}
			report.Depletion = depletion

			result, err := a.engine.StressTest(cmd.Context(), plan, settings)
			if err != nil {
				return err
			}
			report.MonteCarlo = result
			return a.render(cmd, report)
		},
	}

	addDepletionFlags(c, &plan, &capitalLakhs)
	c.Flags().IntVar(&settings.Simulations, "simulations", domain.DefaultSimulations, "Number of simulated paths")
	c.Flags().Float64Var(&settings.ReturnVolatilityPct, "volatility", 12, "Standard deviation of the annual return (%)")
	c.Flags().IntVar(&settings.HorizonYears, "horizon", domain.DefaultHorizonYears, "Years simulated per path")
	c.Flags().Int64Var(&settings.Seed, "seed", 0, "Random seed (0 picks one)")
	return c
}
