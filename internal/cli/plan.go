package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/swp-calculator/internal/config"
	"github.com/rpgo/swp-calculator/internal/output"
)

func (a *app) planCmd() *cobra.Command {
	var start string

	c := &cobra.Command{
		Use:   "plan FILE",
		Short: "Run every section of a YAML plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			report, err := a.engine.RunPlan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := setStart(report, start); err != nil {
				return err
			}
			return a.render(cmd, report)
		},
	}
	c.Flags().StringVar(&start, "start", "", "Month of the first withdrawal (YYYY-MM) to date the depletion")
	return c
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example plan file with the default inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if a.settings.Output != "" {
				if err := output.SaveConfiguration(cfg, a.settings.Output); err != nil {
					return fmt.Errorf("failed to save example plan: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Example plan written to %s\n", a.settings.Output)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
