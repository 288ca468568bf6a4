package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rpgo/swp-calculator/internal/calculation"
	"github.com/rpgo/swp-calculator/internal/config"
	"github.com/rpgo/swp-calculator/internal/domain"
	"github.com/rpgo/swp-calculator/internal/logging"
	"github.com/rpgo/swp-calculator/internal/output"
)

// Execute runs the swpcalc command tree and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v        *viper.Viper
	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
}

// NewRootCmd builds the command tree. Persistent flags are bound to viper so
// SWPCALC_* environment variables fill in anything not given on the command line.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), engine: calculation.NewCalculationEngine()}

	cmd := &cobra.Command{
		Use:          "swpcalc",
		Short:        "Systematic withdrawal and loan-against-mutual-fund calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.String(config.KeyFormat, "console", "Report format: "+strings.Join(output.AvailableFormatterNames(), "|"))
	pf.StringP(config.KeyOutput, "o", "", "Write the report to this file instead of stdout")
	pf.String(config.KeyLogLevel, "warn", "Log level: debug|info|warn|error")
	pf.String(config.KeyLogFormat, "console", "Log format: console|json")
	_ = a.v.BindPFlags(pf)

	cmd.AddCommand(
		a.investCmd(),
		a.durationCmd(),
		a.stressCmd(),
		a.lamfCmd(),
		a.sweepCmd(),
		a.planCmd(),
		a.exampleCmd(),
	)
	return cmd
}

func (a *app) setup() error {
	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	a.engine.SetLogger(logger.Sugar())
	return nil
}

// render writes report to --output, or to stdout styled for the terminal.
func (a *app) render(cmd *cobra.Command, report *domain.Report) error {
	f, err := output.LookupFormatter(a.settings.Format)
	if err != nil {
		return err
	}
	if a.settings.Output != "" {
		if err := output.WriteFormatted(f, report, a.settings.Output); err != nil {
			return err
		}
		a.logger.Info("report written", zap.String("path", a.settings.Output), zap.String("format", f.Name()))
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", a.settings.Output)
		return nil
	}

	f = output.WithRenderer(f, lipgloss.NewRenderer(cmd.OutOrStdout()))
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
