package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/homeplan/homeplan/internal/calculation"
	"github.com/homeplan/homeplan/internal/config"
	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/internal/output"
)

var (
	configFile string
	format     string
	verbose    bool

	log = logrus.New()
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homeplan",
		Short: "Mortgage amortization and settlement cash-flow planner",
		Long: `homeplan simulates mortgage repayment against an offset account and
projects day-by-day cash flow across candidate settlement dates, ranking
the dates by final balance.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetLevel(logrus.WarnLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if lvl, err := logrus.ParseLevel(os.Getenv("HOMEPLAN_LOG_LEVEL")); err == nil {
				log.SetLevel(lvl)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to YAML configuration file")
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "console", "output format (see 'formats')")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(amortizeCmd(), moveplanCmd(), exampleConfigCmd(), formatsCmd())
	return cmd
}

// loadConfiguration reads the configured file, or falls back to the
// built-in example defaults when no file is given.
func loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if configFile == "" {
		log.Info("no config file given, using built-in defaults")
		return parser.CreateExampleConfiguration(), nil
	}
	return parser.LoadFromFile(configFile)
}

func amortizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amortize",
		Short: "Simulate mortgage repayment with an offset account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}
			if cfg.Loan == nil {
				return fmt.Errorf("configuration has no loan section")
			}

			engine := calculation.NewAmortizationEngine()
			engine.SetLogger(log)
			schedule, err := engine.Simulate(cfg.Loan.Terms, cfg.Loan.Offset)
			if err != nil {
				return err
			}

			return output.GenerateReport(&domain.Report{
				Loan:     cfg.Loan,
				Schedule: schedule,
			}, format)
		},
	}
}

func moveplanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moveplan",
		Short: "Compare cash flow across candidate settlement dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}
			if cfg.MovePlan == nil {
				return fmt.Errorf("configuration has no move_plan section")
			}

			parser := config.NewInputParser()
			dates := parser.ResolveSettlementDates(cfg.MovePlan)
			rules := parser.MovePlanRules(cfg.MovePlan)

			engine := calculation.NewScenarioEngine()
			engine.SetLogger(log)
			comparison, err := engine.CompareScenarios(cfg.MovePlan.StartingBalance, dates, rules)
			if err != nil {
				return err
			}

			for _, sc := range comparison.Scenarios {
				if sc.UsedFallbackDate {
					log.Warnf("scenario %s used a fallback settlement date; check the configured dates", sc.PlanName)
				}
			}

			return output.GenerateReport(&domain.Report{
				Comparison: comparison,
			}, format)
		},
	}
}

func exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [filename]",
		Short: "Write an example YAML configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "homeplan.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Printf("Example configuration written to %s\n", filename)
			return nil
		},
	}
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Printf("  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
