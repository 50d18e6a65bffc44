/*
PURPOSE:
  Defines the root Cobra command for the Solver Bench CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Config and logger must be set up before any subcommand loads data.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/solver-bench/main.go
  - Calls: Child commands (summary, history, normalize, speedup, ...)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/solver-bench/main.go
  - internal/cli/common.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/config"
	"github.com/daryltucker/solver-bench/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg is loaded once per invocation in PersistentPreRunE
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "solver-bench",
		Short: "Analyse LP/MILP solver benchmark results",
		Long: `Aggregates solver benchmark results on energy-planning models.
Computes shifted geometric means per solver and release year, normalizes and
ranks them, and restricts comparisons to common instances on request.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 1. Load Config
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded

			// 2. Logging: flags win over the config file
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			lvl, err := output.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			output.Init(lvl, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./solver_bench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}
