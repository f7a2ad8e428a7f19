package cli

import (
	"github.com/spf13/cobra"

	"appliancefit/internal/config"
	"appliancefit/internal/observability"
)

var (
	cfg       *config.Config
	logLevel  string
	logFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "applfit",
	Short: "ApplianceFit - built-in appliance replacement checks",
	Long: `ApplianceFit extracts installation specifications from retailer product
pages and decides whether a replacement appliance fits where an existing one
is installed.

Values that a page does not state are reported as N/A. Nothing is inferred.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		observability.SetupLogger(observability.LogConfig{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: cmd.ErrOrStderr(),
		})
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, console)")
}
