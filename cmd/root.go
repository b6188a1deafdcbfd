package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-form-composer/internal/config"
	"github.com/deploymenttheory/go-form-composer/internal/logger"
)

var cfgFile string

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "form-composer",
	Short: "Evaluate and maintain form process documents",
	Long: `form-composer evaluates multi-stage form process documents against form
data: which sections and fields are shown, which are mandatory, which values
fail their format checks and which skill each stage is routed to.

It also upgrades legacy documents, renders their logic as text and serves a
read-only preview API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// An explicit config file replaces whatever main loaded
		if cmd.Flags().Changed("config") && cfgFile != "" {
			if err := config.Reload(cfgFile); err != nil {
				return err
			}
		}

		// CLI flags override config settings
		if cmd.Flags().Changed("debug") {
			config.Instance.Debug, _ = cmd.Flags().GetBool("debug")
		}
		if cmd.Flags().Changed("log-format") {
			config.Instance.LogFormat, _ = cmd.Flags().GetString("log-format")
		}

		if cmd.Flags().Changed("config") || cmd.Flags().Changed("debug") || cmd.Flags().Changed("log-format") {
			return logger.InitLogger(logger.LoggerConfig{
				Debug:     config.Instance.Debug,
				LogFormat: config.Instance.LogFormat,
				LogFile:   config.Instance.LogFile,
			})
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command execution failed", err, nil)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
