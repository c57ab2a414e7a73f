// Package commands implements the rptstruct subcommands.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/rptstruct-go/internal/config"
	"github.com/ukaji3/rptstruct-go/internal/logging"
)

// DefaultReportName is the container file name used when no path is given.
const DefaultReportName = "dummy_report.rpt"

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rptstruct",
		Short: "Generate synthetic report files and extract table/field references",
		Long: `rptstruct writes synthetic binary report containers for testing report
tooling, and heuristically extracts table.field references from report files
into CSV, XLSX or JSON.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path")
	flags.String("input-dir", "", "Directory holding report files (default ./input)")
	flags.String("output-dir", "", "Directory for generated and exported files (default ./output)")
	flags.String("log-level", "", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json)")

	bindFlag("input_dir", flags.Lookup("input-dir"))
	bindFlag("output_dir", flags.Lookup("output-dir"))
	bindFlag("log_level", flags.Lookup("log-level"))
	bindFlag("log_format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		NewGenerateCommand(),
		NewParseCommand(),
		NewLayoutCommand(),
	)
	return rootCmd
}

// LoadConfig resolves configuration for cmd and configures logging.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(viper.GetViper(), configFile)
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return cfg, nil
}
