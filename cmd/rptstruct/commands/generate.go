package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rptstruct-go/internal/config"
	"github.com/ukaji3/rptstruct-go/internal/logging"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct"
)

// NewGenerateCommand builds the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic report container",
		Long: `Write a synthetic report container with a fixed header, metadata, four
tables, five report sections and a formulas block. Without --seed the
random content differs on every run.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().StringP("out", "o", "", "Output file path (default: <output-dir>/"+DefaultReportName+")")
	cmd.Flags().Int64("seed", 0, "RNG seed for reproducible output")
	cmd.Flags().Int("count", 1, "Number of files to generate")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.NewRun("generate")

	out, _ := cmd.Flags().GetString("out")
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid count: %d (must be positive)", count)
	}

	if out == "" {
		if err := cfg.EnsureDirs(); err != nil {
			return err
		}
	}

	opts := rptstruct.DefaultOptions()
	opts.Logger = log
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		opts = opts.WithSeed(seed)
	}

	sizes := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		path := generatePath(cfg, out, i, count)
		summary, err := rptstruct.Generate(path, opts)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		sizes = append(sizes, float64(summary.Size))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	if count > 1 {
		logSizeStats(log, sizes)
	}
	return nil
}

// generatePath numbers files when more than one is requested.
func generatePath(cfg *config.Config, out string, i, count int) string {
	if out == "" {
		out = filepath.Join(cfg.OutputDir, DefaultReportName)
	}
	if count == 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(out, ext), i+1, ext)
}
