package commands

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rptstruct-go/internal/logging"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/output"
	"golang.org/x/sync/errgroup"
)

// NewParseCommand builds the parse subcommand.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [report.rpt...]",
		Short: "Extract table/field references from report files",
		Long: `Scan report files for printable table.field strings and export them as
one table per input. Unreadable inputs produce an empty table with the
standard columns instead of stopping the batch.

Without arguments, <input-dir>/` + DefaultReportName + ` is parsed.`,
		RunE: runParse,
	}

	cmd.Flags().StringSlice("format", nil, "Output formats: csv, xlsx, json (default csv,xlsx)")
	cmd.Flags().Int("workers", 0, "Maximum files parsed concurrently (default 4)")
	cmd.Flags().Bool("unpack-compound", false, "Scan OLE compound file streams instead of raw bytes")

	bindFlag("formats", cmd.Flags().Lookup("format"))
	bindFlag("workers", cmd.Flags().Lookup("workers"))
	bindFlag("unpack_compound", cmd.Flags().Lookup("unpack-compound"))
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.NewRun("parse")

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{filepath.Join(cfg.InputDir, DefaultReportName)}
	}

	opts := rptstruct.DefaultOptions()
	opts.Scan = cfg.Scan
	opts.UnpackCompound = cfg.UnpackCompound
	opts.Logger = log

	names := outputNames(inputs)
	for i, input := range inputs {
		if names[i] != output.BaseName(input) {
			log.WithFields(logrus.Fields{
				"source": input,
				"output": names[i],
			}).Warn("Output name already taken, using a numbered name")
		}
	}

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			table := rptstruct.Extract(input, opts)
			paths, err := output.WriteAll(cfg.OutputDir, names[i], table, cfg.Formats)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			log.WithFields(logrus.Fields{
				"source":     input,
				"references": table.Len(),
				"outputs":    paths,
			}).Info("Exported references")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Report extraction completed")
	return nil
}

// outputNames assigns each input a distinct export base name. The first input
// with a given base name keeps it; later ones get a _002, _003, ... suffix
// that no other input uses.
func outputNames(inputs []string) []string {
	taken := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		taken[output.BaseName(input)] = true
	}

	seen := make(map[string]bool, len(inputs))
	names := make([]string, len(inputs))
	for i, input := range inputs {
		base := output.BaseName(input)
		name := base
		if seen[base] {
			for n := 2; ; n++ {
				name = fmt.Sprintf("%s_%03d", base, n)
				if !taken[name] {
					break
				}
			}
			taken[name] = true
		}
		seen[base] = true
		names[i] = name
	}
	return names
}
