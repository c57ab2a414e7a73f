package rptstruct

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/encoder"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/parser"
)

// Generate writes a synthetic report container to path and returns its structure.
// Any failure is returned; no partial output is cleaned up or retried.
func Generate(path string, opts Options) (*models.StructureSummary, error) {
	log := opts.logger().WithField("destination", path)

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: output directory %s", ErrFileNotFound, dir)
	case err != nil:
		return nil, fmt.Errorf("output directory %s: %w", dir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("output directory %s is not a directory", dir)
	}

	rng := opts.Rand
	if rng == nil {
		rng = encoder.DefaultRand()
	}

	log.Info("Starting to create dummy report file")
	summary, err := encoder.WriteFile(path, opts.layout(), rng)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", path, err)
	}

	log.WithField("bytes", summary.Size).Info("Dummy report file created")
	LogStructure(log, summary)
	return summary, nil
}

// LogStructure logs the table and section tree of a summary.
func LogStructure(log logrus.FieldLogger, s *models.StructureSummary) {
	log.Infof("Contains %d tables with fields", len(s.Tables))
	for _, t := range s.Tables {
		log.Infof("  %s", t.Name)
		for _, f := range t.Fields {
			log.Infof("    - %s", f)
		}
	}
	log.Infof("Report sections:")
	for _, name := range s.Sections {
		log.Infof("  - %s", name)
	}
}

// Extract extracts table/field references from the report file at path.
// It never fails: unreadable input yields an empty table with the standard columns.
func Extract(path string, opts Options) *models.ReferenceTable {
	return parser.ParseFile(path, opts.parserOptions())
}

// Layout returns the static structure generated with opts.
func Layout(opts Options) *models.StructureSummary {
	return opts.layout().Summary()
}
