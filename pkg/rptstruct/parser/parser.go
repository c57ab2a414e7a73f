package parser

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// Options configures file parsing.
type Options struct {
	// Params controls run scanning. A zero value means DefaultScanParams.
	Params ScanParams
	// UnpackCompound scans the streams of an OLE compound file instead of its raw sectors.
	UnpackCompound bool
	// Logger receives progress and failure messages. Nil means the logrus standard logger.
	Logger logrus.FieldLogger
}

func (o Options) params() ScanParams {
	if o.Params == (ScanParams{}) {
		return DefaultScanParams()
	}
	return o.Params
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// ParseBytes scans data and classifies the runs it finds.
func ParseBytes(data []byte, params ScanParams) (*models.ReferenceTable, error) {
	runs, err := ScanRuns(data, params)
	if err != nil {
		return nil, err
	}
	return &models.ReferenceTable{
		References: Classify(runs, params.Separator),
	}, nil
}

// ParseFile reads path and extracts references from it.
// It never fails: read or scan errors, and panics raised while decoding,
// are logged and yield an empty table.
func ParseFile(path string, opts Options) (result *models.ReferenceTable) {
	log := opts.logger().WithField("source", path)
	empty := &models.ReferenceTable{Source: path}

	defer func() {
		if r := recover(); r != nil {
			log.WithError(fmt.Errorf("panic: %v", r)).Error("Failed to parse report file")
			result = empty
		}
	}()

	log.Info("Starting to parse report file")
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to read report file")
		return empty
	}
	log.WithField("bytes", len(data)).Info("Read report file")

	if opts.UnpackCompound && IsCompound(data) {
		streams, err := UnpackCompound(data)
		if err != nil {
			log.WithError(err).Warn("Compound unpacking failed, scanning raw bytes")
		} else {
			data = streams
		}
	}

	table, err := ParseBytes(data, opts.params())
	if err != nil {
		log.WithError(err).Error("Failed to scan report file")
		return empty
	}
	table.Source = path

	log.WithField("count", table.Len()).Info("Potential table/field references")
	for _, ref := range table.References {
		log.Infof("  - %s", ref.FullReference)
	}
	return table
}
