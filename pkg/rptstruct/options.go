// Package rptstruct generates synthetic report containers and extracts
// table/field references from report files.
package rptstruct

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/encoder"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/parser"
)

// Options configures generation and extraction behavior.
type Options struct {
	// Layout is the container layout to generate.
	// If nil, defaults to encoder.DefaultLayout().
	Layout *encoder.Layout
	// Rand is the random source for generation.
	// If nil, a time-seeded source is used and output is not reproducible.
	Rand encoder.Rand
	// Scan controls run scanning during extraction.
	// A zero value means parser.DefaultScanParams().
	Scan parser.ScanParams
	// UnpackCompound scans OLE compound file streams instead of raw bytes.
	UnpackCompound bool
	// Logger receives progress messages. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Scan: parser.DefaultScanParams(),
	}
}

// WithSeed returns a copy of o using a deterministic random source.
func (o Options) WithSeed(seed int64) Options {
	o.Rand = encoder.NewRand(seed)
	return o
}

func (o Options) layout() encoder.Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return encoder.DefaultLayout()
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{
		Params:         o.Scan,
		UnpackCompound: o.UnpackCompound,
		Logger:         o.logger(),
	}
}
