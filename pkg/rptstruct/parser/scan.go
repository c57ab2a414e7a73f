// Package parser recovers table/field references from opaque report bytes.
package parser

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidParams indicates scan parameters that cannot form a run pattern.
var ErrInvalidParams = errors.New("invalid scan parameters")

// maxRepeat is the largest repetition count regexp accepts.
const maxRepeat = 1000

// ScanParams holds parameters for printable-run scanning.
type ScanParams struct {
	// Low and High bound the accepted byte class, inclusive. Both must be ASCII.
	Low  byte
	High byte
	// MinLen and MaxLen bound the length of a single run.
	MinLen int
	MaxLen int
	// Separator splits a run into table and field parts.
	Separator string
}

// DefaultScanParams returns default scan parameters:
// printable ASCII, runs of 3 to 50 bytes, "." separator.
func DefaultScanParams() ScanParams {
	return ScanParams{
		Low:       0x20,
		High:      0x7E,
		MinLen:    3,
		MaxLen:    50,
		Separator: ".",
	}
}

var defaultRunPattern = mustRunPattern(DefaultScanParams())

// Validate checks the parameters.
func (p ScanParams) Validate() error {
	switch {
	case p.High > 0x7F || p.Low > p.High:
		return fmt.Errorf("%w: byte class [%#x, %#x]", ErrInvalidParams, p.Low, p.High)
	case p.MinLen < 1 || p.MaxLen < p.MinLen || p.MaxLen > maxRepeat:
		return fmt.Errorf("%w: run length [%d, %d]", ErrInvalidParams, p.MinLen, p.MaxLen)
	case p.Separator == "":
		return fmt.Errorf("%w: empty separator", ErrInvalidParams)
	}
	return nil
}

func (p ScanParams) pattern() (*regexp.Regexp, error) {
	if p == DefaultScanParams() {
		return defaultRunPattern, nil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return regexp.Compile(runExpr(p))
}

func runExpr(p ScanParams) string {
	return fmt.Sprintf(`[\x%02X-\x%02X]{%d,%d}`, p.Low, p.High, p.MinLen, p.MaxLen)
}

func mustRunPattern(p ScanParams) *regexp.Regexp {
	return regexp.MustCompile(runExpr(p))
}

// ScanRuns returns maximal runs of in-class bytes, left to right without overlap.
// A run longer than MaxLen is cut into MaxLen chunks; a trailing chunk shorter
// than MinLen is dropped.
func ScanRuns(data []byte, params ScanParams) ([]string, error) {
	re, err := params.pattern()
	if err != nil {
		return nil, err
	}

	matches := re.FindAll(data, -1)
	runs := make([]string, 0, len(matches))
	for _, m := range matches {
		runs = append(runs, decodeASCII(m))
	}
	return runs, nil
}

// decodeASCII converts a run to a string, skipping any non-ASCII byte.
func decodeASCII(b []byte) string {
	buf := make([]byte, 0, len(b))
	for _, c := range b {
		if c < 0x80 {
			buf = append(buf, c)
		}
	}
	return string(buf)
}
