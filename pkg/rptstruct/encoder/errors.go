package encoder

import (
	"errors"
	"fmt"
)

// ErrSectionOverflow indicates a declared section size too small to hold its own header.
var ErrSectionOverflow = errors.New("declared size smaller than region header")

// ErrInvalidLayout indicates layout bounds that cannot produce a container.
var ErrInvalidLayout = errors.New("invalid layout")

// RegionError represents an error while building one region.
type RegionError struct {
	Region string // "metadata", "table", "section", "formulas"
	Name   string
	Err    error
}

func (e *RegionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("encode error in %s region: %v", e.Region, e.Err)
	}
	return fmt.Sprintf("encode error in %s %q: %v", e.Region, e.Name, e.Err)
}

func (e *RegionError) Unwrap() error {
	return e.Err
}

// NewRegionError creates a new RegionError.
func NewRegionError(region, name string, err error) *RegionError {
	return &RegionError{
		Region: region,
		Name:   name,
		Err:    err,
	}
}
