package rptstruct

import (
	"errors"

	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/encoder"
)

// ErrFileNotFound indicates a missing input file or output directory.
var ErrFileNotFound = errors.New("file not found")

// ErrSectionOverflow indicates a section whose declared size cannot hold its header.
var ErrSectionOverflow = encoder.ErrSectionOverflow

// ErrInvalidLayout indicates layout bounds that cannot produce a container.
var ErrInvalidLayout = encoder.ErrInvalidLayout

// RegionError represents an error while building one container region.
type RegionError = encoder.RegionError
