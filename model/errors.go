package model

import "github.com/pkg/errors"

// Error kinds returned by the engine and the pattern decoders. Callers
// classify wrapped errors with errors.Is.
var (
	// ErrInvalidDimension is returned when a grid is requested with a negative size
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned by the strict accessors for coordinates off the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrUnsupportedFormat covers unknown extensions, missing headers and empty input
	ErrUnsupportedFormat = errors.New("unsupported pattern format")
	// ErrMalformedPattern is returned when a pattern body breaks the RLE grammar
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrPatternTooLarge is returned when a pattern records more live cells than allowed
	ErrPatternTooLarge = errors.New("pattern too large")
)
