package pattern

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Limiter is implemented by decoders that can enforce a live cell cap while
// decoding instead of after
type Limiter interface {
	WithMaxCells(n int) Decoder
}

// WithMaxCells returns a copy of the decoder with a live cell cap
func (d PlaintextDecoder) WithMaxCells(n int) Decoder {
	d.MaxCells = n
	return d
}

// WithMaxCells returns a copy of the decoder with a live cell cap
func (d RLEDecoder) WithMaxCells(n int) Decoder {
	d.MaxCells = n
	return d
}

// maxLineBytes is the longest single line ReadLines accepts
const maxLineBytes = 1 << 20

type loadOptions struct {
	maxCells     int
	maxGridCells int
}

// LoadOption configures LoadFile and DecodeLines
type LoadOption func(*loadOptions)

// WithCellLimit fails decoding with model.ErrPatternTooLarge once a pattern
// records more than n live cells. Zero or less disables the limit.
func WithCellLimit(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxCells = n
	}
}

// WithGridLimit fails with model.ErrPatternTooLarge when a pattern declares a
// grid of more than n cells. Zero or less disables the limit.
func WithGridLimit(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxGridCells = n
	}
}

// LoadFile decodes the pattern file at path, choosing the decoder from the
// file extension. Unknown extensions fail before the file is opened.
func LoadFile(path string, opts ...LoadOption) (*model.Grid, error) {
	ext := filepath.Ext(path)
	if _, err := Lookup(ext); err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] cannot load %s", path)
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}

	g, err := DecodeLines(ext, lines, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to decode file: %s", path)
	}
	return g, nil
}

// DecodeLines decodes already loaded content with the decoder for ext
func DecodeLines(ext string, lines []string, opts ...LoadOption) (*model.Grid, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	d, err := Lookup(ext)
	if err != nil {
		return nil, errors.Wrap(err, "[DecodeLines] lookup failed")
	}
	if l, ok := d.(Limiter); ok && o.maxCells > 0 {
		d = l.WithMaxCells(o.maxCells)
	}

	spec, err := d.Decode(lines)
	if err != nil {
		return nil, errors.Wrap(err, "[DecodeLines] decode failed")
	}
	g, err := spec.Build(model.Limits{MaxCells: o.maxCells, MaxGridCells: o.maxGridCells})
	if err != nil {
		return nil, errors.Wrap(err, "[DecodeLines] build failed")
	}
	return g, nil
}

// ReadLines reads a text file into lines without their line endings
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadLines] failed to open file: %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "[ReadLines] failed to scan file: %s", path)
	}
	return lines, nil
}
