// Package pattern turns pattern files into initial grids.
//
// Decoders are selected by file extension: ".cells" (plaintext) and ".rle"
// (run-length encoded). Each decoder produces a model.PatternSpec, which is
// built into a grid exactly once.
package pattern

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Decoder parses the lines of a pattern file
type Decoder interface {
	Decode(lines []string) (model.PatternSpec, error)
}

// DecoderFunc adapts a function to the Decoder interface
type DecoderFunc func(lines []string) (model.PatternSpec, error)

func (f DecoderFunc) Decode(lines []string) (model.PatternSpec, error) { return f(lines) }

var decoders = map[string]Decoder{}

// Register adds a decoder for a file extension such as ".rle"
func Register(ext string, d Decoder) {
	if ext == "" || d == nil {
		return
	}
	decoders[normalizeExt(ext)] = d
}

// Lookup returns the decoder registered for ext
func Lookup(ext string) (Decoder, error) {
	d, ok := decoders[normalizeExt(ext)]
	if !ok {
		return nil, errors.Wrapf(model.ErrUnsupportedFormat, "[Lookup] no decoder for extension %q", ext)
	}
	return d, nil
}

// Extensions lists the registered extensions
func Extensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func init() {
	Register(".cells", PlaintextDecoder{})
	Register(".rle", RLEDecoder{})
}
