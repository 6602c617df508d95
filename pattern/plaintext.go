package pattern

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	plaintextComment = '!'
	plaintextAlive   = 'O'
)

// PlaintextDecoder reads the .cells format: '!' lines are comments, every
// other line is a row where 'O' is alive and anything else is dead
type PlaintextDecoder struct {
	// MaxCells caps the number of live cells; zero means no cap
	MaxCells int
}

// Decode returns a spec sized to the row count and the widest row
func (d PlaintextDecoder) Decode(lines []string) (model.PatternSpec, error) {
	var (
		spec  model.PatternSpec
		found bool
	)
	for _, line := range lines {
		if strings.HasPrefix(line, string(plaintextComment)) {
			continue
		}
		found = true
		row := strings.TrimRight(line, " \t\r")
		spec.Cols = max(spec.Cols, len(row))
		for col := 0; col < len(row); col++ {
			if row[col] != plaintextAlive {
				continue
			}
			if d.MaxCells > 0 && len(spec.Cells) >= d.MaxCells {
				return model.PatternSpec{}, errors.Wrapf(model.ErrPatternTooLarge,
					"[PlaintextDecoder.Decode] more than %d live cells", d.MaxCells)
			}
			spec.Add(spec.Rows, col)
		}
		spec.Rows++
	}
	if !found {
		return model.PatternSpec{}, errors.Wrap(model.ErrUnsupportedFormat, "[PlaintextDecoder.Decode] no pattern rows")
	}
	return spec, nil
}
