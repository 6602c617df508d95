package model

import "github.com/pkg/errors"

// PatternSpec is the output of a decoder: the intended grid size plus every
// coordinate to mark alive. Cells is an ordinary slice, so (0,0) is recorded
// like any other coordinate.
type PatternSpec struct {
	Rows  int
	Cols  int
	Cells []Coord
	// Rule is the rule string carried by the pattern header, if any
	Rule string
}

// Add records a live cell
func (p *PatternSpec) Add(r, c int) {
	p.Cells = append(p.Cells, Coord{Row: r, Col: c})
}

// Limits caps what a pattern may ask for. Zero or less disables a cap.
type Limits struct {
	// MaxCells caps the number of recorded live cells
	MaxCells int
	// MaxGridCells caps rows*cols of the grid
	MaxGridCells int
}

// CheckArea fails with ErrPatternTooLarge when rows*cols exceeds MaxGridCells
func (l Limits) CheckArea(rows, cols int) error {
	if l.MaxGridCells <= 0 || rows <= 0 {
		return nil
	}
	if cols > l.MaxGridCells/rows {
		return errors.Wrapf(ErrPatternTooLarge, "[CheckArea] %dx%d grid exceeds cap of %d cells", rows, cols, l.MaxGridCells)
	}
	return nil
}

// Build creates the grid described by the spec, checking it against lim
// before anything is allocated
func (p PatternSpec) Build(lim Limits) (*Grid, error) {
	if lim.MaxCells > 0 && len(p.Cells) > lim.MaxCells {
		return nil, errors.Wrapf(ErrPatternTooLarge, "[Build] %d cells exceeds cap of %d", len(p.Cells), lim.MaxCells)
	}
	if err := lim.CheckArea(p.Rows, p.Cols); err != nil {
		return nil, errors.Wrap(err, "[Build] grid too large")
	}
	g, err := NewGrid(p.Rows, p.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[Build] failed to create grid")
	}
	for _, c := range p.Cells {
		g.SetAlive(c.Row, c.Col)
	}
	return g, nil
}
