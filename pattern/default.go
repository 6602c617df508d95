package pattern

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// DefaultSpec is the pattern used when no file is given: two blinkers, one
// horizontal and one vertical, on a 5x10 board
func DefaultSpec() model.PatternSpec {
	return model.PatternSpec{
		Rows: 5,
		Cols: 10,
		Cells: []model.Coord{
			{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
			{Row: 1, Col: 7}, {Row: 2, Col: 7}, {Row: 3, Col: 7},
		},
	}
}

// FromCoords builds a grid directly from literal coordinates, bypassing the
// decoders
func FromCoords(rows, cols int, cells []model.Coord) (*model.Grid, error) {
	spec := model.PatternSpec{Rows: rows, Cols: cols, Cells: cells}
	g, err := spec.Build(model.Limits{})
	if err != nil {
		return nil, errors.Wrap(err, "[FromCoords] failed to build grid")
	}
	return g, nil
}

// Default builds the grid for DefaultSpec
func Default() *model.Grid {
	spec := DefaultSpec()
	g, err := FromCoords(spec.Rows, spec.Cols, spec.Cells)
	if err != nil {
		// a fixed, valid literal
		panic(err)
	}
	return g
}
