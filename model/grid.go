package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// CellState is the binary state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// Coord addresses a cell by row and column
type Coord struct {
	Row int
	Col int
}

// Bounds is an inclusive rectangle of cells
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Area returns the number of cells covered by the bounds
func (b Bounds) Area() int {
	return (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
}

// Grid is a fixed-size board. Everything outside [0,rows) x [0,cols) is dead
// and can never be written.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// MaxGridCells is the largest rows*cols NewGrid will allocate
const MaxGridCells = 1 << 26

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	// divide rather than multiply so huge sizes cannot overflow
	if rows > 0 && cols > MaxGridCells/rows {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] %dx%d exceeds %d cells", rows, cols, MaxGridCells)
	}
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// SetAlive marks a cell alive. Coordinates off the grid are dropped.
func (g *Grid) SetAlive(r, c int) {
	if g.inBounds(r, c) {
		g.cells[r][c] = true
	}
}

// Set sets a cell to alive (true) or dead (false). Coordinates off the grid
// are dropped.
func (g *Grid) Set(r, c int, alive bool) {
	if g.inBounds(r, c) {
		g.cells[r][c] = alive
	}
}

// Test returns 1 if the cell is on the grid and alive, 0 otherwise
func (g *Grid) Test(r, c int) int {
	if g.inBounds(r, c) && g.cells[r][c] {
		return 1
	}
	return 0
}

// GetState returns the state of a cell
func (g *Grid) GetState(r, c int) (CellState, error) {
	if !g.inBounds(r, c) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[GetState] (%d,%d) outside %dx%d", r, c, g.rows, g.cols)
	}
	if g.cells[r][c] {
		return Alive, nil
	}
	return Dead, nil
}

// SetState sets the state of a cell
func (g *Grid) SetState(r, c int, state CellState) error {
	if !g.inBounds(r, c) {
		return errors.Wrapf(ErrOutOfBounds, "[SetState] (%d,%d) outside %dx%d", r, c, g.rows, g.cols)
	}
	g.cells[r][c] = state == Alive
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (g *Grid) LiveCells() []Coord {
	var live []Coord
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				live = append(live, Coord{Row: r, Col: c})
			}
		}
	}
	return live
}

// BoundingBox returns the smallest rectangle holding every living cell.
// ok is false when the grid has no living cells.
func (g *Grid) BoundingBox() (b Bounds, ok bool) {
	for r := range g.rows {
		for c := range g.cols {
			if !g.cells[r][c] {
				continue
			}
			if !ok {
				b = Bounds{MinRow: r, MaxRow: r, MinCol: c, MaxCol: c}
				ok = true
				continue
			}
			b.MinRow = min(b.MinRow, r)
			b.MaxRow = max(b.MaxRow, r)
			b.MinCol = min(b.MinCol, c)
			b.MaxCol = max(b.MaxCol, c)
		}
	}
	return
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	b, ok := g.BoundingBox()
	if !ok {
		return 0
	}
	return b.Area()
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([][]bool, g.rows)
	for r := range cells {
		cells[r] = append([]bool(nil), g.cells[r]...)
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
