package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clearScreen moves the cursor home and erases the terminal
	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws a grid as text. It only reads cell state.
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for row := range g.Rows() {
		for col := range g.Cols() {
			state, err := g.GetState(row, col)
			if err != nil {
				return errors.Wrap(err, "[Display] failed to read cell")
			}
			if state == Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to flush output")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearScreen)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
