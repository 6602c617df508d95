package rules

import "github.com/sheikhrachel/go-life/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// neighborOffsets are the 8 surrounding (dr, dc) offsets
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors returns how many of the 8 cells around (r, c) are alive.
// Edges are handled entirely by Grid.Test.
func CountNeighbors(g *model.Grid, r, c int) int {
	count := 0
	for _, off := range neighborOffsets {
		count += g.Test(r+off[0], c+off[1])
	}
	return count
}
