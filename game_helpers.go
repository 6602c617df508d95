package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*rules.Engine,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := loadGrid(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	opts := []rules.Option{
		rules.WithWorkers(config.Workers),
		rules.WithBounded(config.UseBoundedGrid),
	}
	if config.UseMemoryPool {
		opts = append(opts, rules.WithCountsPool(model.NewCountsPool()))
	}
	engine := rules.NewEngine(opts...)

	renderer := &model.TerminalRenderer{Out: os.Stdout}
	stats := utils.NewStats()

	return grid, engine, renderer, stats, nil
}

// loadGrid decodes the configured pattern file, or falls back to the
// built-in pattern when none is set
func loadGrid(config utils.Config) (*model.Grid, error) {
	if config.PatternFile == "" {
		return pattern.Default(), nil
	}
	grid, err := pattern.LoadFile(config.PatternFile,
		pattern.WithCellLimit(config.MaxPatternCells),
		pattern.WithGridLimit(config.MaxGridCells),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[loadGrid] failed to load pattern")
	}
	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	source := config.PatternFile
	if source == "" {
		source = "built-in blinkers"
	}
	fmt.Printf("Pattern: %s | Workers: %d | Bounded: %v | Memory Pool: %v\n",
		source, config.Workers, config.UseBoundedGrid, config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := 0.0
	if area := grid.Rows() * grid.Cols(); area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	// Update performance stats
	stats.Update(generation, livingCells, time.Since(lastFrameTime))
	stats.BoundingBoxSize = grid.GetBoundingBoxSize()

	// Compare against earlier generations before recording this one
	isStagnant := history.IsStagnant(grid)
	history.UpdateHistory(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	config utils.Config,
	stats *utils.Stats,
) {
	// Show bounding box info for bounded grids
	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", stats.BoundingBoxSize)
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the simulation should end
func checkStopConditions(livingCells, generation int, isStagnant bool, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if isStagnant && config.StopOnStagnation {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
