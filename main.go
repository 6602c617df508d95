package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [pattern.cells|pattern.rle]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if flag.NArg() > 0 {
		config.PatternFile = flag.Arg(0)
	}

	grid, engine, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       model.History
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			return
		default:
		}

		frameStart := time.Now()
		if err := renderer.Clear(); err != nil {
			fmt.Println("Error clearing terminal:", err)
		}

		livingCells, density, status, isStagnant := updateGameState(grid, &history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		displayGameStatus(generation, livingCells, density, status, config, stats)
		if err := renderer.Display(grid); err != nil {
			fmt.Println("Error rendering grid:", err)
			os.Exit(1)
		}

		if stop, reason := checkStopConditions(livingCells, generation, isStagnant, config); stop {
			fmt.Printf("\nStopped: %s\n", reason)
			return
		}

		engine.Advance(grid)
		generation++

		time.Sleep(config.FrameRate)
	}
}
