package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ruleSet := selectRule(config)

	// Initialize game
	front, back, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	rng := newRNG(config.Seed)
	seedGrid(config, front, rng)
	displayGameInfo(config, ruleSet, front)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Main game loop
	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			displayFinalStats(generation, stats)
			model.GridToPool(front, pool)
			model.GridToPool(back, pool)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update performance stats
		livingCells := front.CountLiving()
		stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		displayGameStatus(generation, livingCells, ruleSet, config, front, stats)
		renderer.Display(front)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Compute the next generation into the back buffer, then swap.
		// The step never reads the buffer it writes, so two grids suffice
		// for the whole run.
		if err = front.Step(ruleSet, back); err != nil {
			fmt.Printf("Step failed: %v\n", err)
			break
		}
		front, back = back, front

		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}

	displayFinalStats(generation, stats)
	model.GridToPool(front, pool)
	model.GridToPool(back, pool)
}

// newRNG builds the simulation's random source. A zero seed falls back to
// the wall clock; any other value gives a reproducible run.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
