package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/rules"
	"github.com/sheikhrachel/gol-engine/utils"
)

// initializeGame sets up the front and back grids plus the supporting pieces
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	front, back, err := newGridPair(config, pool)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return front, back, pool, renderer, stats, nil
}

// newGridPair allocates the two equally sized buffers the stepping loop
// alternates between.
func newGridPair(config utils.Config, pool *model.GridPool) (*model.Grid, *model.Grid, error) {
	if pool != nil {
		return pool.Get(config.Width, config.Height), pool.Get(config.Width, config.Height), nil
	}

	front, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, err
	}
	back, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, err
	}
	return front, back, nil
}

// selectRule picks the configured rule preset, falling back to Conway's Life
func selectRule(config utils.Config) *rules.RuleSet {
	ruleSet, err := rules.Preset(config.RuleIndex)
	if err != nil {
		fmt.Printf("Unknown rule index %d, using Conway's Life\n", config.RuleIndex)
		return rules.Conway()
	}
	return ruleSet
}

// seedGrid populates the initial generation from the configured pattern file,
// falling back to a random fill when no file is set or loading fails
func seedGrid(config utils.Config, grid *model.Grid, rng *rand.Rand) {
	if config.PatternFile != "" {
		fmt.Printf("Loading pattern from '%s'\n", config.PatternFile)
		err := grid.LoadFromFile(config.PatternFile)
		if err == nil {
			return
		}
		fmt.Printf("Pattern load failed (%v), falling back to random fill\n", err)
	} else {
		fmt.Println("Loading a random grid")
	}

	if config.RandomDensity > 0 {
		grid.Randomize(rng, config.RandomDensity)
		return
	}
	grid.RandomFill(rng)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, ruleSet *rules.RuleSet, grid *model.Grid) {
	fmt.Printf("Rules: %s\n", ruleSet)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLiving())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayFinalStats summarizes the run; every shutdown path prints this
func displayFinalStats(generation int, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	ruleSet *rules.RuleSet,
	config utils.Config,
	grid *model.Grid,
	stats *utils.Stats,
) {
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	status := "Active"
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Rule: %s | Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		ruleSet.Name(), generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}
