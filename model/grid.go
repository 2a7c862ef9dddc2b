package model

import (
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/rules"
)

var (
	// ErrBadDimensions is returned when a grid is requested with a non-positive width or height.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned for cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell coordinates out of bounds")
	// ErrDimensionMismatch is returned when a step's output grid does not match the source.
	ErrDimensionMismatch = errors.New("grid dimensions do not match")
)

/*
Grid represents the game board as a flat row-major cell buffer.

Cell (x, y) lives at index y*width + x. The buffer is a single contiguous
allocation of exactly width*height cells, which keeps the neighbor scan
cache-friendly and avoids per-row indirection.
*/
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a grid with the specified dimensions, all cells dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrBadDimensions, "[NewGrid] got %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// GetWidth returns the width of the grid.
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid.
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid to new dimensions and kills every cell.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	if len(g.cells) != width*height {
		g.cells = make([]bool, width*height)
		return
	}
	g.Clear()
}

// Clear sets every cell dead. Calling it twice is equivalent to once.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Paint sets one cell alive or dead, rejecting out-of-bounds coordinates.
func (g *Grid) Paint(x, y int, alive bool) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return errors.Wrapf(ErrOutOfBounds, "[Paint] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y*g.width+x] = alive
	return nil
}

// set writes a cell, silently ignoring out-of-bounds coordinates.
// Used by pattern helpers that may hang over the edge of a small grid.
func (g *Grid) set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y*g.width+x] = alive
	}
}

// Get returns the state of a cell; coordinates outside the grid read as dead.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x]
}

// NeighborCount returns the number of live cells among the up-to-8 neighbors
// of (x, y). The scan clamps at the grid boundary, so edge and corner cells
// see fewer candidates; there is no wraparound to the opposite edge.
func (g *Grid) NeighborCount(x, y int) (int, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, errors.Wrapf(ErrOutOfBounds, "[NeighborCount] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.countNeighbors(x, y), nil
}

// countNeighbors counts living neighbors with clamped bounds checking.
func (g *Grid) countNeighbors(x, y int) int {
	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny*g.width+nx] {
				count++
			}
		}
	}

	return count
}

/*
Step computes the next generation of g under rs into out.

The receiver is read-only for the whole call and out is the sole mutation
target, so a caller holding two grids can alternate them as front and back
buffers without any reallocation. out must have the same dimensions as g;
the caller swaps the two references after a successful step.
*/
func (g *Grid) Step(rs *rules.RuleSet, out *Grid) error {
	if rs == nil {
		return errors.Errorf("[Step] nil rule set")
	}
	if out == nil {
		return errors.Wrap(ErrDimensionMismatch, "[Step] nil output grid")
	}
	if out.width != g.width || out.height != g.height {
		return errors.Wrapf(ErrDimensionMismatch, "[Step] source %dx%d, output %dx%d",
			g.width, g.height, out.width, out.height)
	}
	if rs.BirthOnZero() {
		return g.stepFull(rs, out)
	}
	return g.stepBounded(rs, out)
}

// stepFull scans every cell, splitting rows across workers. Each worker
// writes a disjoint band of out, so no partial write is ever read back
// within the same step.
func (g *Grid) stepFull(rs *rules.RuleSet, out *Grid) error {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					idx := y*g.width + x
					next, err := rs.Apply(g.cells[idx], g.countNeighbors(x, y))
					if err != nil {
						return errors.Wrapf(err, "[stepFull] cell (%d,%d)", x, y)
					}
					out.cells[idx] = next
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// stepBounded scans only the bounding box of living cells plus a one-cell
// margin. Valid only for rules that cannot birth a cell with zero live
// neighbors: every cell outside the margin is dead with an all-dead
// neighborhood and stays dead.
func (g *Grid) stepBounded(rs *rules.RuleSet, out *Grid) error {
	out.Clear()

	bounds, ok := g.activeBounds()
	if !ok {
		return nil
	}

	minX := max(0, bounds.minX-1)
	maxX := min(g.width-1, bounds.maxX+1)
	minY := max(0, bounds.minY-1)
	maxY := min(g.height-1, bounds.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			idx := y*g.width + x
			next, err := rs.Apply(g.cells[idx], g.countNeighbors(x, y))
			if err != nil {
				return errors.Wrapf(err, "[stepBounded] cell (%d,%d)", x, y)
			}
			out.cells[idx] = next
		}
	}

	return nil
}

type boundingBox struct {
	minX, maxX, minY, maxY int
}

// activeBounds returns the bounding box of living cells; ok is false when
// the grid is empty.
func (g *Grid) activeBounds() (boundingBox, bool) {
	var (
		b     boundingBox
		found bool
	)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y*g.width+x] {
				continue
			}
			if !found {
				b = boundingBox{minX: x, maxX: x, minY: y, maxY: y}
				found = true
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return b, found
}

// CountLiving returns the total number of living cells.
func (g *Grid) CountLiving() (count int) {
	for i := range g.cells {
		if g.cells[i] {
			count++
		}
	}
	return
}

// RandomFill sets each cell alive with probability 1 in 5, drawn from rng.
// The grid never seeds an RNG itself; the caller controls the seed, which
// keeps fills reproducible in tests.
func (g *Grid) RandomFill(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.Intn(5) == 0
	}
}

// Randomize fills the grid with random living cells at the given density.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// AddGlider adds a glider pattern at the specified position.
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator at the specified position.
func (g *Grid) AddBlinker(startX, startY int) {
	g.set(startX, startY, true)
	g.set(startX+1, startY, true)
	g.set(startX+2, startY, true)
}
