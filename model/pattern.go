package model

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrPatternTooLarge is returned when a pattern does not fit inside the grid.
var ErrPatternTooLarge = errors.New("pattern exceeds grid dimensions")

/*
LoadFromText parses a row-delimited cell pattern into the grid.

Rows are separated by a single newline; within a row, the character '0' maps
to a dead cell and every other character to a live cell. The pattern must fit
inside the grid's existing dimensions; loading never resizes. The grid is
cleared before parsing, so a failed load may leave it partially repainted —
callers must not assume atomicity.
*/
func (g *Grid) LoadFromText(text string) error {
	g.Clear()

	for y, row := range strings.Split(text, "\n") {
		// Column position is counted per character, not per byte, so
		// multi-byte glyphs still occupy a single cell.
		x := 0
		for _, c := range row {
			if y >= g.height || x >= g.width {
				return errors.Wrapf(ErrPatternTooLarge,
					"[LoadFromText] cell (%d,%d) outside %dx%d", x, y, g.width, g.height)
			}
			g.cells[y*g.width+x] = c != '0'
			x++
		}
	}

	return nil
}

// LoadFromFile reads a pattern file and loads it into the grid.
func (g *Grid) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFromFile] failed to read file: %+v", filename)
	}

	if err = g.LoadFromText(string(data)); err != nil {
		return errors.Wrapf(err, "[LoadFromFile] failed to load pattern from file: %+v", filename)
	}

	return nil
}
