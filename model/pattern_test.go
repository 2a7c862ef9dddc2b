package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadFromTextRoundTrip(t *testing.T) {
	g := mustGrid(t, 3, 3)

	if err := g.LoadFromText("010\n111\n000"); err != nil {
		t.Fatalf("LoadFromText returned error: %v", err)
	}

	want := map[[2]int]bool{
		{1, 0}: true,
		{0, 1}: true, {1, 1}: true, {2, 1}: true,
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if g.Get(x, y) != want[[2]int{x, y}] {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, g.Get(x, y), want[[2]int{x, y}])
			}
		}
	}
}

func TestLoadFromTextTreatsAnyNonZeroAsAlive(t *testing.T) {
	g := mustGrid(t, 4, 1)

	if err := g.LoadFromText("0#1 "); err != nil {
		t.Fatalf("LoadFromText returned error: %v", err)
	}

	for x, want := range []bool{false, true, true, true} {
		if g.Get(x, 0) != want {
			t.Errorf("cell (%d,0) = %v, want %v", x, g.Get(x, 0), want)
		}
	}
}

func TestLoadFromTextMultiByteGlyphs(t *testing.T) {
	// One cell per character regardless of encoding width, so block
	// glyphs fill exactly as many columns as there are characters.
	g := mustGrid(t, 2, 1)
	if err := g.LoadFromText("██"); err != nil {
		t.Fatalf("LoadFromText returned error: %v", err)
	}
	if !g.Get(0, 0) || !g.Get(1, 0) {
		t.Error("two glyphs should load as two live cells")
	}

	g = mustGrid(t, 3, 2)
	if err := g.LoadFromText("0█0\n█0█"); err != nil {
		t.Fatalf("LoadFromText returned error: %v", err)
	}
	want := map[[2]int]bool{
		{1, 0}: true,
		{0, 1}: true, {2, 1}: true,
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if g.Get(x, y) != want[[2]int{x, y}] {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, g.Get(x, y), want[[2]int{x, y}])
			}
		}
	}

	// A glyph row that fits character-wise must not be rejected for its
	// byte length, but a genuinely oversized one still fails.
	g = mustGrid(t, 2, 1)
	if err := g.LoadFromText("███"); errors.Cause(err) != ErrPatternTooLarge {
		t.Errorf("error = %v, want ErrPatternTooLarge", err)
	}
}

func TestLoadFromTextClearsExistingCells(t *testing.T) {
	g := mustGrid(t, 4, 4)
	mustPaint(t, g, 3, 3)

	if err := g.LoadFromText("1"); err != nil {
		t.Fatalf("LoadFromText returned error: %v", err)
	}
	if g.Get(3, 3) {
		t.Error("cell outside the pattern survived the load")
	}
	if !g.Get(0, 0) {
		t.Error("loaded cell reads dead")
	}
}

func TestLoadFromTextRejectsOversizedPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too wide", "111\n11"},
		{"too tall", "11\n11\n11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 2, 2)
			err := g.LoadFromText(tt.text)
			if err == nil {
				t.Fatal("oversized pattern should have failed")
			}
			if errors.Cause(err) != ErrPatternTooLarge {
				t.Errorf("error = %v, want ErrPatternTooLarge", err)
			}
		})
	}
}

func TestLoadFromTextAcceptsTrailingNewline(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := g.LoadFromText("11\n01\n"); err != nil {
		t.Fatalf("trailing newline should not fail: %v", err)
	}
	if !g.Get(0, 0) || !g.Get(1, 1) || g.Get(0, 1) {
		t.Error("pattern with trailing newline loaded incorrectly")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("000\n111\n000"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := mustGrid(t, 3, 3)
	if err := g.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}
	if g.CountLiving() != 3 {
		t.Errorf("loaded grid has %d living cells, want 3", g.CountLiving())
	}

	if err := g.LoadFromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("loading a missing file should fail")
	}
}
