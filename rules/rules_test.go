package rules

import (
	"testing"

	"github.com/pkg/errors"
)

func TestPresetMasks(t *testing.T) {
	tests := []struct {
		rs           *RuleSet
		wantBirth    uint16
		wantSurvival uint16
	}{
		{Conway(), 1 << 3, 1<<2 | 1<<3},
		{HighLife(), 1<<3 | 1<<6, 1<<2 | 1<<3},
		{DayNight(), 1<<3 | 1<<6 | 1<<7 | 1<<8, 1<<3 | 1<<4 | 1<<6 | 1<<7 | 1<<8},
		{Maze(), 1 << 3, 1<<1 | 1<<2 | 1<<3 | 1<<4 | 1<<5},
	}

	for _, tt := range tests {
		if got := tt.rs.BirthMask(); got != tt.wantBirth {
			t.Errorf("%s birth mask = %09b, want %09b", tt.rs.Name(), got, tt.wantBirth)
		}
		if got := tt.rs.SurvivalMask(); got != tt.wantSurvival {
			t.Errorf("%s survival mask = %09b, want %09b", tt.rs.Name(), got, tt.wantSurvival)
		}
	}
}

func TestApplyConway(t *testing.T) {
	rs := Conway()

	for neighbors := 0; neighbors <= MaxNeighbors; neighbors++ {
		next, err := rs.Apply(true, neighbors)
		if err != nil {
			t.Fatalf("Apply(true, %d) returned error: %v", neighbors, err)
		}
		if want := neighbors == 2 || neighbors == 3; next != want {
			t.Errorf("alive cell with %d neighbors: got %v, want %v", neighbors, next, want)
		}

		next, err = rs.Apply(false, neighbors)
		if err != nil {
			t.Fatalf("Apply(false, %d) returned error: %v", neighbors, err)
		}
		if want := neighbors == 3; next != want {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", neighbors, next, want)
		}
	}
}

func TestApplyRejectsBadNeighborCount(t *testing.T) {
	rs := Conway()

	for _, neighbors := range []int{-1, 9, 42} {
		_, err := rs.Apply(true, neighbors)
		if err == nil {
			t.Fatalf("Apply(true, %d) should have failed", neighbors)
		}
		if errors.Cause(err) != ErrNeighborCount {
			t.Errorf("Apply(true, %d) error = %v, want ErrNeighborCount", neighbors, err)
		}
	}
}

func TestNewIgnoresOutOfRangeCounts(t *testing.T) {
	rs := New("custom", []int{-1, 3, 9}, []int{2, 42})

	if got := rs.BirthMask(); got != 1<<3 {
		t.Errorf("birth mask = %09b, want only bit 3", got)
	}
	if got := rs.SurvivalMask(); got != 1<<2 {
		t.Errorf("survival mask = %09b, want only bit 2", got)
	}
}

func TestBirthOnZero(t *testing.T) {
	if Conway().BirthOnZero() {
		t.Error("Conway should not birth on zero neighbors")
	}
	if !New("seeds everywhere", []int{0}, nil).BirthOnZero() {
		t.Error("a B0 rule should report birth on zero neighbors")
	}
}

func TestPresetLookup(t *testing.T) {
	presets := Presets()
	for i := range presets {
		rs, err := Preset(i)
		if err != nil {
			t.Fatalf("Preset(%d) returned error: %v", i, err)
		}
		if rs.Name() != presets[i].Name() {
			t.Errorf("Preset(%d) = %s, want %s", i, rs.Name(), presets[i].Name())
		}
	}

	if _, err := Preset(len(presets)); err == nil {
		t.Error("Preset past the end should fail")
	}
	if _, err := Preset(-1); err == nil {
		t.Error("Preset(-1) should fail")
	}
}

func TestString(t *testing.T) {
	got := Conway().String()
	want := "Conway's Life (B3/S23) | birth: 3 | survival: 2 3"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
