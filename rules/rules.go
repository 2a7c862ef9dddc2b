package rules

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the largest possible live-neighbor count in an 8-connected grid.
const MaxNeighbors = 8

// ErrNeighborCount is returned by Apply when the neighbor count is outside [0, MaxNeighbors].
var ErrNeighborCount = errors.New("neighbor count out of range")

/*
RuleSet encodes a birth/survival cellular automaton rule as two bit masks.

Bit k of the birth mask is set when a dead cell with exactly k live neighbors
becomes alive; bit k of the survival mask is set when a live cell with exactly
k live neighbors stays alive. Only bits 0..8 are meaningful. A RuleSet is
immutable after construction and safe to share across grids.
*/
type RuleSet struct {
	name     string
	birth    uint16
	survival uint16
}

// New builds a RuleSet from explicit birth and survival neighbor counts.
// Counts outside [0, MaxNeighbors] are ignored rather than corrupting the masks.
func New(name string, birthCounts, survivalCounts []int) *RuleSet {
	rs := &RuleSet{name: name}
	for _, n := range birthCounts {
		if n >= 0 && n <= MaxNeighbors {
			rs.birth |= 1 << uint(n)
		}
	}
	for _, n := range survivalCounts {
		if n >= 0 && n <= MaxNeighbors {
			rs.survival |= 1 << uint(n)
		}
	}
	return rs
}

// Conway returns the classic Game of Life rules (B3/S23).
func Conway() *RuleSet {
	return New("Conway's Life (B3/S23)", []int{3}, []int{2, 3})
}

// HighLife returns the HighLife variant (B36/S23), which supports replicators.
func HighLife() *RuleSet {
	return New("HighLife (B36/S23)", []int{3, 6}, []int{2, 3})
}

// DayNight returns the symmetric Day & Night rules (B3678/S34678).
func DayNight() *RuleSet {
	return New("Day & Night (B3678/S34678)", []int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
}

// Maze returns maze-generation rules (B3/S12345).
func Maze() *RuleSet {
	return New("Maze (B3/S12345)", []int{3}, []int{1, 2, 3, 4, 5})
}

// Presets returns the built-in rule sets in a stable order, so callers can
// cycle through them by index.
func Presets() []*RuleSet {
	return []*RuleSet{Conway(), HighLife(), DayNight(), Maze()}
}

// Preset returns the built-in rule set at the given index.
func Preset(index int) (*RuleSet, error) {
	presets := Presets()
	if index < 0 || index >= len(presets) {
		return nil, errors.Errorf("[Preset] index %d outside [0,%d]", index, len(presets)-1)
	}
	return presets[index], nil
}

/*
Apply determines a cell's next state from its current state and live-neighbor
count via a single mask probe.

Returns ErrNeighborCount when neighbors is outside [0, MaxNeighbors].
*/
func (r *RuleSet) Apply(alive bool, neighbors int) (bool, error) {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return false, errors.Wrapf(ErrNeighborCount, "[Apply] got %d", neighbors)
	}
	if alive {
		return r.survival&(1<<uint(neighbors)) != 0, nil
	}
	return r.birth&(1<<uint(neighbors)) != 0, nil
}

// Name returns the rule set's display name.
func (r *RuleSet) Name() string { return r.name }

// BirthMask returns the raw birth bit mask.
func (r *RuleSet) BirthMask() uint16 { return r.birth }

// SurvivalMask returns the raw survival bit mask.
func (r *RuleSet) SurvivalMask() uint16 { return r.survival }

// BirthOnZero reports whether a dead cell with zero live neighbors is born.
// Rules where this holds cannot use active-region stepping.
func (r *RuleSet) BirthOnZero() bool { return r.birth&1 != 0 }

// String renders the rule set name with its active birth and survival counts.
func (r *RuleSet) String() string {
	var b strings.Builder
	b.WriteString(r.name)
	b.WriteString(" | birth:")
	for i := 0; i <= MaxNeighbors; i++ {
		if r.birth&(1<<uint(i)) != 0 {
			fmt.Fprintf(&b, " %d", i)
		}
	}
	b.WriteString(" | survival:")
	for i := 0; i <= MaxNeighbors; i++ {
		if r.survival&(1<<uint(i)) != 0 {
			fmt.Fprintf(&b, " %d", i)
		}
	}
	return b.String()
}
