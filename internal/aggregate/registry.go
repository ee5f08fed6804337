// Package aggregate folds the part stream produced by the scanner into the two
// schematic totals: the sum of all part numbers and the sum of gear ratios.
package aggregate

import (
	"fmt"

	"github.com/specialistvlad/schematicscan/internal/grid"
	"github.com/specialistvlad/schematicscan/internal/schematic"
)

// GearRegistry maps each gear position to the part numbers adjacent to it, in
// the order the parts were added. A position is present only once at least
// one part has been recorded for it.
type GearRegistry struct {
	parts map[grid.Coord][]int
	order []grid.Coord
}

// Gear is a gear position with exactly two adjacent part numbers.
type Gear struct {
	At    grid.Coord
	Parts [2]int
	Ratio int
}

// NewGearRegistry returns an empty registry.
func NewGearRegistry() *GearRegistry {
	return &GearRegistry{parts: make(map[grid.Coord][]int)}
}

// Add records value against every position in gears.
func (r *GearRegistry) Add(value int, gears []grid.Coord) {
	for _, at := range gears {
		if _, ok := r.parts[at]; !ok {
			r.order = append(r.order, at)
		}
		r.parts[at] = append(r.parts[at], value)
	}
}

// Merge appends other's lists to r key by key. Positions new to r keep
// other's discovery order after r's own.
func (r *GearRegistry) Merge(other *GearRegistry) {
	for _, at := range other.order {
		if _, ok := r.parts[at]; !ok {
			r.order = append(r.order, at)
		}
		r.parts[at] = append(r.parts[at], other.parts[at]...)
	}
}

// Len returns the number of gear positions with at least one adjacent part.
func (r *GearRegistry) Len() int {
	return len(r.order)
}

// Positions returns every recorded position in discovery order.
func (r *GearRegistry) Positions() []grid.Coord {
	out := make([]grid.Coord, len(r.order))
	copy(out, r.order)
	return out
}

// Values returns a copy of the part numbers recorded for at.
func (r *GearRegistry) Values(at grid.Coord) []int {
	vals := r.parts[at]
	if vals == nil {
		return nil
	}
	out := make([]int, len(vals))
	copy(out, vals)
	return out
}

// Gears returns the positions with exactly two adjacent parts, in discovery
// order. Positions with one part, or three and more, are not gears. A ratio
// that does not fit in an int fails with schematic.ErrNumberOverflow.
func (r *GearRegistry) Gears() ([]Gear, error) {
	var out []Gear
	for _, at := range r.order {
		vals := r.parts[at]
		if len(vals) != 2 {
			continue
		}
		ratio, ok := mulInt(vals[0], vals[1])
		if !ok {
			return nil, fmt.Errorf("gear ratio at %s: %w", at, schematic.ErrNumberOverflow)
		}
		out = append(out, Gear{
			At:    at,
			Parts: [2]int{vals[0], vals[1]},
			Ratio: ratio,
		})
	}
	return out, nil
}
