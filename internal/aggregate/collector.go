package aggregate

import (
	"fmt"

	"github.com/specialistvlad/schematicscan/internal/schematic"
)

// Result holds both schematic totals.
type Result struct {
	PartSum      int
	GearRatioSum int
	PartCount    int
	Gears        []Gear
}

// Collector computes sum mode and gear mode in a single pass over the parts.
// It is not safe for concurrent use; give each goroutine its own and Merge.
//
// The first overflow of the part sum is kept in the Collector and returned
// by Result; later parts are ignored.
type Collector struct {
	sum   int
	count int
	gears *GearRegistry
	err   error
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{gears: NewGearRegistry()}
}

// Add folds one emitted part into both totals. Identical values found at
// different places are counted each time.
func (c *Collector) Add(p schematic.Part) {
	if c.err != nil {
		return
	}
	sum, ok := addInt(c.sum, p.Value)
	if !ok {
		c.err = fmt.Errorf("part sum at part %s: %w", p.At, schematic.ErrNumberOverflow)
		return
	}
	c.sum = sum
	c.count++
	c.gears.Add(p.Value, p.Gears)
}

// Merge folds other into c. Merging collectors of consecutive row ranges in
// order gives the same totals as collecting the whole grid sequentially.
func (c *Collector) Merge(other *Collector) {
	if c.err != nil {
		return
	}
	if other.err != nil {
		c.err = other.err
		return
	}
	sum, ok := addInt(c.sum, other.sum)
	if !ok {
		c.err = fmt.Errorf("part sum: %w", schematic.ErrNumberOverflow)
		return
	}
	c.sum = sum
	c.count += other.count
	c.gears.Merge(other.gears)
}

// Err returns the overflow recorded so far, if any.
func (c *Collector) Err() error {
	return c.err
}

// Registry exposes the gear registry built so far.
func (c *Collector) Registry() *GearRegistry {
	return c.gears
}

// Result finalizes the totals. It fails with schematic.ErrNumberOverflow if
// the part sum, any gear ratio or the gear ratio sum does not fit in an int.
func (c *Collector) Result() (Result, error) {
	if c.err != nil {
		return Result{}, c.err
	}
	gears, err := c.gears.Gears()
	if err != nil {
		return Result{}, err
	}
	ratioSum := 0
	for _, g := range gears {
		var ok bool
		if ratioSum, ok = addInt(ratioSum, g.Ratio); !ok {
			return Result{}, fmt.Errorf("gear ratio sum at gear %s: %w", g.At, schematic.ErrNumberOverflow)
		}
	}
	return Result{
		PartSum:      c.sum,
		GearRatioSum: ratioSum,
		PartCount:    c.count,
		Gears:        gears,
	}, nil
}
