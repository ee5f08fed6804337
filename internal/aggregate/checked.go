package aggregate

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/specialistvlad/schematicscan/internal/schematic"
)

// addInt adds two non-negative ints, reporting false on overflow.
func addInt(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// mulInt multiplies two non-negative ints, reporting false on overflow.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// Totals sums the part and gear ratio totals of several results.
func Totals(results ...Result) (partSum, gearRatioSum int, err error) {
	var ok bool
	for _, r := range results {
		if partSum, ok = addInt(partSum, r.PartSum); !ok {
			return 0, 0, fmt.Errorf("total part sum: %w", schematic.ErrNumberOverflow)
		}
		if gearRatioSum, ok = addInt(gearRatioSum, r.GearRatioSum); !ok {
			return 0, 0, fmt.Errorf("total gear ratio sum: %w", schematic.ErrNumberOverflow)
		}
	}
	return partSum, gearRatioSum, nil
}
