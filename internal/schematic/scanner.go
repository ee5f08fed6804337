// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package schematic

import (
	"fmt"
	"math"

	"github.com/specialistvlad/schematicscan/internal/grid"
)

// Part is a completed digit run that touches at least one symbol.
type Part struct {
	Value int
	// At is the cell of the leftmost digit.
	At  grid.Coord
	Len int
	// Gears lists each adjacent gear position once, in discovery order.
	Gears []grid.Coord
}

// EmitFunc receives every part in row-major order of its first digit.
type EmitFunc func(Part)

// run is the accumulating state. A nil *run means the scanner is idle, so
// completing a run resets every field at once.
type run struct {
	start    grid.Coord
	length   int
	value    int
	adjacent bool
	gears    []grid.Coord
	seen     map[grid.Coord]struct{}
}

func (r *run) push(digit int) error {
	if r.value > (math.MaxInt-digit)/10 {
		return ErrNumberOverflow
	}
	r.value = r.value*10 + digit
	r.length++
	return nil
}

func (r *run) addGear(c grid.Coord) {
	if _, ok := r.seen[c]; ok {
		return
	}
	if r.seen == nil {
		r.seen = make(map[grid.Coord]struct{})
	}
	r.seen[c] = struct{}{}
	r.gears = append(r.gears, c)
}

// complete hands the run to emit if it touched a symbol.
func (r *run) complete(emit EmitFunc) {
	if r == nil || !r.adjacent {
		return
	}
	emit(Part{Value: r.value, At: r.start, Len: r.length, Gears: r.gears})
}

// ScanRow scans a single row of g. Numbers never span rows, so rows can be
// scanned independently and in any order.
func ScanRow(g *grid.Grid, row int, a Alphabet, emit EmitFunc) error {
	var cur *run
	for col := 0; col < g.Cols(); col++ {
		at := grid.Coord{Row: row, Col: col}
		ch := g.At(at)

		kind, ok := a.Classify(ch)
		if !ok {
			return &UnexpectedCharacterError{Char: ch, At: at}
		}
		if kind != KindDigit {
			cur.complete(emit)
			cur = nil
			continue
		}

		if cur == nil {
			cur = &run{start: at}
		}
		if err := cur.push(int(ch - '0')); err != nil {
			return fmt.Errorf("number starting at %s: %w", cur.start, err)
		}

		for _, n := range g.Neighbors(at) {
			nch := g.At(n)
			if !a.IsSymbol(nch) {
				continue
			}
			cur.adjacent = true
			if a.IsGear(nch) {
				cur.addGear(n)
			}
		}
	}
	// End of row always completes the run in progress.
	cur.complete(emit)
	return nil
}

// Scan scans every row of g in order and stops at the first error.
func Scan(g *grid.Grid, a Alphabet, emit EmitFunc) error {
	for row := 0; row < g.Rows(); row++ {
		if err := ScanRow(g, row, a, emit); err != nil {
			return err
		}
	}
	return nil
}
