// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grid

import (
	"fmt"
	"strings"
)

// Coord addresses a single cell. Row and Col are zero-based.
type Coord struct {
	Row int
	Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular matrix of characters.
type Grid struct {
	rows  int
	cols  int
	cells []byte
}

// Load splits text on line boundaries and validates that the result is a
// non-empty rectangle. A single trailing empty line (the artifact of a final
// newline) is dropped and a trailing carriage return is stripped from every
// line. Ragged or empty input yields a *MalformedGridError.
func Load(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if len(lines) == 0 {
		return nil, &MalformedGridError{Reason: ErrEmptyGrid}
	}

	cols := len(lines[0])
	if cols == 0 {
		return nil, &MalformedGridError{Reason: ErrEmptyGrid}
	}

	cells := make([]byte, 0, cols*len(lines))
	for i, line := range lines {
		if len(line) != cols {
			return nil, &MalformedGridError{Reason: ErrRaggedGrid, Row: i, Want: cols, Got: len(line)}
		}
		cells = append(cells, line...)
	}

	return &Grid{rows: len(lines), cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns shared by every row.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c addresses a cell of g.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the character at c. It panics if c is out of bounds.
func (g *Grid) At(c Coord) byte {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %s outside %dx%d grid", c, g.rows, g.cols))
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) string {
	return string(g.cells[r*g.cols : (r+1)*g.cols])
}

// String renders the grid back to newline separated text.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return b.String()
}
