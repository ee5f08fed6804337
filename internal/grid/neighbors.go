// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grid

// Neighbors returns the cells of {row-1,row,row+1} x {col-1,col,col+1} around c,
// excluding c itself and anything outside [0,rows) x [0,cols). The result is in
// row-major order and holds at most eight coordinates.
func Neighbors(c Coord, rows, cols int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		r := c.Row + dr
		if r < 0 || r >= rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			col := c.Col + dc
			if col < 0 || col >= cols {
				continue
			}
			out = append(out, Coord{Row: r, Col: col})
		}
	}
	return out
}

// Neighbors returns the clamped neighbourhood of c within g.
func (g *Grid) Neighbors(c Coord) []Coord {
	return Neighbors(c, g.rows, g.cols)
}
