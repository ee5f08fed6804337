// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package grid turns raw schematic text into an immutable rectangular matrix of
// bytes and answers the spatial questions the scanner needs about it.
//
// # Core Concepts
//
//   - Grid: the validated rows x cols matrix. Every row has the same length and
//     the grid is never mutated after Load returns it.
//
//   - Coord: a (row, column) address, zero-based, usable as a map key.
//
//   - Neighbors: the clamped Moore neighbourhood of a cell. Interior cells have
//     eight neighbours, edge cells five and corner cells three.
//
// Shape problems (empty input, ragged rows) are reported as *MalformedGridError
// before any scanning begins. Character classification is not this package's
// concern; see package schematic.
package grid
