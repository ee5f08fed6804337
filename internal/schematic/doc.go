// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package schematic finds part numbers in an engine schematic grid.
//
// Every cell is classified by an Alphabet as a digit, the separator or a
// symbol. The scanner walks the grid row-major and accumulates maximal
// horizontal digit runs. While a run is in progress each digit looks at its
// clamped neighbourhood; touching any symbol makes the run a part, and touching
// the gear character records that gear's position. When the run ends (on a
// non-digit cell or at the end of the row) a part is emitted if it touched a
// symbol and is silently dropped otherwise.
//
// Runs never continue across a row boundary.
package schematic
