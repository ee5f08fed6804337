// Package engine runs the whole schematic pipeline for one input: it loads the
// grid, scans it for parts and folds the parts into an aggregate.Result.
//
// With Options.Workers above one the rows are split into contiguous chunks that
// are scanned concurrently, each into its own aggregate.Collector. Because a
// part never spans two rows the chunks are independent, and merging the
// collectors in chunk order reproduces the sequential result exactly,
// including the order of the gear listing. When several rows are malformed the
// error reported is always the first one in row-major order.
//
// Any error aborts the run and no partial totals are returned.
package engine
