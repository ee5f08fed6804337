package engine

import (
	"context"

	"github.com/specialistvlad/schematicscan/internal/aggregate"
	"github.com/specialistvlad/schematicscan/internal/ctxlog"
	"github.com/specialistvlad/schematicscan/internal/grid"
	"github.com/specialistvlad/schematicscan/internal/schematic"
	"golang.org/x/sync/errgroup"
)

type chunk struct {
	from, to  int
	collector *aggregate.Collector
	err       error
}

// splitRows cuts [0, rows) into at most n contiguous, non-empty ranges.
func splitRows(rows, n int) []chunk {
	if n > rows {
		n = rows
	}
	chunks := make([]chunk, 0, n)
	size, extra := rows/n, rows%n
	from := 0
	for i := 0; i < n; i++ {
		to := from + size
		if i < extra {
			to++
		}
		chunks = append(chunks, chunk{from: from, to: to})
		from = to
	}
	return chunks
}

// scanParallel scans row chunks concurrently. Every chunk runs to its own
// first error so the earliest failure in row-major order can be reported.
func scanParallel(ctx context.Context, g *grid.Grid, alphabet schematic.Alphabet, workers int) (*aggregate.Collector, error) {
	logger := ctxlog.FromContext(ctx)
	chunks := splitRows(g.Rows(), workers)
	logger.Debug("Starting parallel scan.", "workers", workers, "chunks", len(chunks))

	eg := new(errgroup.Group)
	eg.SetLimit(workers)
	for i := range chunks {
		c := &chunks[i]
		eg.Go(func() error {
			chunkCtx, _ := ctxlog.With(ctx, "rows_from", c.from, "rows_to", c.to)
			c.collector = aggregate.NewCollector()
			c.err = scanRows(chunkCtx, g, c.from, c.to, alphabet, c.collector)
			return c.err
		})
	}
	if err := eg.Wait(); err != nil {
		// Wait returns the first failure in time, not in row order.
		for _, c := range chunks {
			if c.err != nil {
				return nil, c.err
			}
		}
		return nil, err
	}

	merged := aggregate.NewCollector()
	for _, c := range chunks {
		merged.Merge(c.collector)
	}
	return merged, nil
}
