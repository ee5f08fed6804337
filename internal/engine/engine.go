package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/schematicscan/internal/aggregate"
	"github.com/specialistvlad/schematicscan/internal/ctxlog"
	"github.com/specialistvlad/schematicscan/internal/grid"
	"github.com/specialistvlad/schematicscan/internal/schematic"
)

// Options tunes a single Analyze call. The zero value scans sequentially with
// the default alphabet.
type Options struct {
	Alphabet *schematic.Alphabet
	// Workers above one enables the row-chunked parallel scan.
	Workers int
}

func (o Options) alphabet() schematic.Alphabet {
	if o.Alphabet != nil {
		return *o.Alphabet
	}
	return schematic.DefaultAlphabet()
}

// Analyze computes both totals for the schematic in text.
func Analyze(ctx context.Context, text string, opts Options) (aggregate.Result, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := grid.Load(text)
	if err != nil {
		return aggregate.Result{}, fmt.Errorf("failed to load grid: %w", err)
	}
	logger.Debug("Grid loaded.", "rows", g.Rows(), "cols", g.Cols())

	alphabet := opts.alphabet()

	var collector *aggregate.Collector
	if opts.Workers > 1 && g.Rows() > 1 {
		collector, err = scanParallel(ctx, g, alphabet, opts.Workers)
	} else {
		collector, err = scanSequential(ctx, g, alphabet)
	}
	if err != nil {
		return aggregate.Result{}, fmt.Errorf("failed to scan grid: %w", err)
	}

	res, err := collector.Result()
	if err != nil {
		return aggregate.Result{}, fmt.Errorf("failed to aggregate parts: %w", err)
	}
	logger.Debug("Scan finished.", "parts", res.PartCount, "gear_candidates", collector.Registry().Len(), "gears", len(res.Gears))
	return res, nil
}

func scanSequential(ctx context.Context, g *grid.Grid, alphabet schematic.Alphabet) (*aggregate.Collector, error) {
	collector := aggregate.NewCollector()
	if err := scanRows(ctx, g, 0, g.Rows(), alphabet, collector); err != nil {
		return nil, err
	}
	return collector, nil
}

// scanRows scans rows [from, to) into collector.
func scanRows(ctx context.Context, g *grid.Grid, from, to int, alphabet schematic.Alphabet, collector *aggregate.Collector) error {
	logger := ctxlog.FromContext(ctx)
	trace := logger.Enabled(ctx, slog.LevelDebug)

	emit := collector.Add
	if trace {
		emit = func(p schematic.Part) {
			logger.Debug("Parsed part number.", "value", p.Value, "row", p.At.Row, "col", p.At.Col, "gears", len(p.Gears))
			collector.Add(p)
		}
	}

	for row := from; row < to; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := schematic.ScanRow(g, row, alphabet, emit); err != nil {
			return err
		}
	}
	return nil
}
