package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/schematicscan/internal/ctxlog"
	"github.com/specialistvlad/schematicscan/internal/engine"
	"github.com/specialistvlad/schematicscan/internal/fsutil"
	"github.com/specialistvlad/schematicscan/internal/report"
)

// Run analyzes every configured schematic and writes the report. The first
// failing schematic aborts the run and nothing is reported.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sources, batch, err := a.resolveInputs()
	if err != nil {
		return err
	}
	a.logger.Info("Schematics found.", "count", len(sources), "path", a.config.InputPath)

	opts := engine.Options{Alphabet: &a.alphabet, Workers: a.config.Workers}
	entries := make([]report.Entry, 0, len(sources))
	for _, source := range sources {
		fileCtx, logger := ctxlog.With(ctx, "source", source)

		text, err := a.read(source)
		if err != nil {
			return err
		}
		res, err := engine.Analyze(fileCtx, text, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		logger.Info("Schematic analyzed.", "part_sum", res.PartSum, "gear_ratio_sum", res.GearRatioSum)
		entries = append(entries, report.Entry{Source: source, Result: res})
	}

	if err := report.Write(a.outW, a.config.Format, batch, entries); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveInputs lists the schematics to analyze. batch is set when the input
// path is a directory, however many files it holds.
func (a *App) resolveInputs() (sources []string, batch bool, err error) {
	if a.config.InputPath == StdinPath {
		return []string{StdinPath}, false, nil
	}
	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find schematics in %s: %w", a.config.InputPath, err)
	}
	files, err := fsutil.FindFilesByExtension(a.config.InputPath, a.config.Extension)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find schematics in %s: %w", a.config.InputPath, err)
	}
	if len(files) == 0 {
		return nil, false, fmt.Errorf("no %s schematics found in %s", a.config.Extension, a.config.InputPath)
	}
	return files, info.IsDir(), nil
}

func (a *App) read(source string) (string, error) {
	if source == StdinPath {
		if a.inR == nil {
			return "", fmt.Errorf("no standard input available")
		}
		b, err := io.ReadAll(a.inR)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read schematic: %w", err)
	}
	return string(b), nil
}
