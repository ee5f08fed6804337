package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/schematicscan/internal/config"
	"github.com/specialistvlad/schematicscan/internal/ctxlog"
	"github.com/specialistvlad/schematicscan/internal/schematic"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	inR      io.Reader
	logger   *slog.Logger
	config   *Config
	alphabet schematic.Alphabet
}

// NewApp builds an App. Reports go to outW, logs to logW, and inR is read
// when the input path is "-". The scanner profile is loaded here, so a bad
// profile fails before any schematic is read.
func NewApp(outW, logW io.Writer, inR io.Reader, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	profile := config.Default()
	if cfg.ProfilePath != "" {
		var err error
		profile, err = config.LoadProfile(ctx, cfg.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	alphabet, err := profile.Alphabet()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Scanner alphabet ready.", "separator", string(alphabet.Separator()), "gear", string(alphabet.Gear()), "symbols", alphabet.Symbols())

	return &App{
		outW:     outW,
		inR:      inR,
		logger:   logger,
		config:   cfg,
		alphabet: alphabet,
	}, nil
}
