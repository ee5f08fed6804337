package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/schematicscan/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(msg string) *ExitError {
	return &ExitError{Code: 2, Message: msg}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		cfg     app.Config
		matched bool
	)
	cmd := &cobra.Command{
		Use:   "schematicscan [flags] PATH",
		Short: "Sum the part numbers and gear ratios of engine schematics.",
		Long: `schematicscan reads engine schematics (rectangular grids of digits, '.' and
symbols) and prints two totals: the sum of every number touching a symbol,
and the sum of gear ratios for every gear touching exactly two numbers.

PATH is a schematic file, a directory searched for files ending in --ext,
or "-" to read a single schematic from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			matched = true
			if len(positional) > 0 {
				cfg.InputPath = positional[0]
			}
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&cfg.ProfilePath, "profile", "p", "", "Path to an HCL scanner profile.")
	flags.StringVar(&cfg.Extension, "ext", ".txt", "File suffix of schematics when PATH is a directory.")
	flags.StringVarP(&cfg.Format, "format", "f", "text", "Report format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.IntVarP(&cfg.Workers, "workers", "w", 0, "Scan rows with this many workers. 0 or 1 scans sequentially.")

	if err := cmd.Execute(); err != nil {
		return nil, false, usageError(err.Error())
	}
	if !matched {
		// Help was printed.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	if cfg.InputPath == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		_ = cmd.Usage()
		return nil, true, nil
	}

	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
