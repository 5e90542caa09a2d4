package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/daypack/internal/app"
)

// DefaultSettingsPath is read when it exists and --config is not given.
const DefaultSettingsPath = "daypack.hcl"

// InputDirEnv names the environment variable supplying the default input directory.
const InputDirEnv = "DAYPACK_INPUT_DIR"

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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		cfg    app.Config
		parsed bool
	)
	cmd := &cobra.Command{
		Use:   "daypack -p PACK -d DAY [flags]",
		Short: "Run the solvers of one puzzle day",
		Long: `daypack runs every solver of a single puzzle day against its input
file and prints one "label: answer" line per solver.

Inputs are read from <input-dir>/<pack>/<day>.txt, or from the
published example <input-dir>/<pack>/<day>_test.txt with --test.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			parsed = true
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&cfg.PackName, "pack-name", "p", "", "Name of the puzzle pack, e.g. 'aoc23' or 'euler'.")
	flags.StringVarP(&cfg.Day, "day", "d", "", "Day to run within the pack, e.g. 'day01'.")
	flags.BoolVarP(&cfg.Test, "test", "t", false, "Read the published example input instead of the real one.")
	flags.BoolVarP(&cfg.Censor, "censor", "c", false, "Mask answers in the output.")
	flags.BoolVar(&cfg.Timing, "timing", false, "Print the time taken by each solver.")
	flags.StringVar(&cfg.SettingsPath, "config", DefaultSettingsPath, "Path to a settings file (.hcl, .yaml, .yml) or a directory of them.")
	flags.StringVar(&cfg.InputDir, "input-dir", os.Getenv(InputDirEnv), "Directory holding the pack input files. Overrides the settings.")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	_ = cmd.MarkFlagRequired("pack-name")
	_ = cmd.MarkFlagRequired("day")

	if err := cmd.Execute(); err != nil {
		return nil, false, usageError(err.Error())
	}
	if !parsed {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

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

	if flags.Changed("config") {
		if _, err := os.Stat(cfg.SettingsPath); err != nil {
			return nil, false, usageError("settings path not found: " + cfg.SettingsPath)
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
