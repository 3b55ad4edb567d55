package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tylerchen0619/NNEF-Tools/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nnef-validator", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
nnef-validator - Parses, canonicalizes and cross-checks neural network graph descriptions.

Usage:
  nnef-validator [options] STRUCTURE_PATH

Arguments:
  STRUCTURE_PATH
    Path to an .hcl graph description file.

Options:
`)
		flagSet.PrintDefaults()
	}

	flatFlag := flagSet.Bool("flat", false, "Use the flat dialect: fragment definitions are rejected.")
	layersFlag := flagSet.Bool("layers", false, "Enable the predefined layer-level fragments.")
	binaryFlag := flagSet.Bool("binary", false, "Cross-check variable tensors against their binary data files.")
	atomicsFlag := flagSet.String("atomics", "", "Whitespace-separated {+|-}opName tokens overriding atomic treatment.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("expected a single structure path, got %d arguments", flagSet.NArg()),
		}
	}
	path := flagSet.Arg(0)
	slog.Debug("Structure path determined.", "path", path)

	if path == "" {
		slog.Debug("No structure path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		StructurePath: path,
		Flat:          *flatFlag,
		Layers:        *layersFlag,
		CheckBinary:   *binaryFlag,
		AtomicsSpec:   *atomicsFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
