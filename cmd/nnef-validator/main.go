package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tylerchen0619/NNEF-Tools/internal/app"
	"github.com/tylerchen0619/NNEF-Tools/internal/cli"
)

// main is the entrypoint for the nnef-validator tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The canonical rendering goes to outW; logs, parse diagnostics
// and tensor findings go to errW.
func run(outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	validator := app.NewApp(outW, errW, config)
	return validator.Run(context.Background())
}
