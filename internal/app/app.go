package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tylerchen0619/NNEF-Tools/internal/atomics"
	"github.com/tylerchen0619/NNEF-Tools/internal/hclgraph"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	errW       io.Writer
	logger     *slog.Logger
	config     *Config
	parser     parse.Parser
	classifier *atomics.Classifier
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger. Diagnostics
// go to errW so that outW carries nothing but the canonical rendering.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	overrides, malformed := atomics.ParseOverrides(config.AtomicsSpec)
	for _, token := range malformed {
		fmt.Fprintf(errW, "ConfigTokenError: atomic op must be marked with '+' or '-': %q\n", token)
	}
	logger.Debug("Atomic overrides parsed.", "overrides", len(overrides), "malformed", len(malformed))

	parser := hclgraph.NewDriver(hclgraph.Options{
		Flat:   config.Flat,
		Layers: config.Layers,
	})
	logger.Debug("Graph parser configured.", "flat", config.Flat, "layers", config.Layers)

	return &App{
		outW:       outW,
		errW:       errW,
		logger:     logger,
		config:     config,
		parser:     parser,
		classifier: atomics.NewClassifier(overrides),
	}
}
