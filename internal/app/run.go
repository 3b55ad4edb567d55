package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tylerchen0619/NNEF-Tools/internal/ctxlog"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
	"github.com/tylerchen0619/NNEF-Tools/internal/printer"
	"github.com/tylerchen0619/NNEF-Tools/internal/validate"
)

// Run executes the main application logic based on the provided configuration.
// Parse diagnostics and tensor findings are reported to errW and do not make
// the run fail; only an unreadable description or an aborted parse does.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	src, err := os.ReadFile(a.config.StructurePath)
	if err != nil {
		return fmt.Errorf("failed to read graph description: %w", err)
	}
	a.logger.Debug("Graph description read.", "path", a.config.StructurePath, "bytes", len(src))

	pr := printer.New(a.outW, a.classifier)
	if err := a.parser.Parse(ctx, a.config.StructurePath, src, pr); err != nil {
		var parseErr *parse.Error
		if !errors.As(err, &parseErr) {
			return fmt.Errorf("parsing graph description: %w", err)
		}
		a.reportParseError(parseErr)
		a.logger.Debug("Parse diagnostic reported.", "origin_depth", len(parseErr.Origin))
		return nil
	}

	fmt.Fprintln(a.outW, "Parse succeeded")
	a.logger.Debug("Canonical form rendered.", "variables", pr.Variables().Len())

	if a.config.CheckBinary {
		dir := filepath.Dir(a.config.StructurePath)
		findings := validate.CheckTensors(ctx, dir, pr.Variables())
		for _, f := range findings {
			fmt.Fprintln(a.errW, f)
		}
		a.logger.Debug("Tensor data files checked.", "findings", len(findings))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// reportParseError renders the diagnostic with its provenance chain, the
// innermost failure site first and enclosing invocation sites after it.
func (a *App) reportParseError(perr *parse.Error) {
	fmt.Fprintf(a.errW, "Parse error: [%s] %s\n", perr.Pos, perr.Message)
	for _, pos := range perr.Origin {
		fmt.Fprintf(a.errW, "... evaluated from [%s]\n", pos)
	}
}
