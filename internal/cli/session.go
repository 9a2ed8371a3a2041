package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/pitchflow"
	"github.com/aretw0/pitchflow/internal/config"
	"github.com/aretw0/pitchflow/internal/presentation/tui"
	"github.com/aretw0/pitchflow/pkg/runner"
)

// RunSession executes a single viewing session over the configured tree.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	if opts.Banner && opts.Mode != config.ModeJSON {
		tui.PrintBanner(opts.Stdout, pitchflow.Version)
	}

	// Setup signal handling
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	engine, err := createEngine(sigCtx, opts.TreePath, opts.Debug, logger)
	if err != nil {
		return err
	}
	logger.Debug("Session started", "tree", engine.Name, "mode", opts.Mode, "style", opts.Style)

	var runErr error
	switch opts.Mode {
	case config.ModeTUI:
		runErr = runTUI(sigCtx, engine, opts)
	default:
		runErr = runLoop(sigCtx, engine, opts, logger)
	}

	// If context was canceled (signal received), ensure runErr reflects it
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(opts.Stdout, engine.CurrentStep(), runErr, opts.Mode == config.ModeJSON, sigCtx.Signal())

	return handleExecutionError(runErr)
}

func runLoop(ctx context.Context, engine *pitchflow.Engine, opts RunOptions, logger *slog.Logger) error {
	var handler runner.IOHandler
	if opts.Mode == config.ModeJSON {
		handler = runner.NewJSONHandler(opts.Stdin, opts.Stdout)
	} else {
		render, err := tui.NewRenderer(tui.WithStyle(opts.Style))
		if err != nil {
			return fmt.Errorf("error creating renderer: %w", err)
		}
		text := runner.NewTextHandler(opts.Stdin, opts.Stdout,
			runner.WithTextHandlerRenderer(render),
			runner.WithTextHandlerMaxInputSize(opts.MaxInputSize),
		)
		defer text.Close()
		handler = text
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
	)
	return r.Run(ctx, engine)
}

func runTUI(ctx context.Context, engine *pitchflow.Engine, opts RunOptions) error {
	render, err := tui.NewRenderer(tui.WithStyle(opts.Style))
	if err != nil {
		return fmt.Errorf("error creating renderer: %w", err)
	}
	return tui.Run(ctx, engine, tui.WithMarkdownRenderer(render))
}
