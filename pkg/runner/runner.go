package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/pitchflow/internal/presentation/view"
	"github.com/aretw0/pitchflow/pkg/ports"
)

// Runner handles the interaction loop of a Navigator using an IOHandler.
// Each turn renders the current view, reads one command and applies it.
// Outcomes are not terminal: the loop only stops on quit, end of input or
// context cancellation.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Renderer transforms the Markdown for the default TextHandler.
	Renderer ContentRenderer

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives nav until the user quits. End of input is a clean exit; a
// cancelled context is returned as its error.
func (r *Runner) Run(ctx context.Context, nav ports.Navigator) error {
	handler := r.resolveHandler()
	redraw := true

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		v := nav.Resolve()
		if redraw {
			frame := NewFrame(nav, view.Markdown(nav.Tree(), v, nav.CanGoBack()))
			if err := handler.Output(ctx, frame); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}

		input, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed", "step", nav.CurrentStep().ID)
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}

		cmd, err := ParseCommand(input, v)
		if errors.Is(err, ErrEmptyCommand) {
			redraw = false
			continue
		}
		if err != nil {
			r.Logger.Debug("rejected command", "input", input, "err", err)
			if err := handler.SystemOutput(ctx, err.Error()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			redraw = false
			continue
		}

		if cmd.Kind == CommandQuit {
			r.Logger.Debug("quit", "step", nav.CurrentStep().ID)
			return nil
		}

		redraw = r.apply(ctx, nav, handler, cmd)
	}
}

// apply executes cmd and reports whether the screen changed.
func (r *Runner) apply(ctx context.Context, nav ports.Navigator, handler IOHandler, cmd Command) bool {
	switch cmd.Kind {
	case CommandSelect:
		if !nav.SelectOptionID(cmd.Option) {
			_ = handler.SystemOutput(ctx, fmt.Sprintf("no option %q on screen", cmd.Option))
			return false
		}
	case CommandBack:
		if !nav.CanGoBack() {
			_ = handler.SystemOutput(ctx, "already at the first step")
			return false
		}
		nav.GoBack()
	case CommandReset:
		nav.Reset()
	}
	return true
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	r.Handler = NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerRenderer(r.Renderer))
	return r.Handler
}
