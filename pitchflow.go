package pitchflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/pitchflow/internal/runtime"
	"github.com/aretw0/pitchflow/pkg/adapters/file"
	loamAdapter "github.com/aretw0/pitchflow/pkg/adapters/loam"
	"github.com/aretw0/pitchflow/pkg/domain"
	"github.com/aretw0/pitchflow/pkg/ports"
)

// Engine is the high-level entry point for the pitchflow library.
// It loads a decision tree once and wraps the traversal runtime.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.TreeLoader
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom TreeLoader, bypassing path based detection.
func WithLoader(l ports.TreeLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine and the default loaders.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New loads the decision tree and positions the engine at its start node.
//
// A directory path is read as a Loam repository of Markdown documents; a
// .yaml, .yml or .json path is read as a single document. If WithLoader is
// provided, path is only used as a descriptive name and may be empty.
func New(ctx context.Context, path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("tree path is required when no custom loader is provided")
		}
		loader, err := DetectLoader(path, eng.logger)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	}

	if path != "" {
		eng.Name = trimName(path)
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("tree", eng.Name)
	}

	tree, err := eng.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree: %w", err)
	}

	eng.runtime = runtime.NewEngine(tree,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	eng.logger.Debug("tree loaded",
		"nodes", len(tree.Nodes),
		"outcomes", len(tree.Outcomes),
		"start", tree.Start,
	)

	return eng, nil
}

// DetectLoader picks the TreeLoader for path: Loam for directories, the file
// adapter for YAML and JSON documents.
func DetectLoader(path string, logger *slog.Logger) (ports.TreeLoader, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	if info.IsDir() {
		l, err := loamAdapter.Open(path, loamAdapter.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	if _, err := file.DetectFormat(path); err != nil {
		return nil, err
	}
	return file.New(path, file.WithLogger(logger)), nil
}

func trimName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return base[:len(base)-len(filepath.Ext(base))]
}

// Tree returns the loaded decision tree.
func (e *Engine) Tree() *domain.DecisionTree {
	return e.runtime.Tree()
}

// Resolve returns the view for the current state.
func (e *Engine) Resolve() domain.ResolvedView {
	return e.runtime.Resolve()
}

// CurrentStep returns the step on top of the history.
func (e *Engine) CurrentStep() domain.Step {
	return e.runtime.CurrentStep()
}

// CanGoBack reports whether GoBack would move.
func (e *Engine) CanGoBack() bool {
	return e.runtime.CanGoBack()
}

// Missing returns the unresolved target of the last selection, if any.
func (e *Engine) Missing() (domain.MissingTarget, bool) {
	return e.runtime.Missing()
}

// History returns a copy of the visited steps, oldest first.
func (e *Engine) History() []domain.Step {
	return e.runtime.History()
}

// SelectOption follows the option's target.
func (e *Engine) SelectOption(option domain.DecisionOption) {
	e.runtime.SelectOption(option)
}

// SelectOptionID follows the option with the given id on the current node.
func (e *Engine) SelectOptionID(id string) bool {
	return e.runtime.SelectOptionID(id)
}

// GoBack returns to the previous step.
func (e *Engine) GoBack() {
	e.runtime.GoBack()
}

// Reset restarts the flow from the start node.
func (e *Engine) Reset() {
	e.runtime.Reset()
}

// Loader returns the underlying TreeLoader used by the engine.
func (e *Engine) Loader() ports.TreeLoader {
	return e.loader
}
