package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/pitchflow"
)

// treeCandidates are probed, in order, when no tree path is given.
var treeCandidates = []string{"tree.yaml", "tree.yml", "tree.json"}

// createEngine initializes a pitchflow engine with standard CLI conventions.
func createEngine(ctx context.Context, treePath string, debug bool, logger *slog.Logger) (*pitchflow.Engine, error) {
	engineOpts := []pitchflow.Option{pitchflow.WithLogger(logger)}
	if debug {
		engineOpts = append(engineOpts, pitchflow.WithLifecycleHooks(createDebugHooks(logger)))
	}

	engine, err := pitchflow.New(ctx, determineTreePath(treePath), engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing pitchflow: %w", err)
	}
	return engine, nil
}

// determineTreePath resolves the tree to load.
// A file is used as is; for a directory (or an empty path, meaning the working
// directory) the first conventional candidate inside it wins. Without a match
// the directory itself is read as a Markdown repository.
func determineTreePath(path string) string {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return path
	}

	for _, name := range treeCandidates {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
