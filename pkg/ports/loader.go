package ports

import (
	"context"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// TreeLoader defines how the engine receives its decision tree.
// This allows the source (single file, Markdown directory, memory) to be decoupled.
type TreeLoader interface {
	// Load returns a fully parsed tree. Cross references are not validated:
	// dangling ids surface later as missing targets during traversal.
	Load(ctx context.Context) (*domain.DecisionTree, error)
}

// Describer is implemented by loaders that can name their source (e.g. a path).
type Describer interface {
	Source() string
}
