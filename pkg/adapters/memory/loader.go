package memory

import (
	"context"

	"github.com/aretw0/pitchflow/internal/dto"
	"github.com/aretw0/pitchflow/pkg/domain"
)

// Loader implements ports.TreeLoader over an in-memory tree.
type Loader struct {
	tree *domain.DecisionTree
}

// NewLoader creates a loader serving a snapshot of the given tree.
// Later changes to the caller's tree are not observed.
func NewLoader(tree *domain.DecisionTree) *Loader {
	if tree == nil {
		tree = &domain.DecisionTree{}
	}
	return &Loader{tree: snapshot(tree)}
}

// Load returns a fresh copy of the tree on every call.
func (l *Loader) Load(ctx context.Context) (*domain.DecisionTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snapshot(l.tree), nil
}

// Source identifies the loader in logs.
func (l *Loader) Source() string {
	return "memory"
}

func snapshot(tree *domain.DecisionTree) *domain.DecisionTree {
	doc := dto.FromDomain(tree)
	return doc.ToDomain()
}
