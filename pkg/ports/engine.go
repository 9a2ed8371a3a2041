package ports

import (
	"github.com/aretw0/pitchflow/pkg/domain"
)

// Navigator defines the stateful traversal surface that presenters drive.
// Both the runtime engine and the library facade satisfy it.
type Navigator interface {
	// Tree returns the loaded decision tree. Callers must not mutate it.
	Tree() *domain.DecisionTree

	// Resolve returns the view to render for the current state.
	Resolve() domain.ResolvedView

	CurrentStep() domain.Step
	CanGoBack() bool
	History() []domain.Step
	Missing() (domain.MissingTarget, bool)

	// SelectOptionID follows an option of the node on screen. It returns false,
	// leaving the state untouched, when no such option is shown.
	SelectOptionID(id string) bool
	GoBack()
	Reset()
}
