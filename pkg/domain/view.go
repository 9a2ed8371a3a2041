package domain

// ViewKind identifies which variant a ResolvedView holds.
type ViewKind string

const (
	ViewNode        ViewKind = "node"
	ViewOutcome     ViewKind = "outcome"
	ViewUnavailable ViewKind = "unavailable"
)

// RecoveryAction is a command a presenter can offer on an unavailable view.
type RecoveryAction string

// ActionReset restarts the flow from the initial node.
const ActionReset RecoveryAction = "reset"

// ResolvedView is what the presentation layer renders for the current step.
// Implementations: NodeView, OutcomeView, UnavailableView.
type ResolvedView interface {
	Kind() ViewKind
}

// NodeView carries a decision node to render with its options.
type NodeView struct {
	Node DecisionNode
}

// OutcomeView carries the outcome reached.
type OutcomeView struct {
	Outcome Outcome
}

// UnavailableView reports a dangling reference and how to recover from it.
type UnavailableView struct {
	Missing MissingTarget
	Action  RecoveryAction
}

func (NodeView) Kind() ViewKind        { return ViewNode }
func (OutcomeView) Kind() ViewKind     { return ViewOutcome }
func (UnavailableView) Kind() ViewKind { return ViewUnavailable }

// Unavailable builds the data-unavailable view for a missing reference.
func Unavailable(kind StepKind, id string) UnavailableView {
	return UnavailableView{
		Missing: MissingTarget{Type: kind, ID: id},
		Action:  ActionReset,
	}
}
