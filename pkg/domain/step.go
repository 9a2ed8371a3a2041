package domain

// StepKind tags a Step (and a MissingTarget) as a node or an outcome reference.
type StepKind string

const (
	KindNode    StepKind = "node"
	KindOutcome StepKind = "outcome"
)

// Step is one entry in the navigation history.
type Step struct {
	Kind StepKind `json:"kind"`
	ID   string   `json:"id"`
}

// NodeStep returns a Step pointing at a node.
func NodeStep(id string) Step {
	return Step{Kind: KindNode, ID: id}
}

// OutcomeStep returns a Step pointing at an outcome.
func OutcomeStep(id string) Step {
	return Step{Kind: KindOutcome, ID: id}
}

// MissingTarget is a reference that does not resolve to any known node or outcome.
type MissingTarget struct {
	Type StepKind `json:"type"`
	ID   string   `json:"id"`
}
