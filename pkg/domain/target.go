package domain

// Target is the destination of a DecisionOption.
// It is a closed sum type: the only implementations are GoToNode and GoToOutcome.
type Target interface {
	targetID() string
}

// GoToNode transitions to another DecisionNode.
type GoToNode struct {
	ID string
}

// GoToOutcome transitions to an Outcome.
type GoToOutcome struct {
	ID string
}

func (t GoToNode) targetID() string    { return t.ID }
func (t GoToOutcome) targetID() string { return t.ID }

// TargetOf builds a Target from the two optional reference fields used by
// authored documents. The next node takes precedence over the outcome.
// It returns nil when neither is set.
func TargetOf(next, outcome string) Target {
	switch {
	case next != "":
		return GoToNode{ID: next}
	case outcome != "":
		return GoToOutcome{ID: outcome}
	default:
		return nil
	}
}

// TargetRefs is the inverse of TargetOf.
func TargetRefs(t Target) (next, outcome string) {
	switch v := t.(type) {
	case GoToNode:
		return v.ID, ""
	case GoToOutcome:
		return "", v.ID
	default:
		return "", ""
	}
}
