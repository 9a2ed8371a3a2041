package runner

import (
	"github.com/aretw0/pitchflow/internal/runtime"
	"github.com/aretw0/pitchflow/pkg/domain"
)

func pitchTree() *domain.DecisionTree {
	return &domain.DecisionTree{
		Theme: "Build or partner",
		Goal:  "Choose the arc.",
		Start: "ownership",
		Nodes: []domain.DecisionNode{
			{
				ID:      "ownership",
				Eyebrow: "Step 1",
				Prompt:  "Who owns the IP?",
				Options: []domain.DecisionOption{
					{ID: "keep", Label: "We keep it", Target: domain.GoToNode{ID: "pace"}},
					{ID: "license", Label: "License it", Target: domain.GoToOutcome{ID: "licensing"}},
					{ID: "ghost", Label: "Ghost", Target: domain.GoToNode{ID: "ghost-node"}},
				},
			},
			{
				ID:     "pace",
				Prompt: "How fast?",
				Options: []domain.DecisionOption{
					{ID: "fast", Label: "Fast", Target: domain.GoToOutcome{ID: "venture"}},
				},
			},
		},
		Outcomes: []domain.Outcome{
			{ID: "venture", OptionNumber: 1, Title: "Venture sprint", Actions: []string{"Draft the deck"}},
			{ID: "licensing", OptionNumber: 2, Title: "Licensing", Actions: []string{}},
		},
	}
}

func newEngine() *runtime.Engine {
	return runtime.NewEngine(pitchTree())
}
