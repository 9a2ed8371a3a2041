package pitchflow_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/pitchflow"
	"github.com/aretw0/pitchflow/pkg/adapters/memory"
	"github.com/aretw0/pitchflow/pkg/domain"
)

// ExampleNew_memory walks a small tree injected through the memory loader,
// including a dangling reference and the recovery through Reset.
func ExampleNew_memory() {
	tree := &domain.DecisionTree{
		Theme: "Build or partner",
		Start: "start",
		Nodes: []domain.DecisionNode{
			{
				ID:     "start",
				Prompt: "Who owns the IP?",
				Options: []domain.DecisionOption{
					{ID: "keep", Label: "We keep it", Target: domain.GoToOutcome{ID: "venture"}},
					{ID: "broken", Label: "Not written yet", Target: domain.GoToNode{ID: "draft"}},
				},
			},
		},
		Outcomes: []domain.Outcome{
			{ID: "venture", OptionNumber: 1, Title: "Venture sprint", Actions: []string{}},
		},
	}

	eng, err := pitchflow.New(context.Background(), "", pitchflow.WithLoader(memory.NewLoader(tree)))
	if err != nil {
		log.Fatal(err)
	}

	eng.SelectOptionID("keep")
	if v, ok := eng.Resolve().(domain.OutcomeView); ok {
		fmt.Printf("Outcome: %s\n", v.Outcome.Title)
	}

	eng.GoBack()
	eng.SelectOptionID("broken")
	if v, ok := eng.Resolve().(domain.UnavailableView); ok {
		fmt.Printf("Unavailable: %s %s (%s)\n", v.Missing.Type, v.Missing.ID, v.Action)
	}

	eng.Reset()
	fmt.Printf("Current: %s\n", eng.CurrentStep().ID)
	// Output:
	// Outcome: Venture sprint
	// Unavailable: node draft (reset)
	// Current: start
}
