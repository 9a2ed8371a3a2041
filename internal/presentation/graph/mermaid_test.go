package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/pitchflow/internal/presentation/graph"
	"github.com/aretw0/pitchflow/pkg/domain"
)

func sampleTree() *domain.DecisionTree {
	return &domain.DecisionTree{
		Start: "ownership",
		Nodes: []domain.DecisionNode{
			{
				ID:     "ownership",
				Prompt: `Who owns the "core" IP?`,
				Options: []domain.DecisionOption{
					{ID: "keep", Label: "We keep it", Target: domain.GoToNode{ID: "pace"}},
					{ID: "license", Label: "License", Target: domain.GoToOutcome{ID: "licensing"}},
					{ID: "ghost", Label: "Ghost", Target: domain.GoToNode{ID: "draft-2"}},
					{ID: "blank", Label: "Blank"},
				},
			},
			{
				ID:     "pace",
				Prompt: "How fast?",
				Options: []domain.DecisionOption{
					{ID: "fast", Label: "Fast", Target: domain.GoToOutcome{ID: "venture.v2"}},
					{ID: "gone", Label: "Gone", Target: domain.GoToOutcome{ID: "o404"}},
				},
			},
		},
		Outcomes: []domain.Outcome{
			{ID: "licensing", Title: "Licensing"},
			{ID: "venture.v2"},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	got := graph.GenerateMermaid(sampleTree(), nil)

	tests := []struct {
		name     string
		contains []string
	}{
		{
			name:     "Start Node Shape",
			contains: []string{`ownership(("Who owns the 'core' IP?"))`},
		},
		{
			name:     "Decision Node Shape",
			contains: []string{`pace[/"How fast?"/]`},
		},
		{
			name:     "Outcome Shape Falls Back To ID",
			contains: []string{`licensing(["Licensing"])`, `venture_v2(["venture.v2"])`},
		},
		{
			name: "Labelled Edges",
			contains: []string{
				`ownership -- "We keep it" --> pace`,
				`ownership -- "License" --> licensing`,
				`pace -- "Fast" --> venture_v2`,
			},
		},
		{
			name: "Dangling References",
			contains: []string{
				`ownership -. "Ghost" .-> missing_node_draft_2`,
				`ownership -. "Blank" .-> missing_node_unknown`,
				`pace -. "Gone" .-> missing_outcome_o404`,
				`missing_node_draft_2["draft-2 (missing node)"]:::missing`,
				`missing_outcome_o404["o404 (missing outcome)"]:::missing`,
				"classDef missing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}

	assert.NotContains(t, got, "Overlay Styles")
}

func TestGenerateMermaid_DeduplicatesMissing(t *testing.T) {
	tree := &domain.DecisionTree{
		Start: "a",
		Nodes: []domain.DecisionNode{{
			ID: "a",
			Options: []domain.DecisionOption{
				{ID: "x", Label: "X"},
				{ID: "y", Label: "Y"},
			},
		}},
	}

	got := graph.GenerateMermaid(tree, nil)
	assert.Equal(t, 1, strings.Count(got, `missing_node_unknown["unknown (missing node)"]`))
	assert.Contains(t, got, `a(("a"))`)
}

func TestGenerateMermaid_MissingStart(t *testing.T) {
	got := graph.GenerateMermaid(&domain.DecisionTree{Start: "start"}, graph.NewOverlay([]domain.Step{domain.NodeStep("start")}, nil))

	assert.Contains(t, got, `missing_node_start["start (missing node)"]:::missing`)
	assert.Contains(t, got, "class missing_node_start current;")
	assert.NotContains(t, got, "class start visited;")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	history := []domain.Step{
		domain.NodeStep("ownership"),
		domain.NodeStep("pace"),
		domain.OutcomeStep("venture.v2"),
	}

	got := graph.GenerateMermaid(sampleTree(), graph.NewOverlay(history, nil))

	assert.Contains(t, got, "classDef visited")
	assert.Contains(t, got, "class ownership visited;")
	assert.Contains(t, got, "class pace visited;")
	assert.Contains(t, got, "class venture_v2 current;")
}

func TestGenerateMermaid_OverlayWithMissing(t *testing.T) {
	missing := &domain.MissingTarget{Type: domain.KindOutcome, ID: "o404"}
	history := []domain.Step{domain.NodeStep("ownership"), domain.NodeStep("pace")}

	got := graph.GenerateMermaid(sampleTree(), graph.NewOverlay(history, missing))

	assert.Contains(t, got, "class pace visited;")
	assert.Contains(t, got, "class missing_outcome_o404 current;")
	assert.NotContains(t, got, "class pace current;")
}

func TestNewOverlay(t *testing.T) {
	o := graph.NewOverlay([]domain.Step{domain.NodeStep("a"), domain.OutcomeStep("b")}, nil)
	assert.Equal(t, []string{"a", "b"}, o.VisitedNodes)
	assert.Equal(t, "b", o.CurrentNode)
	assert.Nil(t, o.Missing)

	empty := graph.NewOverlay(nil, nil)
	assert.Empty(t, empty.CurrentNode)
}

func TestGenerateMermaid_NilTree(t *testing.T) {
	assert.Equal(t, "graph TD\n", graph.GenerateMermaid(nil, nil))
}
