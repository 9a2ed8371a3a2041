package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pitchflow/pkg/domain"
)

func TestTreeDocument_ToDomain(t *testing.T) {
	doc := TreeDocument{
		Theme: "Theme",
		Start: "q1",
		Nodes: []NodeDocument{
			{
				ID:     "q1",
				Prompt: "Pick one",
				Options: []OptionDocument{
					{ID: "a", Label: "Next", Next: "q2"},
					{ID: "b", Label: "Outcome", Outcome: "o1"},
					{ID: "c", Label: "Both", Next: "q2", Outcome: "o1"},
					{ID: "d", Label: "Neither"},
				},
			},
			{ID: "q2", Prompt: "Empty"},
		},
		Outcomes: []OutcomeDocument{{ID: "o1", OptionNumber: 2, Title: "Done"}},
	}

	tree := doc.ToDomain()
	require.Len(t, tree.Nodes, 2)

	opts := tree.Nodes[0].Options
	assert.Equal(t, domain.GoToNode{ID: "q2"}, opts[0].Target)
	assert.Equal(t, domain.GoToOutcome{ID: "o1"}, opts[1].Target)
	assert.Equal(t, domain.GoToNode{ID: "q2"}, opts[2].Target, "next takes precedence")
	assert.Nil(t, opts[3].Target)

	assert.NotNil(t, tree.Nodes[1].Options)
	assert.Empty(t, tree.Nodes[1].Options)

	assert.NotNil(t, tree.Outcomes[0].Actions, "actions are required and never nil")
	assert.Nil(t, tree.Outcomes[0].FAQs)
}

func TestFromDomain_RoundTrip(t *testing.T) {
	tree := &domain.DecisionTree{
		Theme: "T",
		Goal:  "G",
		Start: "q1",
		Nodes: []domain.DecisionNode{
			{
				ID:      "q1",
				Eyebrow: "Step 1",
				Prompt:  "P",
				Options: []domain.DecisionOption{
					{ID: "a", Label: "A", Helper: "h", Target: domain.GoToNode{ID: "q1"}},
					{ID: "b", Label: "B", Target: domain.GoToOutcome{ID: "o1"}},
				},
			},
		},
		Outcomes: []domain.Outcome{
			{ID: "o1", OptionNumber: 1, Title: "O", Narrative: "N", Actions: []string{"act"}, FAQs: []string{"q?"}},
		},
	}

	assert.Equal(t, tree, FromDomain(tree).ToDomain())
}
