package dto

import (
	"slices"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// TreeDocument is the decode-side shape of a decision tree document.
// It uses "mapstructure" tags so the same struct serves YAML/JSON maps and Loam frontmatter.
type TreeDocument struct {
	Theme    string            `json:"theme" yaml:"theme" mapstructure:"theme"`
	Goal     string            `json:"goal" yaml:"goal" mapstructure:"goal"`
	Start    string            `json:"start" yaml:"start" mapstructure:"start"`
	Nodes    []NodeDocument    `json:"nodes" yaml:"nodes" mapstructure:"nodes"`
	Outcomes []OutcomeDocument `json:"outcomes" yaml:"outcomes" mapstructure:"outcomes"`
}

type NodeDocument struct {
	ID      string           `json:"id" yaml:"id" mapstructure:"id"`
	Eyebrow string           `json:"eyebrow" yaml:"eyebrow" mapstructure:"eyebrow"`
	Prompt  string           `json:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Options []OptionDocument `json:"options" yaml:"options" mapstructure:"options"`
}

// OptionDocument keeps the authored "next"/"outcome" pair; ToDomain folds it into a Target.
type OptionDocument struct {
	ID      string `json:"id" yaml:"id" mapstructure:"id"`
	Label   string `json:"label" yaml:"label" mapstructure:"label"`
	Helper  string `json:"helper" yaml:"helper" mapstructure:"helper"`
	Next    string `json:"next" yaml:"next" mapstructure:"next"`
	Outcome string `json:"outcome" yaml:"outcome" mapstructure:"outcome"`
}

type OutcomeDocument struct {
	ID           string   `json:"id" yaml:"id" mapstructure:"id"`
	OptionNumber int      `json:"optionNumber" yaml:"optionNumber" mapstructure:"optionNumber"`
	Title        string   `json:"title" yaml:"title" mapstructure:"title"`
	Narrative    string   `json:"narrative" yaml:"narrative" mapstructure:"narrative"`
	Implications []string `json:"implications" yaml:"implications" mapstructure:"implications"`
	Economics    []string `json:"economics" yaml:"economics" mapstructure:"economics"`
	Actions      []string `json:"actions" yaml:"actions" mapstructure:"actions"`
	FAQs         []string `json:"faqs" yaml:"faqs" mapstructure:"faqs"`
}

// ToDomain converts the document into the immutable domain tree.
// Actions and Options are always non-nil; the other lists stay nil when absent.
func (d TreeDocument) ToDomain() *domain.DecisionTree {
	tree := &domain.DecisionTree{
		Theme:    d.Theme,
		Goal:     d.Goal,
		Start:    d.Start,
		Nodes:    make([]domain.DecisionNode, 0, len(d.Nodes)),
		Outcomes: make([]domain.Outcome, 0, len(d.Outcomes)),
	}
	for _, n := range d.Nodes {
		tree.Nodes = append(tree.Nodes, n.ToDomain())
	}
	for _, o := range d.Outcomes {
		tree.Outcomes = append(tree.Outcomes, o.ToDomain())
	}
	return tree
}

func (d NodeDocument) ToDomain() domain.DecisionNode {
	node := domain.DecisionNode{
		ID:      d.ID,
		Eyebrow: d.Eyebrow,
		Prompt:  d.Prompt,
		Options: make([]domain.DecisionOption, 0, len(d.Options)),
	}
	for _, opt := range d.Options {
		node.Options = append(node.Options, opt.ToDomain())
	}
	return node
}

func (d OptionDocument) ToDomain() domain.DecisionOption {
	return domain.DecisionOption{
		ID:     d.ID,
		Label:  d.Label,
		Helper: d.Helper,
		Target: domain.TargetOf(d.Next, d.Outcome),
	}
}

func (d OutcomeDocument) ToDomain() domain.Outcome {
	actions := slices.Clone(d.Actions)
	if actions == nil {
		actions = []string{}
	}
	return domain.Outcome{
		ID:           d.ID,
		OptionNumber: d.OptionNumber,
		Title:        d.Title,
		Narrative:    d.Narrative,
		Implications: slices.Clone(d.Implications),
		Economics:    slices.Clone(d.Economics),
		Actions:      actions,
		FAQs:         slices.Clone(d.FAQs),
	}
}

// FromDomain is the inverse of ToDomain, used by hosts that export a tree.
func FromDomain(tree *domain.DecisionTree) TreeDocument {
	doc := TreeDocument{
		Theme: tree.Theme,
		Goal:  tree.Goal,
		Start: tree.Start,
	}
	for _, n := range tree.Nodes {
		doc.Nodes = append(doc.Nodes, FromNode(n))
	}
	for _, o := range tree.Outcomes {
		doc.Outcomes = append(doc.Outcomes, OutcomeDocument(o))
	}
	return doc
}

// FromNode converts a domain node back into its authored shape.
func FromNode(n domain.DecisionNode) NodeDocument {
	nd := NodeDocument{ID: n.ID, Eyebrow: n.Eyebrow, Prompt: n.Prompt}
	for _, opt := range n.Options {
		next, outcome := domain.TargetRefs(opt.Target)
		nd.Options = append(nd.Options, OptionDocument{
			ID:      opt.ID,
			Label:   opt.Label,
			Helper:  opt.Helper,
			Next:    next,
			Outcome: outcome,
		})
	}
	return nd
}
