package loam

import (
	"github.com/aretw0/pitchflow/internal/dto"
)

// Document kinds recognised in frontmatter.
const (
	KindTree    = "tree"
	KindNode    = "node"
	KindOutcome = "outcome"
)

// DocumentMetadata represents the frontmatter of a pitchflow document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
// A document without a kind is treated as a node.
type DocumentMetadata struct {
	Kind string `json:"kind" mapstructure:"kind"`
	ID   string `json:"id" mapstructure:"id"`

	// Tree manifest
	Theme string `json:"theme" mapstructure:"theme"`
	Goal  string `json:"goal" mapstructure:"goal"`
	Start string `json:"start" mapstructure:"start"`

	// Node
	Eyebrow string               `json:"eyebrow" mapstructure:"eyebrow"`
	Prompt  string               `json:"prompt" mapstructure:"prompt"`
	Options []dto.OptionDocument `json:"options" mapstructure:"options"`

	// Outcome
	OptionNumber int      `json:"optionNumber" mapstructure:"optionNumber"`
	Title        string   `json:"title" mapstructure:"title"`
	Narrative    string   `json:"narrative" mapstructure:"narrative"`
	Implications []string `json:"implications" mapstructure:"implications"`
	Economics    []string `json:"economics" mapstructure:"economics"`
	Actions      []string `json:"actions" mapstructure:"actions"`
	FAQs         []string `json:"faqs" mapstructure:"faqs"`
}
