package domain

// DecisionTree is the full document describing one branching-narrative session.
// It is built once by a loader and never mutated afterwards.
type DecisionTree struct {
	// Theme and Goal are descriptive metadata shown by presenters.
	Theme string `json:"theme" yaml:"theme"`
	Goal  string `json:"goal" yaml:"goal"`

	// Start is the id of the initial node.
	Start string `json:"start" yaml:"start"`

	Nodes    []DecisionNode `json:"nodes" yaml:"nodes"`
	Outcomes []Outcome      `json:"outcomes" yaml:"outcomes"`
}

// DecisionNode is a non-terminal decision point.
type DecisionNode struct {
	ID      string           `json:"id" yaml:"id"`
	Eyebrow string           `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Prompt  string           `json:"prompt" yaml:"prompt"`
	Options []DecisionOption `json:"options" yaml:"options"`
}

// Option returns the option with the given id.
func (n DecisionNode) Option(id string) (DecisionOption, bool) {
	for _, opt := range n.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return DecisionOption{}, false
}

// DecisionOption is a selectable choice on a node.
type DecisionOption struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Helper string `json:"helper,omitempty" yaml:"helper,omitempty"`

	// Target is where the option leads. A nil Target means the option was
	// authored without a destination.
	Target Target `json:"-" yaml:"-"`
}

// Outcome is a terminal narrative reached via an option.
type Outcome struct {
	ID           string   `json:"id" yaml:"id"`
	OptionNumber int      `json:"optionNumber" yaml:"optionNumber"`
	Title        string   `json:"title" yaml:"title"`
	Narrative    string   `json:"narrative" yaml:"narrative"`
	Implications []string `json:"implications,omitempty" yaml:"implications,omitempty"`
	Economics    []string `json:"economics,omitempty" yaml:"economics,omitempty"`
	Actions      []string `json:"actions" yaml:"actions"`
	FAQs         []string `json:"faqs,omitempty" yaml:"faqs,omitempty"`
}
