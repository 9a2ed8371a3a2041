package runner

import (
	"github.com/aretw0/pitchflow/pkg/domain"
	"github.com/aretw0/pitchflow/pkg/ports"
)

// FrameType tags the JSON lines written by the JSONHandler.
type FrameType string

const (
	FrameView   FrameType = "view"
	FrameSystem FrameType = "system"
)

// Frame is the presentation snapshot handed to an IOHandler on every turn.
// Exactly one of Node, Outcome or Missing is set, matching View.
type Frame struct {
	Type      FrameType       `json:"type"`
	Theme     string          `json:"theme,omitempty"`
	Goal      string          `json:"goal,omitempty"`
	View      domain.ViewKind `json:"view"`
	Step      domain.Step     `json:"step"`
	Depth     int             `json:"depth"`
	CanGoBack bool            `json:"canGoBack"`

	Node    *NodeFrame            `json:"node,omitempty"`
	Outcome *domain.Outcome       `json:"outcome,omitempty"`
	Missing *domain.MissingTarget `json:"missing,omitempty"`
	Action  domain.RecoveryAction `json:"action,omitempty"`

	// Markdown is the rendered screen, for hosts that do not build their own.
	Markdown string `json:"markdown,omitempty"`
}

// NodeFrame is the wire shape of a node: options keep the authored
// next/outcome pair instead of the Target sum type.
type NodeFrame struct {
	ID      string        `json:"id"`
	Eyebrow string        `json:"eyebrow,omitempty"`
	Prompt  string        `json:"prompt"`
	Options []OptionFrame `json:"options"`
}

type OptionFrame struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Helper  string `json:"helper,omitempty"`
	Next    string `json:"next,omitempty"`
	Outcome string `json:"outcome,omitempty"`
}

// NewNodeFrame converts a domain node into its wire shape.
func NewNodeFrame(n domain.DecisionNode) NodeFrame {
	nf := NodeFrame{
		ID:      n.ID,
		Eyebrow: n.Eyebrow,
		Prompt:  n.Prompt,
		Options: make([]OptionFrame, 0, len(n.Options)),
	}
	for _, opt := range n.Options {
		next, outcome := domain.TargetRefs(opt.Target)
		nf.Options = append(nf.Options, OptionFrame{
			ID:      opt.ID,
			Label:   opt.Label,
			Helper:  opt.Helper,
			Next:    next,
			Outcome: outcome,
		})
	}
	return nf
}

// NewFrame snapshots the navigator state.
func NewFrame(nav ports.Navigator, markdown string) Frame {
	f := Frame{
		Type:      FrameView,
		Step:      nav.CurrentStep(),
		Depth:     len(nav.History()),
		CanGoBack: nav.CanGoBack(),
		Markdown:  markdown,
	}
	if tree := nav.Tree(); tree != nil {
		f.Theme = tree.Theme
		f.Goal = tree.Goal
	}

	v := nav.Resolve()
	f.View = v.Kind()
	switch v := v.(type) {
	case domain.NodeView:
		node := NewNodeFrame(v.Node)
		f.Node = &node
	case domain.OutcomeView:
		outcome := v.Outcome
		f.Outcome = &outcome
	case domain.UnavailableView:
		missing := v.Missing
		f.Missing = &missing
		f.Action = v.Action
	}

	return f
}
