// Package view turns a ResolvedView into a Markdown document that the text
// runner and the terminal UI hand to glamour.
package view

import (
	"fmt"
	"strings"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// FlowReminder closes every outcome.
const FlowReminder = "Each branch shifts IP, ownership, and velocity. Pick the arc that matches the growth thesis."

// Markdown renders the whole screen: tree header, view body and the controls line.
func Markdown(tree *domain.DecisionTree, v domain.ResolvedView, canGoBack bool) string {
	var sb strings.Builder

	if header := Header(tree); header != "" {
		sb.WriteString(strings.TrimRight(header, "\n"))
		sb.WriteString("\n\n---\n\n")
	}
	sb.WriteString(Body(v))
	sb.WriteString("\n")
	sb.WriteString(Controls(v, canGoBack))
	sb.WriteString("\n")

	return sb.String()
}

// Header renders the tree theme and goal. It is empty when both are unset.
func Header(tree *domain.DecisionTree) string {
	if tree == nil || (tree.Theme == "" && tree.Goal == "") {
		return ""
	}

	var sb strings.Builder
	if tree.Theme != "" {
		fmt.Fprintf(&sb, "# %s\n\n", tree.Theme)
	}
	if tree.Goal != "" {
		fmt.Fprintf(&sb, "%s\n", tree.Goal)
	}
	return sb.String()
}

// Body renders the view variant alone.
func Body(v domain.ResolvedView) string {
	switch v := v.(type) {
	case domain.NodeView:
		return node(v.Node)
	case domain.OutcomeView:
		return outcome(v.Outcome)
	case domain.UnavailableView:
		return unavailable(v.Missing)
	default:
		return ""
	}
}

// Controls lists the commands available on the current view.
func Controls(v domain.ResolvedView, canGoBack bool) string {
	var parts []string
	if nv, ok := v.(domain.NodeView); ok {
		switch n := len(nv.Node.Options); {
		case n == 1:
			parts = append(parts, "`1` choose")
		case n > 1:
			parts = append(parts, fmt.Sprintf("`1-%d` choose", n))
		}
	}
	if canGoBack {
		parts = append(parts, "`b` back")
	}
	parts = append(parts, "`r` restart", "`q` quit")

	return "_" + strings.Join(parts, " · ") + "_"
}

// NodeHeading renders the eyebrow and prompt of a node without its options,
// for presenters that draw their own option picker.
func NodeHeading(n domain.DecisionNode) string {
	var sb strings.Builder
	if n.Eyebrow != "" {
		fmt.Fprintf(&sb, "**%s**\n\n", strings.ToUpper(n.Eyebrow))
	}
	fmt.Fprintf(&sb, "## %s\n", n.Prompt)
	return sb.String()
}

func node(n domain.DecisionNode) string {
	var sb strings.Builder

	sb.WriteString(NodeHeading(n))
	sb.WriteString("\n")

	for i, opt := range n.Options {
		fmt.Fprintf(&sb, "%d. **%s**", i+1, opt.Label)
		if opt.Helper != "" {
			fmt.Fprintf(&sb, "  \n   %s", opt.Helper)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func outcome(o domain.Outcome) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**OPTION %d** · Outcome reached\n\n", o.OptionNumber)
	fmt.Fprintf(&sb, "## %s\n\n", o.Title)
	if o.Narrative != "" {
		fmt.Fprintf(&sb, "%s\n\n", o.Narrative)
	}

	section(&sb, "Implications", o.Implications, false)
	section(&sb, "Economics", o.Economics, false)
	section(&sb, "Recommended actions", o.Actions, true)
	section(&sb, "FAQs", o.FAQs, false)

	fmt.Fprintf(&sb, "> Flow reminder: %s\n", FlowReminder)
	return sb.String()
}

func section(sb *strings.Builder, title string, items []string, ordered bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "### %s\n\n", title)
	for i, item := range items {
		if ordered {
			fmt.Fprintf(sb, "%d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(sb, "- %s\n", item)
		}
	}
	sb.WriteString("\n")
}

func unavailable(m domain.MissingTarget) string {
	return fmt.Sprintf("## Data unavailable\n\nWe couldn't locate the %s referenced in this path (%s). Restart the flow to choose a different branch.\n\n**Restart the decision flow** with `r`.\n", m.Type, m.ID)
}
