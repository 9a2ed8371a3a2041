package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// GraphOverlay contains traversal state to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
	// Missing is the unresolved target of the last selection, if any.
	Missing *domain.MissingTarget
}

// NewOverlay builds an overlay from an engine history (oldest first) and its
// missing target.
func NewOverlay(history []domain.Step, missing *domain.MissingTarget) *GraphOverlay {
	o := &GraphOverlay{Missing: missing}
	for _, step := range history {
		o.VisitedNodes = append(o.VisitedNodes, step.ID)
	}
	if len(history) > 0 {
		o.CurrentNode = history[len(history)-1].ID
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart for a decision tree.
// It applies semantic styling:
// - Start: ((Circle))
// - Decision node: [/Parallelogram/]
// - Outcome: ([Stadium])
// - Dangling reference: dashed box, reached by a dotted edge
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(tree *domain.DecisionTree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if tree == nil {
		return sb.String()
	}

	known := make(map[string]bool, len(tree.Nodes)+len(tree.Outcomes))
	for _, n := range tree.Nodes {
		known[n.ID] = true
	}
	for _, o := range tree.Outcomes {
		known[o.ID] = true
	}

	var missing []string
	missingSeen := make(map[string]bool)
	addMissing := func(kind domain.StepKind, id string) string {
		safe := missingID(kind, id)
		if !missingSeen[safe] {
			missingSeen[safe] = true
			missing = append(missing, fmt.Sprintf("    %s[\"%s (missing %s)\"]:::missing\n", safe, escape(id), kind))
		}
		return safe
	}

	if !known[tree.Start] {
		addMissing(domain.KindNode, tree.Start)
	}

	for _, node := range tree.Nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[/", "/]"
		if node.ID == tree.Start {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escape(label(node.ID, node.Prompt)), closer)

		for _, opt := range node.Options {
			arrow := fmt.Sprintf("-- \"%s\" -->", escape(label(opt.ID, opt.Label)))
			dashed := fmt.Sprintf("-. \"%s\" .->", escape(label(opt.ID, opt.Label)))

			var to string
			switch target := opt.Target.(type) {
			case domain.GoToNode:
				to = sanitizeMermaidID(target.ID)
				if !known[target.ID] {
					to, arrow = addMissing(domain.KindNode, target.ID), dashed
				}
			case domain.GoToOutcome:
				to = sanitizeMermaidID(target.ID)
				if !known[target.ID] {
					to, arrow = addMissing(domain.KindOutcome, target.ID), dashed
				}
			default:
				to, arrow = addMissing(domain.KindNode, domain.UnknownTargetID), dashed
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, to)
		}
	}

	for _, o := range tree.Outcomes {
		fmt.Fprintf(&sb, "    %s([\"%s\"])\n", sanitizeMermaidID(o.ID), escape(label(o.ID, o.Title)))
	}

	if len(missing) > 0 {
		sb.WriteString("\n    %% Dangling references\n")
		sb.WriteString("    classDef missing fill:#fff,stroke:#e11d48,stroke-width:2px,stroke-dasharray:5 5,color:#000;\n")
		for _, line := range missing {
			sb.WriteString(line)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" && known[id] {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		switch {
		case overlay.Missing != nil:
			fmt.Fprintf(&sb, "    class %s current;\n", missingID(overlay.Missing.Type, overlay.Missing.ID))
		case overlay.CurrentNode != "" && known[overlay.CurrentNode]:
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		case overlay.CurrentNode != "" && overlay.CurrentNode == tree.Start:
			fmt.Fprintf(&sb, "    class %s current;\n", missingID(domain.KindNode, tree.Start))
		}
	}

	return sb.String()
}

func label(id, text string) string {
	if text == "" {
		return id
	}
	return text
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}

func missingID(kind domain.StepKind, id string) string {
	return "missing_" + string(kind) + "_" + sanitizeMermaidID(id)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
