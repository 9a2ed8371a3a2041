/*
Package pitchflow is a viewer engine for branching "what-if" decision flows.

A decision tree is a directed graph of decision nodes, each offering options
that lead either to another node or to a terminal outcome. The engine walks
that graph for a single viewer, keeps the visited steps as a history stack so
every choice can be undone, and turns dangling references into a recoverable
"data unavailable" view instead of an error.

# Concept

The tree is loaded once through a TreeLoader port (a YAML or JSON document, a
directory of Markdown documents read with Loam, or an in-memory value) and is
never mutated. Presenters (the line runner, the JSON-lines handler, the
terminal UI) only call the navigation commands and render the ResolvedView.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pitchflow"
		"github.com/aretw0/pitchflow/pkg/domain"
	)

	func main() {
		eng, err := pitchflow.New(context.Background(), "./pitch.yaml")
		if err != nil {
			log.Fatal(err)
		}

		eng.SelectOptionID("keep")

		switch v := eng.Resolve().(type) {
		case domain.NodeView:
			fmt.Println(v.Node.Prompt)
		case domain.OutcomeView:
			fmt.Println(v.Outcome.Title)
		case domain.UnavailableView:
			fmt.Printf("missing %s %q\n", v.Missing.Type, v.Missing.ID)
			eng.Reset()
		}
	}
*/
package pitchflow
