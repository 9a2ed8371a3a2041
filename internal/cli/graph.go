package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/pitchflow/internal/presentation/graph"
	"github.com/aretw0/pitchflow/pkg/domain"
)

// RunGraph prints the tree as a Mermaid flowchart. The replay ids are
// selected in order first, so the chart highlights the resulting path.
func RunGraph(ctx context.Context, treePath string, replay []string, w io.Writer) error {
	engine, err := createEngine(ctx, treePath, false, createLogger(false))
	if err != nil {
		return err
	}

	for _, id := range replay {
		if !engine.SelectOptionID(id) {
			return fmt.Errorf("replay: no option %q at %s '%s'", id, engine.CurrentStep().Kind, engine.CurrentStep().ID)
		}
		if _, missing := engine.Missing(); missing {
			break
		}
	}

	var missing *domain.MissingTarget
	if m, ok := engine.Missing(); ok {
		missing = &m
	}

	_, err = fmt.Fprintln(w, graph.GenerateMermaid(engine.Tree(), graph.NewOverlay(engine.History(), missing)))
	return err
}
