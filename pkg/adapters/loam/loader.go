package loam

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/pitchflow/internal/dto"
	"github.com/aretw0/pitchflow/pkg/domain"
)

// Loader adapts a Loam repository of Markdown documents to the TreeLoader port.
// Each document is a node, an outcome or the tree manifest (see DocumentMetadata).
// The document body is the node prompt or the outcome narrative unless set in frontmatter.
type Loader struct {
	Repo   *loam.TypedRepository[DocumentMetadata]
	source string
	logger *slog.Logger
}

// Option defines a functional option for configuring the Loader.
type Option func(*Loader)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a new Loam adapter over an existing typed repository.
func New(repo *loam.TypedRepository[DocumentMetadata], opts ...Option) *Loader {
	l := &Loader{
		Repo:   repo,
		source: "loam",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open initializes a read-only Loam repository at dir and wraps it.
// Strict mode keeps numbers consistent (json.Number) across Markdown and JSON documents.
func Open(dir string, opts ...Option) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	l := New(loam.NewTypedRepository[DocumentMetadata](repo), opts...)
	l.source = absPath
	return l, nil
}

// Source returns the repository path (or "loam" for injected repositories).
func (l *Loader) Source() string {
	return l.source
}

// Load lists every document in the repository and assembles the tree.
func (l *Loader) Load(ctx context.Context) (*domain.DecisionTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyTree
	}

	// Deterministic order regardless of the filesystem walk.
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})

	var doc dto.TreeDocument
	manifest := ""
	seen := make(map[string]string)

	for _, d := range docs {
		meta := d.Data

		id := meta.ID
		if id == "" {
			id = d.ID
		}
		id = trimExtension(id)

		switch strings.ToLower(meta.Kind) {
		case KindTree:
			if manifest != "" {
				return nil, fmt.Errorf("tree manifest defined in both '%s' and '%s'", manifest, d.ID)
			}
			manifest = d.ID
			doc.Theme = meta.Theme
			if meta.Goal == "" {
				if doc.Goal, err = l.body(ctx, d.ID); err != nil {
					return nil, err
				}
			} else {
				doc.Goal = meta.Goal
			}
			doc.Start = meta.Start
			continue

		case KindOutcome:
			if err := claim(seen, id, d.ID); err != nil {
				return nil, err
			}
			narrative := meta.Narrative
			if narrative == "" {
				if narrative, err = l.body(ctx, d.ID); err != nil {
					return nil, err
				}
			}
			doc.Outcomes = append(doc.Outcomes, dto.OutcomeDocument{
				ID:           id,
				OptionNumber: meta.OptionNumber,
				Title:        meta.Title,
				Narrative:    narrative,
				Implications: meta.Implications,
				Economics:    meta.Economics,
				Actions:      meta.Actions,
				FAQs:         meta.FAQs,
			})

		case KindNode, "":
			if err := claim(seen, id, d.ID); err != nil {
				return nil, err
			}
			prompt := meta.Prompt
			if prompt == "" {
				if prompt, err = l.body(ctx, d.ID); err != nil {
					return nil, err
				}
			}
			doc.Nodes = append(doc.Nodes, dto.NodeDocument{
				ID:      id,
				Eyebrow: meta.Eyebrow,
				Prompt:  prompt,
				Options: meta.Options,
			})

		default:
			return nil, fmt.Errorf("document '%s' has unknown kind '%s'", d.ID, meta.Kind)
		}
	}

	if doc.Start == "" {
		doc.Start = domain.DefaultStartID
	}

	l.logger.Debug("tree loaded", "source", l.source, "documents", len(docs), "nodes", len(doc.Nodes), "outcomes", len(doc.Outcomes))
	return doc.ToDomain(), nil
}

// body fetches the Markdown body of a document. List only carries frontmatter.
func (l *Loader) body(ctx context.Context, id string) (string, error) {
	full, err := l.Repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return strings.TrimSpace(full.Content), nil
}

// claim records id as defined by path, failing on collisions.
func claim(seen map[string]string, id, path string) error {
	if existing, ok := seen[id]; ok {
		return fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, path)
	}
	seen[id] = path
	return nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
