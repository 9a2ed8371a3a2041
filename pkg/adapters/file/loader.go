package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/pitchflow/internal/dto"
	"github.com/aretw0/pitchflow/pkg/domain"
)

// Format identifies the encoding of a tree document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Loader reads a decision tree from a single YAML or JSON file.
type Loader struct {
	path   string
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

// New creates a file loader for the given path.
func New(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the path the loader reads from.
func (l *Loader) Source() string {
	return l.path
}

// Load reads and decodes the tree file.
func (l *Loader) Load(ctx context.Context) (*domain.DecisionTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := DetectFormat(l.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}

	tree, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", l.path, err)
	}

	l.logger.Debug("tree loaded", "path", l.path, "format", format, "nodes", len(tree.Nodes), "outcomes", len(tree.Outcomes))
	return tree, nil
}

// DetectFormat infers the document format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses raw document bytes into a tree.
// Documents are first read into a generic map and then decoded with
// mapstructure, so loosely typed values (e.g. numeric ids) are accepted.
func Decode(data []byte, format Format) (*domain.DecisionTree, error) {
	var raw map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, domain.ErrEmptyTree
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	if len(raw) == 0 {
		return nil, domain.ErrEmptyTree
	}

	var doc dto.TreeDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid tree document: %w", err)
	}

	return doc.ToDomain(), nil
}
