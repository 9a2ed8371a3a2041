package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pitchflow/internal/testutils"
	"github.com/aretw0/pitchflow/pkg/adapters/loam"
)

const pitchYAML = `theme: Build or partner
goal: Choose the arc.
start: ownership
nodes:
  - id: ownership
    eyebrow: Step one
    prompt: Who owns the IP?
    options:
      - id: keep
        label: We keep it
        outcome: venture
      - id: broken
        label: Broken link
        next: ghost
outcomes:
  - id: venture
    optionNumber: 1
    title: Venture sprint
    narrative: Raise a large round.
`

func TestDetermineTreePath(t *testing.T) {
	t.Run("File is used as is", func(t *testing.T) {
		dir := t.TempDir()
		testutils.WriteFiles(t, dir, map[string]string{"pitch.yaml": pitchYAML})
		path := filepath.Join(dir, "pitch.yaml")
		assert.Equal(t, path, determineTreePath(path))
	})

	t.Run("Prefer tree.yaml in directory", func(t *testing.T) {
		dir := t.TempDir()
		testutils.WriteFiles(t, dir, map[string]string{"tree.yaml": pitchYAML, "tree.json": "{}"})
		assert.Equal(t, filepath.Join(dir, "tree.yaml"), determineTreePath(dir))
	})

	t.Run("Fallback to tree.json", func(t *testing.T) {
		dir := t.TempDir()
		testutils.WriteFiles(t, dir, map[string]string{"tree.json": "{}", "other.md": "x"})
		assert.Equal(t, filepath.Join(dir, "tree.json"), determineTreePath(dir))
	})

	t.Run("Directory without candidates", func(t *testing.T) {
		dir := t.TempDir()
		testutils.WriteFiles(t, dir, map[string]string{"other.md": "x"})
		assert.Equal(t, dir, determineTreePath(dir))
	})

	t.Run("Missing path passes through", func(t *testing.T) {
		assert.Equal(t, "does/not/exist.yaml", determineTreePath("does/not/exist.yaml"))
	})

	t.Run("Empty path means working directory", func(t *testing.T) {
		dir := t.TempDir()
		testutils.WriteFiles(t, dir, map[string]string{"tree.yml": pitchYAML})
		t.Chdir(dir)
		assert.Equal(t, "tree.yml", determineTreePath(""))
	})
}

func TestCreateEngine(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{"tree.yaml": pitchYAML})

	engine, err := createEngine(context.Background(), dir, true, createLogger(false))
	require.NoError(t, err)
	assert.Equal(t, "tree", engine.Name)
	assert.Equal(t, "ownership", engine.CurrentStep().ID)

	_, err = createEngine(context.Background(), filepath.Join(dir, "nope.yaml"), false, createLogger(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error initializing pitchflow")
}

func TestCreateEngine_MarkdownDirectory(t *testing.T) {
	dir, _ := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, dir, map[string]string{
		"_tree.md": "---\nkind: tree\nstart: ownership\n---\n",
		"ownership.md": `---
options:
  - id: keep
    label: We keep it
    outcome: venture
---
Who owns the IP?`,
		"venture.md": "---\nkind: outcome\ntitle: Venture sprint\n---\nRaise a large round.",
	})

	engine, err := createEngine(context.Background(), dir, false, createLogger(false))
	require.NoError(t, err)
	assert.IsType(t, &loam.Loader{}, engine.Loader())
	assert.True(t, engine.SelectOptionID("keep"))
	assert.Equal(t, "venture", engine.CurrentStep().ID)
}
