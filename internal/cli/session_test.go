package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pitchflow/internal/config"
	"github.com/aretw0/pitchflow/internal/presentation/tui"
	"github.com/aretw0/pitchflow/internal/testutils"
)

func writePitch(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{"pitch.yaml": pitchYAML})
	return filepath.Join(dir, "pitch.yaml")
}

func TestNormalize(t *testing.T) {
	t.Run("Defaults and non-terminal fallback", func(t *testing.T) {
		opts, err := normalize(RunOptions{Mode: config.ModeTUI, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)
		assert.Equal(t, config.ModeText, opts.Mode)
		assert.Equal(t, tui.StyleNoTTY, opts.Style)
		assert.NotNil(t, opts.Stdin)
	})

	t.Run("Explicit style is kept", func(t *testing.T) {
		opts, err := normalize(RunOptions{Style: tui.StyleDark, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)
		assert.Equal(t, config.ModeText, opts.Mode)
		assert.Equal(t, tui.StyleDark, opts.Style)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := normalize(RunOptions{Mode: "web", Stdout: &bytes.Buffer{}})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestExecute_TextMode(t *testing.T) {
	var out bytes.Buffer
	err := Execute(RunOptions{
		TreePath: writePitch(t),
		Stdin:    strings.NewReader("1\nq\n"),
		Stdout:   &out,
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Who owns the IP?")
	assert.Contains(t, got, "Venture sprint")
	assert.Contains(t, got, ">>> Finished at outcome 'venture'.")
}

func TestExecute_TextModeMissingTarget(t *testing.T) {
	var out bytes.Buffer
	err := Execute(RunOptions{
		TreePath: writePitch(t),
		Stdin:    strings.NewReader("broken\nr\n"),
		Stdout:   &out,
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Data unavailable")
	assert.Contains(t, got, "ghost")
	assert.Contains(t, got, ">>> Finished at node 'ownership'.")
}

func TestExecute_BannerOnlyOutsideJSON(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, Execute(RunOptions{
		TreePath: writePitch(t),
		Banner:   true,
		Stdin:    strings.NewReader(""),
		Stdout:   &text,
	}))
	assert.Contains(t, text.String(), "_ __ (_) |_ ___")

	var jsonOut bytes.Buffer
	require.NoError(t, Execute(RunOptions{
		TreePath: writePitch(t),
		Mode:     config.ModeJSON,
		Banner:   true,
		Stdin:    strings.NewReader(""),
		Stdout:   &jsonOut,
	}))
	assert.NotContains(t, jsonOut.String(), "_ __ (_) |_ ___")
}

func TestExecute_JSONMode(t *testing.T) {
	var out bytes.Buffer
	err := Execute(RunOptions{
		TreePath: writePitch(t),
		Mode:     config.ModeJSON,
		Stdin:    strings.NewReader("{\"command\":\"select\",\"option\":\"keep\"}\n"),
		Stdout:   &out,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "view", first["type"])
	assert.Equal(t, "node", first["view"])
	assert.Equal(t, "outcome", second["view"])
	assert.Equal(t, true, second["canGoBack"])
}

func TestExecute_TreeNotFound(t *testing.T) {
	err := Execute(RunOptions{
		TreePath: filepath.Join(t.TempDir(), "missing.yaml"),
		Stdin:    strings.NewReader(""),
		Stdout:   &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error initializing pitchflow")
}
