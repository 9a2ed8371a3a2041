package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf,
		WithTextHandlerRenderer(func(s string) (string, error) {
			return "Rendered: " + s, nil
		}),
	)

	require.NoError(t, handler.Output(context.Background(), Frame{Markdown: "## Hello\n\n"}))
	assert.Equal(t, "Rendered: ## Hello\n", outBuf.String())
}

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("my input\r\nlast"), outBuf)

	val, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my input", val)

	val, err = handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "last", val, "a final line without newline is still delivered")

	_, err = handler.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > > ", outBuf.String())
}

func TestTextHandler_InputRejectsOversized(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("toolong\nok\n"), outBuf, WithTextHandlerMaxInputSize(3))

	val, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Contains(t, outBuf.String(), "Please try again.")
}

func TestTextHandler_InputCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	handler := NewTextHandler(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextHandler_SystemOutput(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	require.NoError(t, handler.SystemOutput(context.Background(), "unknown command"))
	assert.Equal(t, ">>> unknown command\n", outBuf.String())
}

func TestTextHandler_CloseReleasesPump(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	handler := NewTextHandler(r, io.Discard)

	go func() { _, _ = io.WriteString(w, "first\n") }()
	val, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", val)

	require.NoError(t, handler.Close())
	require.NoError(t, handler.Close(), "Close is idempotent")

	// A line nobody asks for must not keep the reader goroutine blocked.
	go func() { _, _ = io.WriteString(w, "unread\n") }()

	select {
	case <-handler.pumpDone:
	case <-time.After(2 * time.Second):
		t.Fatal("input goroutine still running after Close")
	}

	_, err = handler.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
