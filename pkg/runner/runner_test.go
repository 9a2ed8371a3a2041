package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pitchflow/pkg/domain"
)

func TestRunner_Run_TextFlow(t *testing.T) {
	eng := newEngine()
	out := &bytes.Buffer{}
	input := strings.Join([]string{
		"2",           // licensing outcome
		"b",           // back to ownership
		"3",           // dangling reference
		"r",           // restart
		"keep",        // pace, by option id
		"9",           // rejected, no redraw
		"",            // ignored
		"select fast", // venture outcome
		"q",
	}, "\n") + "\n"

	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader(input), out)))
	require.NoError(t, r.Run(context.Background(), eng))

	got := out.String()
	assert.Contains(t, got, "# Build or partner")
	assert.Contains(t, got, "## Licensing")
	assert.Contains(t, got, "## Data unavailable")
	assert.Contains(t, got, "(ghost-node)")
	assert.Contains(t, got, "## How fast?")
	assert.Contains(t, got, "## Venture sprint")
	assert.Contains(t, got, ">>> unknown command: no option 9 on screen")
	assert.Equal(t, 1, strings.Count(got, "## How fast?"), "rejected input must not redraw")

	assert.Equal(t, []domain.Step{
		domain.NodeStep("ownership"),
		domain.NodeStep("pace"),
		domain.OutcomeStep("venture"),
	}, eng.History())
}

func TestRunner_Run_EOFIsCleanExit(t *testing.T) {
	eng := newEngine()
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("1\n"), io.Discard)))

	require.NoError(t, r.Run(context.Background(), eng))
	assert.Equal(t, domain.NodeStep("pace"), eng.CurrentStep())
}

func TestRunner_Run_BackOnFirstStep(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("b\nq\n"), out)))

	require.NoError(t, r.Run(context.Background(), newEngine()))
	assert.Contains(t, out.String(), ">>> already at the first step")
	assert.Equal(t, 1, strings.Count(out.String(), "## Who owns the IP?"))
}

func TestRunner_Run_SelectNotOnScreen(t *testing.T) {
	eng := newEngine()
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("2\nselect keep\nq\n"), out)))

	require.NoError(t, r.Run(context.Background(), eng))
	assert.Contains(t, out.String(), `>>> no option "keep" on screen`)
	assert.Equal(t, domain.OutcomeStep("licensing"), eng.CurrentStep())
}

func TestRunner_Run_JSONFlow(t *testing.T) {
	eng := newEngine()
	out := &bytes.Buffer{}
	input := strings.Join([]string{
		`{"command": "select", "option": "keep"}`,
		`"1"`,
		`{"command": "restart"}`,
		`"quit"`,
	}, "\n")

	r := NewRunner(WithInputHandler(NewJSONHandler(strings.NewReader(input), out)))
	require.NoError(t, r.Run(context.Background(), eng))

	var views []domain.ViewKind
	var steps []string
	dec := json.NewDecoder(out)
	for {
		var f Frame
		if err := dec.Decode(&f); errors.Is(err, io.EOF) {
			break
		} else {
			require.NoError(t, err)
		}
		views = append(views, f.View)
		steps = append(steps, f.Step.ID)
		assert.NotEmpty(t, f.Markdown)
	}

	assert.Equal(t, []domain.ViewKind{domain.ViewNode, domain.ViewNode, domain.ViewOutcome, domain.ViewNode}, views)
	assert.Equal(t, []string{"ownership", "pace", "venture", "ownership"}, steps)
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("1\n"), io.Discard)))
	err := r.Run(ctx, newEngine())
	assert.ErrorIs(t, err, context.Canceled)
}

type failingHandler struct{ IOHandler }

func (failingHandler) Output(context.Context, Frame) error { return errors.New("broken pipe") }

func TestRunner_Run_OutputError(t *testing.T) {
	r := NewRunner(WithInputHandler(failingHandler{}))
	err := r.Run(context.Background(), newEngine())
	assert.ErrorContains(t, err, "output error: broken pipe")
}
