package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
// Every frame is written as one JSON object; every input line is either a
// JSON string ("2", "back"), a command object or plain text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	mu sync.Mutex
}

// CommandMessage is the structured input accepted by the JSONHandler.
type CommandMessage struct {
	Command string `json:"command"`
	Option  string `json:"option,omitempty"`
}

// SystemMessage is written for meta-messages.
type SystemMessage struct {
	Type    FrameType `json:"type"`
	Message string    `json:"message"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, frame Frame) error {
	return h.encode(frame)
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.encode(SystemMessage{Type: FrameSystem, Message: msg})
}

func (h *JSONHandler) encode(v any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(v)
}

// Input reads the next non-blank line and normalises it to a command string.
// A command object {"command": "select", "option": "pace"} becomes "select pace".
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		text = strings.TrimSpace(text)
		if text == "" {
			if err != nil {
				return "", err
			}
			continue
		}

		return decodeCommandLine(text), nil
	}
}

func decodeCommandLine(text string) string {
	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return strings.TrimSpace(val)
	}

	var msg CommandMessage
	if err := json.Unmarshal([]byte(text), &msg); err == nil && msg.Command != "" {
		if msg.Option != "" {
			return strings.TrimSpace(msg.Command + " " + msg.Option)
		}
		return msg.Command
	}

	// Fallback: plain text
	return text
}
