package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// CommandKind identifies a navigation command.
type CommandKind string

const (
	CommandSelect CommandKind = "select"
	CommandBack   CommandKind = "back"
	CommandReset  CommandKind = "restart"
	CommandQuit   CommandKind = "quit"
)

// Command is a parsed line of user input.
type Command struct {
	Kind CommandKind
	// Option is the option id to follow for CommandSelect.
	Option string
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseCommand interprets input against the view on screen.
//
// Accepted forms, in order of precedence:
//   - a 1-based option number ("2")
//   - a keyword: b/back, r/restart/reset, q/quit/exit
//   - "select <option-id>"
//   - a bare option id of the current node
func ParseCommand(input string, v domain.ResolvedView) (Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{}, ErrEmptyCommand
	}

	node, isNode := v.(domain.NodeView)

	if n, err := strconv.Atoi(input); err == nil {
		if !isNode || n < 1 || n > len(node.Node.Options) {
			return Command{}, fmt.Errorf("%w: no option %d on screen", ErrUnknownCommand, n)
		}
		return Command{Kind: CommandSelect, Option: node.Node.Options[n-1].ID}, nil
	}

	switch strings.ToLower(input) {
	case "b", "back":
		return Command{Kind: CommandBack}, nil
	case "r", "restart", "reset":
		return Command{Kind: CommandReset}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	if id, ok := strings.CutPrefix(input, string(CommandSelect)+" "); ok {
		return Command{Kind: CommandSelect, Option: strings.TrimSpace(id)}, nil
	}

	if isNode {
		if _, ok := node.Node.Option(input); ok {
			return Command{Kind: CommandSelect, Option: input}, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
}
