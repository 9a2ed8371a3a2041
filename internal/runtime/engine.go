package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// Engine is the decision-tree traversal state machine.
// It owns the navigation history and the missing-target state for a single viewer.
// The engine is not safe for concurrent use; hosts serialize user events.
type Engine struct {
	tree     *domain.DecisionTree
	nodes    map[string]domain.DecisionNode
	outcomes map[string]domain.Outcome

	history []domain.Step
	missing *domain.MissingTarget

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine builds the id indexes once and positions the history at tree.Start.
// A start id that does not resolve is not an error: it surfaces through Resolve.
func NewEngine(tree *domain.DecisionTree, opts ...EngineOption) *Engine {
	if tree == nil {
		tree = &domain.DecisionTree{}
	}

	e := &Engine{
		tree:     tree,
		nodes:    make(map[string]domain.DecisionNode, len(tree.Nodes)),
		outcomes: make(map[string]domain.Outcome, len(tree.Outcomes)),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	for _, n := range tree.Nodes {
		e.nodes[n.ID] = n
	}
	for _, o := range tree.Outcomes {
		e.outcomes[o.ID] = o
	}

	e.history = []domain.Step{domain.NodeStep(tree.Start)}
	e.emitEnter(e.history[0])

	return e
}

// Tree returns the document the engine traverses. Callers must not mutate it.
func (e *Engine) Tree() *domain.DecisionTree {
	return e.tree
}

// CurrentStep returns the last element of the history.
func (e *Engine) CurrentStep() domain.Step {
	return e.history[len(e.history)-1]
}

// CanGoBack reports whether there is a previous step to return to.
func (e *Engine) CanGoBack() bool {
	return len(e.history) > 1
}

// Missing returns the active missing target, if any.
func (e *Engine) Missing() (domain.MissingTarget, bool) {
	if e.missing == nil {
		return domain.MissingTarget{}, false
	}
	return *e.missing, true
}

// History returns a copy of the navigation history, oldest first.
func (e *Engine) History() []domain.Step {
	out := make([]domain.Step, len(e.history))
	copy(out, e.history)
	return out
}

// SelectOption is the single transition function of the state machine.
// It never fails: unresolved references are recorded as the missing target and
// the history is left untouched.
func (e *Engine) SelectOption(option domain.DecisionOption) {
	e.missing = nil

	switch target := option.Target.(type) {
	case domain.GoToNode:
		if _, ok := e.nodes[target.ID]; !ok {
			e.markMissing(option.ID, domain.KindNode, target.ID)
			return
		}
		e.push(domain.NodeStep(target.ID))
	case domain.GoToOutcome:
		if _, ok := e.outcomes[target.ID]; !ok {
			e.markMissing(option.ID, domain.KindOutcome, target.ID)
			return
		}
		e.push(domain.OutcomeStep(target.ID))
	default:
		e.markMissing(option.ID, domain.KindNode, domain.UnknownTargetID)
	}
}

// SelectOptionID selects an option of the node currently on screen by its id.
// It returns false, leaving the state untouched, when the current view is not a
// node or the node has no such option.
func (e *Engine) SelectOptionID(id string) bool {
	view, ok := e.Resolve().(domain.NodeView)
	if !ok {
		return false
	}
	option, ok := view.Node.Option(id)
	if !ok {
		e.logger.Debug("option not on current node", "node_id", view.Node.ID, "option_id", id)
		return false
	}
	e.SelectOption(option)
	return true
}

// GoBack pops the current step. It is a no-op on the initial step.
func (e *Engine) GoBack() {
	if !e.CanGoBack() {
		return
	}
	e.missing = nil

	leaving := e.CurrentStep()
	e.history = e.history[:len(e.history)-1]

	e.emitLeave(leaving)
	e.logger.Debug("went back", "from", leaving.ID, "to", e.CurrentStep().ID, "depth", len(e.history))
}

// Reset clears the missing target and restarts from the initial node.
func (e *Engine) Reset() {
	e.missing = nil
	e.history = []domain.Step{domain.NodeStep(e.tree.Start)}

	if e.hooks.OnReset != nil {
		e.hooks.OnReset(&domain.StepEvent{
			EventBase: e.base(domain.EventReset),
			Step:      e.history[0],
			Depth:     1,
		})
	}
	e.logger.Debug("flow reset", "start", e.tree.Start)
}

// Resolve produces the render-relevant view for the current state.
func (e *Engine) Resolve() domain.ResolvedView {
	if e.missing != nil {
		return domain.Unavailable(e.missing.Type, e.missing.ID)
	}

	current := e.CurrentStep()
	switch current.Kind {
	case domain.KindOutcome:
		if outcome, ok := e.outcomes[current.ID]; ok {
			return domain.OutcomeView{Outcome: outcome}
		}
		return domain.Unavailable(domain.KindOutcome, current.ID)
	default:
		if node, ok := e.nodes[current.ID]; ok {
			return domain.NodeView{Node: node}
		}
		return domain.Unavailable(domain.KindNode, current.ID)
	}
}

func (e *Engine) push(step domain.Step) {
	from := e.CurrentStep()
	e.history = append(e.history, step)

	e.emitEnter(step)
	e.logger.Debug("step entered", "from", from.ID, "kind", step.Kind, "id", step.ID, "depth", len(e.history))
}

func (e *Engine) markMissing(optionID string, kind domain.StepKind, id string) {
	e.missing = &domain.MissingTarget{Type: kind, ID: id}

	e.logger.Warn("unresolved reference", "option_id", optionID, "type", kind, "id", id)
	if e.hooks.OnMissing != nil {
		e.hooks.OnMissing(&domain.MissingEvent{
			EventBase: e.base(domain.EventMissing),
			From:      e.CurrentStep(),
			OptionID:  optionID,
			Missing:   *e.missing,
		})
	}
}

func (e *Engine) emitEnter(step domain.Step) {
	if e.hooks.OnStepEnter == nil {
		return
	}
	e.hooks.OnStepEnter(&domain.StepEvent{
		EventBase: e.base(domain.EventStepEnter),
		Step:      step,
		Depth:     len(e.history),
	})
}

func (e *Engine) emitLeave(step domain.Step) {
	if e.hooks.OnStepLeave == nil {
		return
	}
	e.hooks.OnStepLeave(&domain.StepEvent{
		EventBase: e.base(domain.EventStepLeave),
		Step:      step,
		Depth:     len(e.history) + 1,
	})
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t}
}
