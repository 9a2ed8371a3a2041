package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventStepEnter EventType = "step_enter"
	EventStepLeave EventType = "step_leave"
	EventMissing   EventType = "missing_target"
	EventReset     EventType = "reset"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent represents entering or leaving a step of the history.
type StepEvent struct {
	EventBase
	Step  Step `json:"step"`
	Depth int  `json:"depth"`
}

// MissingEvent reports a dangling reference found while selecting an option.
type MissingEvent struct {
	EventBase
	From     Step          `json:"from"`
	OptionID string        `json:"option_id"`
	Missing  MissingTarget `json:"missing"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously inside the engine command that triggered them.
type LifecycleHooks struct {
	OnStepEnter func(*StepEvent)
	OnStepLeave func(*StepEvent)
	OnMissing   func(*MissingEvent)
	OnReset     func(*StepEvent)
}
