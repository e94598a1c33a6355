package session

import "time"

// State represents the current session phase.
type State string

const (
	StateIdle          State = "idle"
	StateWorking       State = "working"
	StateWorkComplete  State = "work_complete"
	StateBreak         State = "break"
	StateBreakComplete State = "break_complete"

	// StatePaused is reserved. No transition enters it; pausing without
	// taking a break was never part of the effective machine.
	StatePaused State = "paused"
)

// EventType defines the type of session event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventSessionComplete EventType = "session_complete"
	EventProgress        EventType = "progress"
)

// Event represents a session update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	Progress  float64
	Sessions  int
	At        time.Time
}
