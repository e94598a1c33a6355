package session

import (
	"fmt"
	"sync"
	"time"

	"starfocus/internal/core/model"
)

// Machine is the state machine driving work and break sessions. All
// timestamps are passed in explicitly so the machine itself never
// consults the wall clock; the app layer ticks it once per frame.
type Machine struct {
	mu                sync.Mutex
	config            model.Config
	state             State
	phaseStart        time.Time
	accumulatedWork   time.Duration
	completedSessions int
	events            []chan Event
}

// New creates a Machine in the idle state. completedSessions seeds the
// counter from persisted preferences.
func New(config model.Config, completedSessions int) *Machine {
	if completedSessions < 0 {
		completedSessions = 0
	}
	return &Machine{
		config:            config,
		state:             StateIdle,
		completedSessions: completedSessions,
	}
}

// Subscribe registers a new observer channel.
func (machine *Machine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	machine.mu.Lock()
	machine.events = append(machine.events, ch)
	machine.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (machine *Machine) Close() {
	machine.mu.Lock()
	events := machine.events
	machine.events = nil
	machine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// StartWork begins a fresh work session. Valid only from idle.
func (machine *Machine) StartWork(now time.Time) {
	machine.mu.Lock()
	if machine.state != StateIdle {
		machine.mu.Unlock()
		return
	}
	machine.accumulatedWork = 0
	machine.phaseStart = now
	machine.state = StateWorking
	machine.emitStateChangeLocked(now)
	machine.mu.Unlock()
}

// TakeBreak interrupts work, banking the elapsed work time so the
// session resumes from the same point. Valid only while working.
func (machine *Machine) TakeBreak(now time.Time) {
	machine.mu.Lock()
	if machine.state != StateWorking {
		machine.mu.Unlock()
		return
	}
	machine.accumulatedWork += now.Sub(machine.phaseStart)
	if machine.accumulatedWork < 0 {
		machine.accumulatedWork = 0
	}
	machine.phaseStart = now
	machine.state = StateBreak
	machine.emitStateChangeLocked(now)
	machine.mu.Unlock()
}

// ResumeWork returns from a break early, keeping the banked work time.
func (machine *Machine) ResumeWork(now time.Time) {
	machine.mu.Lock()
	if machine.state != StateBreak {
		machine.mu.Unlock()
		return
	}
	machine.phaseStart = now
	machine.state = StateWorking
	machine.emitStateChangeLocked(now)
	machine.mu.Unlock()
}

// EndSessionEarly abandons the current work session without crediting
// it. Valid only while working.
func (machine *Machine) EndSessionEarly(now time.Time) {
	machine.mu.Lock()
	if machine.state != StateWorking {
		machine.mu.Unlock()
		return
	}
	machine.accumulatedWork = 0
	machine.phaseStart = now
	machine.state = StateIdle
	machine.emitStateChangeLocked(now)
	machine.mu.Unlock()
}

// StartBreak accepts the suggested break after a completed session.
func (machine *Machine) StartBreak(now time.Time) {
	machine.mu.Lock()
	if machine.state != StateWorkComplete {
		machine.mu.Unlock()
		return
	}
	machine.phaseStart = now
	machine.state = StateBreak
	machine.emitStateChangeLocked(now)
	machine.mu.Unlock()
}

// AcknowledgeBreakComplete dismisses the break-complete notice.
func (machine *Machine) AcknowledgeBreakComplete(now time.Time) {
	machine.mu.Lock()
	if machine.state != StateBreakComplete {
		machine.mu.Unlock()
		return
	}
	machine.accumulatedWork = 0
	machine.phaseStart = now
	machine.state = StateIdle
	machine.emitStateChangeLocked(now)
	machine.mu.Unlock()
}

// Tick polls elapsed time against the configured thresholds and
// performs the duration-driven transitions. The app layer calls this
// once per frame before rendering.
func (machine *Machine) Tick(now time.Time) {
	machine.mu.Lock()
	switch machine.state {
	case StateWorking:
		if machine.totalWorkElapsedLocked(now) >= machine.config.WorkDuration {
			// The only path that credits a completed session.
			machine.completedSessions++
			machine.accumulatedWork = 0
			machine.phaseStart = now
			machine.state = StateWorkComplete
			machine.emitLocked(Event{
				Type:     EventSessionComplete,
				State:    StateWorkComplete,
				Sessions: machine.completedSessions,
				At:       now,
			})
			machine.emitStateChangeLocked(now)
		}
	case StateBreak:
		if now.Sub(machine.phaseStart) >= machine.config.BreakDuration {
			machine.phaseStart = now
			machine.state = StateBreakComplete
			machine.emitStateChangeLocked(now)
		}
	}
	machine.mu.Unlock()
}

// State returns the current session state.
func (machine *Machine) State() State {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.state
}

// CompletedSessions returns the credited session count.
func (machine *Machine) CompletedSessions() int {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.completedSessions
}

// PhaseElapsed returns the time spent in the current phase.
func (machine *Machine) PhaseElapsed(now time.Time) time.Duration {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.phaseElapsedLocked(now)
}

// TotalWorkElapsed returns banked plus live work time. Outside the
// working state only the banked portion counts.
func (machine *Machine) TotalWorkElapsed(now time.Time) time.Duration {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.totalWorkElapsedLocked(now)
}

// Remaining returns the work time left in the session, clamped at
// zero. During a break the value is frozen at its break-entry level.
func (machine *Machine) Remaining(now time.Time) time.Duration {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.remainingLocked(now)
}

// Progress returns session completion as a percentage in [0, 100].
func (machine *Machine) Progress(now time.Time) float64 {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.config.WorkDuration <= 0 {
		return 100
	}
	progress := float64(machine.totalWorkElapsedLocked(now)) / float64(machine.config.WorkDuration) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// FormatRemaining renders the remaining work time as MM:SS.
func (machine *Machine) FormatRemaining(now time.Time) string {
	return FormatDuration(machine.Remaining(now))
}

// FormatDuration renders a non-negative duration as MM:SS.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Snapshot is a consistent view of the machine for one frame.
type Snapshot struct {
	State             State
	PhaseElapsed      time.Duration
	AccumulatedWork   time.Duration
	Remaining         time.Duration
	Progress          float64
	CompletedSessions int
}

// Snapshot captures the machine state under a single lock so the
// renderer never observes a half-applied transition.
func (machine *Machine) Snapshot(now time.Time) Snapshot {
	machine.mu.Lock()
	defer machine.mu.Unlock()

	progress := 0.0
	if machine.config.WorkDuration > 0 {
		progress = float64(machine.totalWorkElapsedLocked(now)) / float64(machine.config.WorkDuration) * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}
	return Snapshot{
		State:             machine.state,
		PhaseElapsed:      machine.phaseElapsedLocked(now),
		AccumulatedWork:   machine.accumulatedWork,
		Remaining:         machine.remainingLocked(now),
		Progress:          progress,
		CompletedSessions: machine.completedSessions,
	}
}

func (machine *Machine) phaseElapsedLocked(now time.Time) time.Duration {
	if machine.phaseStart.IsZero() {
		return 0
	}
	elapsed := now.Sub(machine.phaseStart)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (machine *Machine) totalWorkElapsedLocked(now time.Time) time.Duration {
	total := machine.accumulatedWork
	if machine.state == StateWorking {
		total += machine.phaseElapsedLocked(now)
	}
	if total < 0 {
		return 0
	}
	if total > machine.config.WorkDuration {
		return machine.config.WorkDuration
	}
	return total
}

func (machine *Machine) remainingLocked(now time.Time) time.Duration {
	remaining := machine.config.WorkDuration - machine.totalWorkElapsedLocked(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (machine *Machine) emitStateChangeLocked(now time.Time) {
	machine.emitLocked(Event{
		Type:      EventStateChange,
		State:     machine.state,
		Remaining: machine.remainingLocked(now),
		Sessions:  machine.completedSessions,
		At:        now,
	})
}

func (machine *Machine) emitLocked(event Event) {
	for _, ch := range machine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
