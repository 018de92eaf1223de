package service

import (
	"solaire/internal/core/domain/command"
	"sync"
	"time"
)

// RunLog records the last successful run of a command.
type RunLog struct {
	Command   *command.Command
	Timestamp time.Time
}

// CooldownTracker enforces a minimum interval between successful runs of each command. It is a
// global throttle: the invoking user plays no part.
type CooldownTracker struct {
	window time.Duration
	// strict additionally blocks a command while a previous dispatch of it is still in flight.
	strict   bool
	now      func() time.Time
	runs     map[string]RunLog
	inFlight map[string]bool
	mutex    *sync.Mutex
}

// NewCooldownTracker returns a tracker. A window of zero or less disables the cooldown.
func NewCooldownTracker(window time.Duration, strict bool) *CooldownTracker {
	return &CooldownTracker{
		window:   window,
		strict:   strict,
		now:      time.Now,
		runs:     make(map[string]RunLog),
		inFlight: make(map[string]bool),
		mutex:    &sync.Mutex{},
	}
}

func (t *CooldownTracker) Enabled() bool {
	return t.window > 0
}

// Acquire reports whether cmd may start now. When it may not, the remaining wait is returned. Every
// successful Acquire must be paired with a Release.
func (t *CooldownTracker) Acquire(cmd *command.Command) (time.Duration, bool) {
	if !t.Enabled() {
		return 0, true
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.strict && t.inFlight[cmd.Name] {
		return t.window, false
	}

	if last, ok := t.runs[cmd.Name]; ok {
		elapsed := t.now().Sub(last.Timestamp)
		if elapsed < t.window {
			return t.window - elapsed, false
		}
	}

	if t.strict {
		t.inFlight[cmd.Name] = true
	}

	return 0, true
}

// Release ends a dispatch started with Acquire. Only a successful run is recorded, so blocked or
// failing invocations never count towards the cooldown.
func (t *CooldownTracker) Release(cmd *command.Command, succeeded bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.inFlight, cmd.Name)

	if succeeded {
		t.runs[cmd.Name] = RunLog{Command: cmd, Timestamp: t.now()}
	}
}

// LatestRun returns the most recent successful run of the named command.
func (t *CooldownTracker) LatestRun(name string) (RunLog, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	run, ok := t.runs[name]
	return run, ok
}
