package hotkey

import (
	"fmt"
	"log/slog"
)

// Action is run when the chord and the trigger key are pressed
type Action func() error

// Interceptor decides per event whether the hook should swallow it and fires
// the action on Ctrl+Shift+V.
//
// Evaluate must be called from a single goroutine (the hook thread). The action
// runs synchronously on that goroutine, so events generated by the action
// itself re-enter Evaluate while inProgress is set and are passed through.
type Interceptor struct {
	tracker    Tracker
	action     Action
	inProgress bool
}

// NewInterceptor creates an interceptor that runs action on every trigger
func NewInterceptor(action Action) *Interceptor {
	return &Interceptor{action: action}
}

// Evaluate updates modifier state and returns the verdict for evt
func (i *Interceptor) Evaluate(evt Event) Decision {
	// Always track modifiers first, otherwise releases get lost
	i.tracker.OnKeyEvent(evt)

	if !i.tracker.ChordHeld() || i.inProgress {
		return PassThrough
	}

	if evt.Kind != Press {
		return PassThrough
	}

	if evt.Code != TriggerCode {
		return PassThrough
	}

	i.run()
	return Suppress
}

// InProgress reports whether the action is currently running
func (i *Interceptor) InProgress() bool {
	return i.inProgress
}

// ChordHeld reports the tracked chord state
func (i *Interceptor) ChordHeld() bool {
	return i.tracker.ChordHeld()
}

func (i *Interceptor) run() {
	i.inProgress = true
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Hotkey action panicked", "panic", fmt.Sprint(r))
		}
		i.inProgress = false
	}()

	if i.action == nil {
		return
	}

	if err := i.action(); err != nil {
		slog.Error("Hotkey action failed", "error", err)
	}
}
