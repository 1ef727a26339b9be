package platform

import (
	"context"
	"errors"

	"pasteprime/hotkey"
)

// ErrUnsupported is returned by collaborators that only exist on Windows
var ErrUnsupported = errors.New("not supported on this platform")

// ErrAlreadyRunning is returned by TryLock when another instance holds the lock
var ErrAlreadyRunning = errors.New("another instance is already running")

// Filter decides per keyboard event whether the hook swallows it.
// It is called on the hook thread, one event at a time.
type Filter interface {
	Evaluate(evt hotkey.Event) hotkey.Decision
}

// Hook installs a global low-level keyboard hook
type Hook interface {
	// Start installs the hook and returns once it is active. The hook is
	// removed when ctx is cancelled; Done is closed after that.
	Start(ctx context.Context, filter Filter) error
	Done() <-chan struct{}
}

// Autostart toggles starting the program at logon
type Autostart interface {
	Enabled() bool
	Toggle() error
}
