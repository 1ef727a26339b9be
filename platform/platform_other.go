//go:build !windows

package platform

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"pasteprime/hotkey"
	"pasteprime/inject"
)

type unsupportedHook struct {
	done chan struct{}
}

// NewHook returns a hook that cannot be started outside Windows
func NewHook() Hook {
	done := make(chan struct{})
	close(done)
	return &unsupportedHook{done: done}
}

func (h *unsupportedHook) Start(ctx context.Context, filter Filter) error {
	return fmt.Errorf("keyboard hook: %w", ErrUnsupported)
}

func (h *unsupportedHook) Done() <-chan struct{} {
	return h.done
}

// sharedClipboard reads the clipboard through the desktop's clipboard tools
type sharedClipboard struct{}

// NewClipboard creates a clipboard reader backed by atotto/clipboard
func NewClipboard() inject.Clipboard {
	return &sharedClipboard{}
}

func (c *sharedClipboard) Read() (inject.Payload, error) {
	if clipboard.Unsupported {
		return inject.Payload{}, fmt.Errorf("clipboard: %w", ErrUnsupported)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return inject.Payload{}, err
	}
	return inject.Payload{Text: text}, nil
}

type unsupportedKeyboard struct{}

// NewKeyboard returns a keyboard that refuses all input
func NewKeyboard() inject.Keyboard {
	return unsupportedKeyboard{}
}

func (unsupportedKeyboard) ReleaseKey(key hotkey.Key) error {
	return fmt.Errorf("release %s: %w", key, ErrUnsupported)
}

func (unsupportedKeyboard) TypeRune(r rune) error {
	return fmt.Errorf("type %q: %w", r, ErrUnsupported)
}

type noAutostart struct{}

// NewAutostart returns an autostart handler that is always off
func NewAutostart() Autostart {
	return noAutostart{}
}

func (noAutostart) Enabled() bool { return false }

func (noAutostart) Toggle() error {
	return fmt.Errorf("autostart: %w", ErrUnsupported)
}

// Lock is a no-op outside Windows
type Lock struct{}

// TryLock always succeeds outside Windows
func TryLock(name string) (*Lock, error) {
	return &Lock{}, nil
}

// Release does nothing
func (l *Lock) Release() error {
	return nil
}
