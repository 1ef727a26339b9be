//go:build windows

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"pasteprime/hotkey"
)

var (
	setWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	callNextHookEx      = user32.NewProc("CallNextHookEx")
	unhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	getMessage          = user32.NewProc("GetMessageW")
	peekMessage         = user32.NewProc("PeekMessageW")
	postThreadMessage   = user32.NewProc("PostThreadMessageW")
)

const (
	whKeyboardLL = 13
	hcAction     = 0
	wmQuit       = 0x0012
	pmNoremove   = 0x0000
)

type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// WindowsHook implements the Hook interface with a WH_KEYBOARD_LL hook.
// The hook proc and the filter run on one locked OS thread.
type WindowsHook struct {
	mu       sync.Mutex
	filter   Filter
	threadID uint32
	done     chan struct{}
}

// NewHook creates a new Windows keyboard hook
func NewHook() Hook {
	return &WindowsHook{done: make(chan struct{})}
}

// Start installs the hook and returns once it is active
func (h *WindowsHook) Start(ctx context.Context, filter Filter) error {
	h.mu.Lock()
	h.filter = filter
	h.mu.Unlock()

	errCh := make(chan error, 1)
	go h.run(errCh)

	if err := <-errCh; err != nil {
		return err
	}

	// Stop the message loop on cancellation
	go func() {
		<-ctx.Done()
		h.mu.Lock()
		tid := h.threadID
		h.mu.Unlock()
		postThreadMessage.Call(uintptr(tid), wmQuit, 0, 0)
	}()

	return nil
}

// Done is closed after the hook has been removed
func (h *WindowsHook) Done() <-chan struct{} {
	return h.done
}

func (h *WindowsHook) run(errCh chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Make sure the thread has a message queue before anyone posts to it
	var m msg
	peekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmNoremove)

	hook, _, err := setWindowsHookEx.Call(
		whKeyboardLL,
		windows.NewCallback(h.proc),
		0,
		0,
	)
	if hook == 0 {
		close(h.done)
		errCh <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
		return
	}

	h.mu.Lock()
	h.threadID = windows.GetCurrentThreadId()
	h.mu.Unlock()

	errCh <- nil
	slog.Debug("Keyboard hook installed")

	// Low-level hooks are called from this thread's message loop
	for {
		r, _, _ := getMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if r == 0 || int32(r) == -1 {
			break
		}
	}

	unhookWindowsHookEx.Call(hook)
	slog.Debug("Keyboard hook removed")
	close(h.done)
}

func (h *WindowsHook) proc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode == hcAction {
		kbInfo := (*kbdllhookstruct)(unsafe.Pointer(lParam))
		if evt, ok := translateEvent(wParam, kbInfo.vkCode); ok {
			if h.filter.Evaluate(evt) == hotkey.Suppress {
				return 1
			}
		}
	}
	r, _, _ := callNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return r
}
