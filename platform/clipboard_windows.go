//go:build windows

package platform

import (
	"bytes"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"pasteprime/inject"
)

var (
	user32                     = windows.NewLazySystemDLL("user32.dll")
	kernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	openClipboard              = user32.NewProc("OpenClipboard")
	closeClipboard             = user32.NewProc("CloseClipboard")
	getClipboardData           = user32.NewProc("GetClipboardData")
	isClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	globalLock                 = kernel32.NewProc("GlobalLock")
	globalUnlock               = kernel32.NewProc("GlobalUnlock")
	globalSize                 = kernel32.NewProc("GlobalSize")
)

const (
	cfText        = 1
	cfUnicodeText = 13
)

// WindowsClipboard implements inject.Clipboard for Windows
type WindowsClipboard struct{}

// NewClipboard creates a new Windows clipboard reader
func NewClipboard() inject.Clipboard {
	return &WindowsClipboard{}
}

// Read returns the clipboard text. When only CF_TEXT is present its bytes
// are returned undecoded in Payload.Raw.
func (c *WindowsClipboard) Read() (inject.Payload, error) {
	if err := c.open(); err != nil {
		return inject.Payload{}, err
	}
	defer c.close()

	if c.available(cfUnicodeText) {
		text, err := c.unicodeText()
		return inject.Payload{Text: text}, err
	}

	if c.available(cfText) {
		raw, err := c.rawText()
		return inject.Payload{Raw: raw}, err
	}

	return inject.Payload{}, nil // No text data
}

func (c *WindowsClipboard) unicodeText() (string, error) {
	l, h, err := c.lock(cfUnicodeText)
	if err != nil || l == 0 {
		return "", err
	}
	defer globalUnlock.Call(h)

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(l))), nil
}

func (c *WindowsClipboard) rawText() ([]byte, error) {
	l, h, err := c.lock(cfText)
	if err != nil || l == 0 {
		return nil, err
	}
	defer globalUnlock.Call(h)

	size, _, _ := globalSize.Call(h)
	data := unsafe.Slice((*byte)(unsafe.Pointer(l)), size)
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	// Copy before the handle is unlocked
	return bytes.Clone(data), nil
}

// lock returns the locked pointer and handle of the given format. A zero
// pointer with nil error means the format vanished.
func (c *WindowsClipboard) lock(format uintptr) (uintptr, uintptr, error) {
	h, _, err := getClipboardData.Call(format)
	if h == 0 {
		if err != nil && err != syscall.Errno(0) {
			return 0, 0, fmt.Errorf("GetClipboardData failed: %w", err)
		}
		return 0, 0, nil
	}

	l, _, err := globalLock.Call(h)
	if l == 0 {
		return 0, 0, fmt.Errorf("GlobalLock failed: %w", err)
	}
	return l, h, nil
}

func (c *WindowsClipboard) available(format uintptr) bool {
	r, _, _ := isClipboardFormatAvailable.Call(format)
	return r != 0
}

func (c *WindowsClipboard) open() error {
	// Try to open clipboard with retries
	for i := 0; i < 10; i++ {
		r, _, _ := openClipboard.Call(0)
		if r != 0 {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("failed to open clipboard after retries")
}

func (c *WindowsClipboard) close() {
	closeClipboard.Call()
}
