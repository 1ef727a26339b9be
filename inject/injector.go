package inject

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"pasteprime/hotkey"
)

// ErrDecode is returned when raw clipboard bytes are not valid UTF-8
var ErrDecode = errors.New("clipboard content is not valid UTF-8 text")

// ErrTooLong is returned when the clipboard holds more runes than allowed
var ErrTooLong = errors.New("clipboard content exceeds max_chars")

// Payload is the clipboard content read for one injection. Raw is only set
// when the clipboard held bytes instead of text.
type Payload struct {
	Text string
	Raw  []byte
}

// Empty reports whether there is nothing to type
func (p Payload) Empty() bool {
	return p.Text == "" && len(p.Raw) == 0
}

// Clipboard provides read access to the clipboard
type Clipboard interface {
	Read() (Payload, error)
}

// Keyboard synthesizes keyboard input at the OS level
type Keyboard interface {
	ReleaseKey(key hotkey.Key) error
	TypeRune(r rune) error
}

// Recorder receives the outcome of every injection that got past the
// clipboard read
type Recorder interface {
	RecordInjection(res Result) error
}

// InjectionError reports a keystroke the OS refused. Typed runes are not
// rolled back.
type InjectionError struct {
	Typed int
	Err   error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("keystroke injection failed after %d characters: %v", e.Typed, e.Err)
}

func (e *InjectionError) Unwrap() error {
	return e.Err
}

// Result describes one injection attempt
type Result struct {
	Started  time.Time
	Duration time.Duration
	Length   int // runes in the clipboard text
	Typed    int
	Err      error
}

// Options tune the typing behaviour
type Options struct {
	KeyDelay time.Duration
	MaxChars int // 0 means unlimited
}

// Injector types the clipboard text as keystrokes
type Injector struct {
	clipboard Clipboard
	keyboard  Keyboard
	recorder  Recorder
	opts      Options
	sleep     func(time.Duration)
}

// NewInjector creates an injector. recorder may be nil.
func NewInjector(clipboard Clipboard, keyboard Keyboard, recorder Recorder, opts Options) *Injector {
	return &Injector{
		clipboard: clipboard,
		keyboard:  keyboard,
		recorder:  recorder,
		opts:      opts,
		sleep:     time.Sleep,
	}
}

// InjectFromClipboard reads the clipboard, releases the chord modifiers and
// types the text. It returns false when the clipboard had no text.
func (inj *Injector) InjectFromClipboard() (bool, error) {
	payload, err := inj.clipboard.Read()
	if err != nil {
		return false, fmt.Errorf("failed to read clipboard: %w", err)
	}
	if payload.Empty() {
		slog.Debug("Clipboard empty, nothing to type")
		return false, nil
	}

	text, err := decode(payload)
	if err != nil {
		return false, err
	}

	res := Result{
		Started: time.Now(),
		Length:  utf8.RuneCountInString(text),
	}
	res.Typed, res.Err = inj.typeText(text)
	res.Duration = time.Since(res.Started)
	inj.record(res)

	if res.Err != nil {
		return false, res.Err
	}

	slog.Info("Typed clipboard contents", "chars", res.Typed, "duration", res.Duration)
	return true, nil
}

// Run adapts InjectFromClipboard to hotkey.Action
func (inj *Injector) Run() error {
	_, err := inj.InjectFromClipboard()
	return err
}

func (inj *Injector) typeText(text string) (int, error) {
	if inj.opts.MaxChars > 0 && utf8.RuneCountInString(text) > inj.opts.MaxChars {
		return 0, fmt.Errorf("%w (%d)", ErrTooLong, inj.opts.MaxChars)
	}

	// Held modifiers would turn the typed text into shortcuts
	for _, key := range []hotkey.Key{hotkey.KeyLeftControl, hotkey.KeyLeftShift} {
		if err := inj.keyboard.ReleaseKey(key); err != nil {
			return 0, fmt.Errorf("failed to release %s: %w", key, err)
		}
	}

	typed := 0
	for _, r := range text {
		if err := inj.keyboard.TypeRune(r); err != nil {
			return typed, &InjectionError{Typed: typed, Err: err}
		}
		typed++
		if inj.opts.KeyDelay > 0 {
			inj.sleep(inj.opts.KeyDelay)
		}
	}

	return typed, nil
}

func (inj *Injector) record(res Result) {
	if inj.recorder == nil {
		return
	}
	if err := inj.recorder.RecordInjection(res); err != nil {
		slog.Warn("Failed to record injection", "error", err)
	}
}

func decode(p Payload) (string, error) {
	if p.Text != "" {
		return p.Text, nil
	}
	if !utf8.Valid(p.Raw) {
		return "", ErrDecode
	}
	return string(p.Raw), nil
}
