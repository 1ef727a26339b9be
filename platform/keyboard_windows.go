//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"pasteprime/hotkey"
	"pasteprime/inject"
)

var (
	sendInput      = user32.NewProc("SendInput")
	mapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

const (
	inputKeyboard    = 1
	keyeventfKeyup   = 0x0002
	keyeventfUnicode = 0x0004
	mapvkVkToVsc     = 0
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte // Padding to match C struct size
}

// WindowsKeyboard implements inject.Keyboard with SendInput
type WindowsKeyboard struct{}

// NewKeyboard creates a new Windows keyboard injector
func NewKeyboard() inject.Keyboard {
	return &WindowsKeyboard{}
}

// ReleaseKey sends a key-up for a tracked modifier
func (k *WindowsKeyboard) ReleaseKey(key hotkey.Key) error {
	vk, ok := virtualKey(key)
	if !ok {
		return fmt.Errorf("no virtual key for %s", key)
	}

	scan, _, _ := mapVirtualKeyW.Call(uintptr(vk), mapvkVkToVsc)
	return k.send([]input{
		{
			inputType: inputKeyboard,
			ki: keyboardInput{
				wVk:     vk,
				wScan:   uint16(scan),
				dwFlags: keyeventfKeyup,
			},
		},
	})
}

// TypeRune sends a key-down/key-up pair for r
func (k *WindowsKeyboard) TypeRune(r rune) error {
	// Enter and Tab go out as real keys, some fields ignore them as unicode
	if vk, ok := controlKey(r); ok {
		return k.send([]input{
			{inputType: inputKeyboard, ki: keyboardInput{wVk: vk}},
			{inputType: inputKeyboard, ki: keyboardInput{wVk: vk, dwFlags: keyeventfKeyup}},
		})
	}

	units := utf16Units(r)
	inputs := make([]input, 0, len(units)*2)
	for _, u := range units {
		inputs = append(inputs, input{
			inputType: inputKeyboard,
			ki:        keyboardInput{wScan: u, dwFlags: keyeventfUnicode},
		})
	}
	for _, u := range units {
		inputs = append(inputs, input{
			inputType: inputKeyboard,
			ki:        keyboardInput{wScan: u, dwFlags: keyeventfUnicode | keyeventfKeyup},
		})
	}
	return k.send(inputs)
}

func (k *WindowsKeyboard) send(inputs []input) error {
	ret, _, err := sendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)

	if int(ret) != len(inputs) {
		return fmt.Errorf("SendInput failed: %w", err)
	}
	return nil
}
