package platform

import (
	"unicode/utf16"

	"pasteprime/hotkey"
)

// Low-level keyboard hook messages
const (
	wmKeydown    = 0x0100
	wmKeyup      = 0x0101
	wmSyskeydown = 0x0104
	wmSyskeyup   = 0x0105
)

// Virtual key codes
const (
	vkTab      = 0x09
	vkReturn   = 0x0D
	vkLshift   = 0xA0
	vkLcontrol = 0xA2
)

// translateEvent converts a WH_KEYBOARD_LL message into a hotkey event.
// ok is false for messages that are not key down/up.
func translateEvent(wParam uintptr, vkCode uint32) (evt hotkey.Event, ok bool) {
	switch wParam {
	case wmKeydown, wmSyskeydown:
		evt.Kind = hotkey.Press
	case wmKeyup, wmSyskeyup:
		evt.Kind = hotkey.Release
	default:
		return evt, false
	}

	switch vkCode {
	case vkLcontrol:
		evt.Key = hotkey.KeyLeftControl
	case vkLshift:
		evt.Key = hotkey.KeyLeftShift
	default:
		evt.Key = hotkey.KeyOther
	}
	evt.Code = vkCode
	return evt, true
}

// virtualKey returns the VK code of a tracked modifier
func virtualKey(k hotkey.Key) (uint16, bool) {
	switch k {
	case hotkey.KeyLeftControl:
		return vkLcontrol, true
	case hotkey.KeyLeftShift:
		return vkLshift, true
	}
	return 0, false
}

// controlKey maps characters that have to be typed as real keys, the way a
// keyboard would produce them
func controlKey(r rune) (uint16, bool) {
	switch r {
	case '\n', '\r':
		return vkReturn, true
	case '\t':
		return vkTab, true
	}
	return 0, false
}

// utf16Units splits r into the UTF-16 code units KEYEVENTF_UNICODE expects
func utf16Units(r rune) []uint16 {
	return utf16.Encode([]rune{r})
}
