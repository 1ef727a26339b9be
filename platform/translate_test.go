package platform

import (
	"reflect"
	"testing"

	"pasteprime/hotkey"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name   string
		wParam uintptr
		vk     uint32
		want   hotkey.Event
		wantOK bool
	}{
		{name: "left ctrl down", wParam: wmKeydown, vk: vkLcontrol, want: hotkey.Event{Key: hotkey.KeyLeftControl, Kind: hotkey.Press, Code: vkLcontrol}, wantOK: true},
		{name: "left ctrl up", wParam: wmKeyup, vk: vkLcontrol, want: hotkey.Event{Key: hotkey.KeyLeftControl, Kind: hotkey.Release, Code: vkLcontrol}, wantOK: true},
		{name: "left shift sys down", wParam: wmSyskeydown, vk: vkLshift, want: hotkey.Event{Key: hotkey.KeyLeftShift, Kind: hotkey.Press, Code: vkLshift}, wantOK: true},
		{name: "right ctrl is other", wParam: wmKeydown, vk: 0xA3, want: hotkey.Event{Key: hotkey.KeyOther, Kind: hotkey.Press, Code: 0xA3}, wantOK: true},
		{name: "v sys up", wParam: wmSyskeyup, vk: 0x56, want: hotkey.Event{Key: hotkey.KeyOther, Kind: hotkey.Release, Code: 0x56}, wantOK: true},
		{name: "unknown message", wParam: 0x0200, vk: 0x56, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateEvent(tt.wParam, tt.vk)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVirtualKey(t *testing.T) {
	if vk, ok := virtualKey(hotkey.KeyLeftControl); !ok || vk != vkLcontrol {
		t.Fatalf("virtualKey(lctrl) = %#x, %v", vk, ok)
	}
	if vk, ok := virtualKey(hotkey.KeyLeftShift); !ok || vk != vkLshift {
		t.Fatalf("virtualKey(lshift) = %#x, %v", vk, ok)
	}
	if _, ok := virtualKey(hotkey.KeyOther); ok {
		t.Fatal("virtualKey(other) should not map")
	}
}

func TestControlKey(t *testing.T) {
	tests := []struct {
		r      rune
		want   uint16
		wantOK bool
	}{
		{'\n', vkReturn, true},
		{'\r', vkReturn, true},
		{'\t', vkTab, true},
		{'a', 0, false},
		{' ', 0, false},
	}
	for _, tt := range tests {
		got, ok := controlKey(tt.r)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("controlKey(%q) = %#x, %v; want %#x, %v", tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestUTF16Units(t *testing.T) {
	tests := []struct {
		r    rune
		want []uint16
	}{
		{'H', []uint16{0x48}},
		{'é', []uint16{0xE9}},
		{'😀', []uint16{0xD83D, 0xDE00}},
	}
	for _, tt := range tests {
		if got := utf16Units(tt.r); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("utf16Units(%q) = %#x, want %#x", tt.r, got, tt.want)
		}
	}
}
