package hotkey

import (
	"errors"
	"testing"
)

func feed(i *Interceptor, events ...Event) []Decision {
	out := make([]Decision, 0, len(events))
	for _, evt := range events {
		out = append(out, i.Evaluate(evt))
	}
	return out
}

func TestInterceptor_TriggerFiresOnce(t *testing.T) {
	calls := 0
	i := NewInterceptor(func() error {
		calls++
		return nil
	})

	got := feed(i, ctrlDown, shiftDown, vDown)

	if got[0] != PassThrough || got[1] != PassThrough {
		t.Fatalf("modifier events should pass through, got %v", got[:2])
	}
	if got[2] != Suppress {
		t.Fatalf("trigger decision = %v, want suppress", got[2])
	}
	if calls != 1 {
		t.Fatalf("action called %d times, want 1", calls)
	}
	if i.InProgress() {
		t.Fatal("guard still set after action returned")
	}
}

func TestInterceptor_PassThrough(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
	}{
		{name: "chord not held", events: []Event{vDown}},
		{name: "only ctrl held", events: []Event{ctrlDown, vDown}},
		{name: "only shift held", events: []Event{shiftDown, vDown}},
		{name: "trigger release", events: []Event{ctrlDown, shiftDown, vUp}},
		{name: "other key with chord", events: []Event{ctrlDown, shiftDown, aDown}},
		{name: "chord released before trigger", events: []Event{ctrlDown, shiftDown, ctrlUp, vDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			i := NewInterceptor(func() error {
				calls++
				return nil
			})
			for n, d := range feed(i, tt.events...) {
				if d != PassThrough {
					t.Fatalf("event %d: decision = %v, want pass", n, d)
				}
			}
			if calls != 0 {
				t.Fatalf("action called %d times, want 0", calls)
			}
		})
	}
}

func TestInterceptor_RepeatedTriggers(t *testing.T) {
	calls := 0
	i := NewInterceptor(func() error {
		calls++
		return nil
	})

	feed(i, ctrlDown, shiftDown, vDown, vUp, vDown, vUp)
	if calls != 2 {
		t.Fatalf("action called %d times, want 2", calls)
	}
}

func TestInterceptor_ReentrantTriggerIgnored(t *testing.T) {
	var i *Interceptor
	calls := 0
	var nested []Decision
	i = NewInterceptor(func() error {
		calls++
		if !i.InProgress() {
			t.Error("guard not set while action runs")
		}
		// Events generated while the action runs come back through the hook
		nested = feed(i, vDown, vUp, vDown)
		return nil
	})

	if d := feed(i, ctrlDown, shiftDown, vDown)[2]; d != Suppress {
		t.Fatalf("trigger decision = %v, want suppress", d)
	}
	if calls != 1 {
		t.Fatalf("action called %d times, want 1", calls)
	}
	for n, d := range nested {
		if d != PassThrough {
			t.Fatalf("nested event %d: decision = %v, want pass", n, d)
		}
	}
}

func TestInterceptor_ModifiersTrackedDuringAction(t *testing.T) {
	var i *Interceptor
	i = NewInterceptor(func() error {
		// The injector releases the modifiers from inside the action
		feed(i, ctrlUp, shiftUp)
		return nil
	})

	feed(i, ctrlDown, shiftDown, vDown)
	if i.ChordHeld() {
		t.Fatal("releases seen during the action were not tracked")
	}
}

func TestInterceptor_GuardClearedAfterFailure(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{name: "error", action: func() error { return errors.New("boom") }},
		{name: "panic", action: func() error { panic("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			i := NewInterceptor(func() error {
				calls++
				return tt.action()
			})

			if d := feed(i, ctrlDown, shiftDown, vDown)[2]; d != Suppress {
				t.Fatalf("trigger decision = %v, want suppress", d)
			}
			if i.InProgress() {
				t.Fatal("guard stuck after failing action")
			}

			// Hotkey keeps working
			if d := i.Evaluate(vDown); d != Suppress {
				t.Fatalf("second trigger decision = %v, want suppress", d)
			}
			if calls != 2 {
				t.Fatalf("action called %d times, want 2", calls)
			}
		})
	}
}

func TestInterceptor_NilAction(t *testing.T) {
	i := NewInterceptor(nil)
	if d := feed(i, ctrlDown, shiftDown, vDown)[2]; d != Suppress {
		t.Fatalf("decision = %v, want suppress", d)
	}
	if i.InProgress() {
		t.Fatal("guard stuck")
	}
}
