package systray

import "testing"

type fakeItem struct {
	checked bool
}

func (f *fakeItem) Check()   { f.checked = true }
func (f *fakeItem) Uncheck() { f.checked = false }

func TestSyncCheck(t *testing.T) {
	item := &fakeItem{}

	syncCheck(item, true)
	if !item.checked {
		t.Fatal("item not checked")
	}

	syncCheck(item, false)
	if item.checked {
		t.Fatal("item still checked")
	}
}
