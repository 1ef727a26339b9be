package hotkey

// Key identifies the keys the chord tracker cares about
type Key int

const (
	KeyOther Key = iota
	KeyLeftControl
	KeyLeftShift
)

func (k Key) String() string {
	switch k {
	case KeyLeftControl:
		return "lctrl"
	case KeyLeftShift:
		return "lshift"
	default:
		return "other"
	}
}

// Kind is the direction of a key event
type Kind int

const (
	Press Kind = iota + 1
	Release
)

// TriggerCode is the virtual key code of 'V'
const TriggerCode uint32 = 0x56

// Event is a single raw keyboard event as delivered by the input hook
type Event struct {
	Key  Key
	Kind Kind
	Code uint32 // native virtual key code
}

// Decision tells the input hook what to do with an event
type Decision int

const (
	PassThrough Decision = iota
	Suppress
)

func (d Decision) String() string {
	if d == Suppress {
		return "suppress"
	}
	return "pass"
}
