package core

// Event is the tagged union of everything the surface can deliver during a
// frame. Consumers switch on the concrete type; unrecognized variants must be
// ignored, not rejected.
type Event interface{ isEvent() }

// EventCloseRequested is emitted when the user asks the window to close.
type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventFramebufferSize is emitted when the drawable area changes size.
type EventFramebufferSize struct{ W, H int }

func (EventFramebufferSize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventCursorPos struct{ X, Y float64 }

func (EventCursorPos) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ XOff, YOff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
