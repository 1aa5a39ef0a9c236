package core

// CursorPos is a cursor position in window coordinates.
type CursorPos struct{ X, Y float64 }

// Tracker folds a frame's events into input state. It is a pure state
// machine: the platform feeds it events, the loop reads the flags.
//
// The cursor position only counts as known when a cursor event arrived in the
// current frame, so a drag that stalls records no point until the cursor
// moves again.
type Tracker struct {
	cursor    CursorPos
	hasCursor bool
	leftDown  bool
	points    []CursorPos
	quit      bool
	resize    bool
}

func NewTracker() *Tracker { return &Tracker{} }

// BeginFrame forgets the previous frame's cursor position. Button state
// persists until a press/release toggles it.
func (t *Tracker) BeginFrame() { t.hasCursor = false }

// Handle consumes one event. Unrecognized events are deliberate no-ops.
func (t *Tracker) Handle(ev Event) {
	switch e := ev.(type) {
	case EventCloseRequested:
		t.quit = true
	case EventKey:
		// Quit on escape release, matching the close-request semantics.
		if e.Key == KeyEscape && !e.Down {
			t.quit = true
		}
	case EventFramebufferSize:
		t.resize = true
	case EventCursorPos:
		t.cursor = CursorPos{X: e.X, Y: e.Y}
		t.hasCursor = true
	case EventMouseButton:
		if e.Button != MouseButtonLeft {
			return
		}
		t.leftDown = e.Down
	default:
		// scroll, unbound keys, etc.
	}
}

// EndFrame records the cursor position while the left button is held, but
// only if the position was refreshed this frame.
func (t *Tracker) EndFrame() {
	if t.leftDown && t.hasCursor {
		t.points = append(t.points, t.cursor)
	}
}

// ShouldQuit reports whether a close request or escape release was seen.
func (t *Tracker) ShouldQuit() bool { return t.quit }

// TakeResize consumes the resize flag. Any number of resize events within a
// frame collapse into a single true.
func (t *Tracker) TakeResize() bool {
	r := t.resize
	t.resize = false
	return r
}

// Points returns the accumulated drag points. The slice is append-only and
// owned by the tracker; callers must not modify it.
func (t *Tracker) Points() []CursorPos { return t.points }
