package core

import (
	"reflect"
	"testing"
)

// feedFrame runs one tracker frame over the given events.
func feedFrame(tr *Tracker, events []Event) {
	tr.BeginFrame()
	for _, ev := range events {
		tr.Handle(ev)
	}
	tr.EndFrame()
}

func TestTrackerButtonLatch(t *testing.T) {
	press := EventMouseButton{Button: MouseButtonLeft, Down: true}
	release := EventMouseButton{Button: MouseButtonLeft, Down: false}

	tests := []struct {
		name     string
		events   []Event
		wantDown bool
	}{
		{name: "initially up", events: nil, wantDown: false},
		{name: "press latches", events: []Event{press}, wantDown: true},
		{name: "release clears", events: []Event{press, release}, wantDown: false},
		{name: "repeated press idempotent", events: []Event{press, press, press}, wantDown: true},
		{name: "repeated release idempotent", events: []Event{release, release}, wantDown: false},
		{name: "last action wins", events: []Event{press, release, press}, wantDown: true},
		{
			name:     "other buttons ignored",
			events:   []Event{EventMouseButton{Button: MouseButtonRight, Down: true}, EventMouseButton{Button: MouseButtonMiddle, Down: true}},
			wantDown: false,
		},
		{
			name:     "other button release does not clear",
			events:   []Event{press, EventMouseButton{Button: MouseButtonRight, Down: false}},
			wantDown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			feedFrame(tr, tt.events)
			if tr.leftDown != tt.wantDown {
				t.Errorf("leftDown = %v, want %v", tr.leftDown, tt.wantDown)
			}
		})
	}
}

func TestTrackerDragScenario(t *testing.T) {
	tr := NewTracker()

	// Frame 1: press and move -> point recorded.
	feedFrame(tr, []Event{
		EventMouseButton{Button: MouseButtonLeft, Down: true},
		EventCursorPos{X: 10, Y: 20},
	})
	want := []CursorPos{{X: 10, Y: 20}}
	if !reflect.DeepEqual(tr.Points(), want) {
		t.Fatalf("after frame 1: points = %v, want %v", tr.Points(), want)
	}

	// Frame 2: button still held but no cursor event -> no point.
	feedFrame(tr, nil)
	if !reflect.DeepEqual(tr.Points(), want) {
		t.Fatalf("after frame 2: points = %v, want unchanged %v", tr.Points(), want)
	}

	// Frame 3: cursor moves again -> point recorded.
	feedFrame(tr, []Event{EventCursorPos{X: 15, Y: 25}})
	want = append(want, CursorPos{X: 15, Y: 25})
	if !reflect.DeepEqual(tr.Points(), want) {
		t.Fatalf("after frame 3: points = %v, want %v", tr.Points(), want)
	}

	// Frame 4: release -> subsequent moves record nothing.
	feedFrame(tr, []Event{EventMouseButton{Button: MouseButtonLeft, Down: false}})
	feedFrame(tr, []Event{EventCursorPos{X: 99, Y: 99}})
	if !reflect.DeepEqual(tr.Points(), want) {
		t.Fatalf("after release: points = %v, want unchanged %v", tr.Points(), want)
	}

	// Pressing again resumes recording.
	feedFrame(tr, []Event{
		EventMouseButton{Button: MouseButtonLeft, Down: true},
		EventCursorPos{X: 1, Y: 2},
	})
	want = append(want, CursorPos{X: 1, Y: 2})
	if !reflect.DeepEqual(tr.Points(), want) {
		t.Fatalf("after re-press: points = %v, want %v", tr.Points(), want)
	}
}

func TestTrackerCursorWithoutButtonRecordsNothing(t *testing.T) {
	tr := NewTracker()
	feedFrame(tr, []Event{EventCursorPos{X: 3, Y: 4}})
	if got := tr.Points(); len(got) != 0 {
		t.Errorf("points = %v, want empty", got)
	}
}

func TestTrackerQuit(t *testing.T) {
	tests := []struct {
		name     string
		events   []Event
		wantQuit bool
	}{
		{name: "close requested", events: []Event{EventCloseRequested{}}, wantQuit: true},
		{name: "escape release", events: []Event{EventKey{Key: KeyEscape, Down: false}}, wantQuit: true},
		{name: "escape press alone does not quit", events: []Event{EventKey{Key: KeyEscape, Down: true}}, wantQuit: false},
		{name: "other key release ignored", events: []Event{EventKey{Key: KeySpace, Down: false}}, wantQuit: false},
		{
			name: "quit sticks regardless of later events",
			events: []Event{
				EventCloseRequested{},
				EventCursorPos{X: 1, Y: 1},
				EventFramebufferSize{W: 10, H: 10},
			},
			wantQuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			feedFrame(tr, tt.events)
			if tr.ShouldQuit() != tt.wantQuit {
				t.Errorf("ShouldQuit() = %v, want %v", tr.ShouldQuit(), tt.wantQuit)
			}
		})
	}
}

func TestTrackerResizeAbsorbed(t *testing.T) {
	tr := NewTracker()
	feedFrame(tr, []Event{
		EventFramebufferSize{W: 100, H: 100},
		EventFramebufferSize{W: 200, H: 150},
		EventFramebufferSize{W: 300, H: 200},
	})
	if !tr.TakeResize() {
		t.Fatal("TakeResize() = false after resize events, want true")
	}
	if tr.TakeResize() {
		t.Fatal("TakeResize() = true on second take, want false (flag consumed)")
	}

	feedFrame(tr, nil)
	if tr.TakeResize() {
		t.Fatal("TakeResize() = true on a frame with no resize events")
	}
}

func TestTrackerIgnoresUnrecognizedEvents(t *testing.T) {
	tr := NewTracker()
	feedFrame(tr, []Event{
		EventScroll{XOff: 1, YOff: -1},
		EventKey{Key: KeySpace, Down: true},
	})
	if tr.ShouldQuit() {
		t.Error("ShouldQuit() = true, want false")
	}
	if tr.TakeResize() {
		t.Error("TakeResize() = true, want false")
	}
	if tr.leftDown {
		t.Error("leftDown = true, want false")
	}
	if len(tr.Points()) != 0 {
		t.Errorf("points = %v, want empty", tr.Points())
	}
}
