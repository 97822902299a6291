// Package selection implements the drag-to-select state machine used by the
// region selection overlay. It has no UI dependencies; the overlay feeds it
// pointer and key events and reads back an Outcome.
package selection

import "github.com/soocke/screen-watch-go/domain/region"

// State is the phase of a selection.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateReleased
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateReleased:
		return "released"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome is the result of a selection: either a region or nothing.
type Outcome struct {
	Region region.Region
	OK     bool
}

// Selected wraps r as a successful outcome.
func Selected(r region.Region) Outcome { return Outcome{Region: r, OK: true} }

// Cancelled is the outcome of a dismissed selection.
func Cancelled() Outcome { return Outcome{} }

// Tracker follows one drag gesture. Coordinates are absolute screen pixels.
type Tracker struct {
	state          State
	startX, startY int
	result         region.Region
}

// NewTracker returns a Tracker in the Idle state.
func NewTracker() *Tracker { return &Tracker{} }

// State returns the current phase.
func (t *Tracker) State() State { return t.state }

// Done reports whether the tracker reached a terminal state.
func (t *Tracker) Done() bool { return t.state == StateReleased || t.state == StateCancelled }

// Press records the drag start. Ignored once terminated.
func (t *Tracker) Press(x, y int) {
	if t.Done() {
		return
	}
	t.state = StateDragging
	t.startX, t.startY = x, y
}

// Move updates the drag end and returns the rectangle to outline. ok is false
// when no drag is in progress.
func (t *Tracker) Move(x, y int) (r region.Region, ok bool) {
	if t.state != StateDragging {
		return region.Region{}, false
	}
	return region.FromDrag(t.startX, t.startY, x, y), true
}

// Release completes the drag. It returns false when no drag is in progress.
func (t *Tracker) Release(x, y int) bool {
	if t.state != StateDragging {
		return false
	}
	t.result = region.FromDrag(t.startX, t.startY, x, y)
	t.state = StateReleased
	return true
}

// Cancel terminates without a result. Ignored after release.
func (t *Tracker) Cancel() {
	if t.state == StateReleased {
		return
	}
	t.state = StateCancelled
}

// Outcome returns the selection result. Anything other than a completed
// release yields Cancelled.
func (t *Tracker) Outcome() Outcome {
	if t.state != StateReleased {
		return Cancelled()
	}
	return Selected(t.result)
}
