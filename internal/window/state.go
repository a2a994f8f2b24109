package window

import (
	"fmt"
	"strings"

	"github.com/1broseidon/foxbash/internal/grid"
)

// Phase represents the current phase of a pointer gesture
type Phase int

const (
	// PhaseIdle means no gesture is in progress
	PhaseIdle Phase = iota
	// PhaseDragging means the title bar was grabbed and the window follows the pointer
	PhaseDragging
	// PhaseResizing means the resize handle was grabbed and the size follows the pointer
	PhaseResizing
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Target identifies the part of the window under the pointer.
type Target int

const (
	TargetNone Target = iota
	TargetWindow
	TargetTitleBar
	TargetResizeHandle
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetWindow:
		return "window"
	case TargetTitleBar:
		return "title-bar"
	case TargetResizeHandle:
		return "resize-handle"
	default:
		return "unknown"
	}
}

// Button is a pointer button id, numbered the way browsers number them.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
	ButtonBack
	ButtonForward
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "other"
	}
}

// ParseButton accepts a button name (primary, middle, secondary, back,
// forward) or its aliases left and right.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "left", "":
		return ButtonPrimary, nil
	case "middle":
		return ButtonMiddle, nil
	case "secondary", "right":
		return ButtonSecondary, nil
	case "back":
		return ButtonBack, nil
	case "forward":
		return ButtonForward, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

// State holds the window geometry and the data captured at gesture start
type State struct {
	Phase    Phase
	Position grid.Position
	Size     grid.Size

	DragStart   grid.Position // pointer cell at press time
	InitialPos  grid.Position // Position at press time (dragging only)
	InitialSize grid.Size     // Size at press time (resizing only)
}

// NewState creates an idle state with the given geometry
func NewState(pos grid.Position, size grid.Size) *State {
	return &State{
		Phase:    PhaseIdle,
		Position: pos,
		Size:     size,
	}
}

// Reset returns the state to idle. Geometry is kept.
func (s *State) Reset() {
	s.Phase = PhaseIdle
	s.DragStart = grid.Position{}
	s.InitialPos = grid.Position{}
	s.InitialSize = grid.Size{}
}

// Active reports whether a drag or resize is in progress.
func (s *State) Active() bool {
	return s.Phase == PhaseDragging || s.Phase == PhaseResizing
}

// Rect returns the window rectangle in cells.
func (s *State) Rect() grid.Rect {
	return grid.RectOf(s.Position, s.Size)
}
