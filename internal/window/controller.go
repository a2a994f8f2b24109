// Package window implements the pointer interaction controller for the
// foxbash window: title-bar drags, handle resizes, and the display-wide
// release listener that ends a gesture wherever the button comes up.
package window

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/foxbash/internal/grid"
)

// Options configures a Controller.
type Options struct {
	Bounds   grid.Bounds
	Position grid.Position
	Size     grid.Size

	// ContainOnResize caps resizes at the right and bottom screen edges.
	// Off by default: size is clamped against the fixed bounds only.
	ContainOnResize bool

	// Release is the global pointer-up signal. Nil disables it; callers must
	// then invoke Release themselves.
	Release ReleaseSource
}

// DefaultOptions returns the classic 80x25 screen with a 40x15 window at (2,1).
func DefaultOptions() Options {
	return Options{
		Bounds:   grid.DefaultBounds(),
		Position: grid.Position{X: 2, Y: 1},
		Size:     grid.Size{Width: 40, Height: 15},
	}
}

// Snapshot is a consistent view of the controller for renderers.
type Snapshot struct {
	Phase    Phase
	Geometry Descriptor
}

// OnChangeFunc is called after the phase or the geometry changed.
type OnChangeFunc func(Snapshot)

// Controller is the window interaction controller
type Controller struct {
	mu      sync.Mutex
	metrics grid.CellMetrics
	bounds  grid.Bounds
	contain bool
	release ReleaseSource
	state   *State

	// gesture counts presses that started a gesture so a late listener
	// registration can tell it lost a race with the release.
	gesture     uint64
	stopRelease func()
	closed      bool

	// OnChange is called after every geometry or phase change, without the
	// controller lock held.
	OnChange OnChangeFunc
}

// New creates a controller in the idle phase. Metrics are consulted on every
// pointer event and must report a positive cell size.
func New(metrics grid.CellMetrics, opts Options) *Controller {
	return &Controller{
		metrics: metrics,
		bounds:  opts.Bounds,
		contain: opts.ContainOnResize,
		release: opts.Release,
		state:   NewState(opts.Position, opts.Size),
	}
}

// Phase returns the current gesture phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Phase
}

// Geometry returns the window rectangle in grid cells.
func (c *Controller) Geometry() Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return descriptorOf(c.state)
}

// Snapshot returns phase and geometry together.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{Phase: c.state.Phase, Geometry: descriptorOf(c.state)}
}

// HitTest classifies the pixel under the pointer. The title bar is the top
// row of the window and the resize handle its bottom-right cell.
func (c *Controller) HitTest(pixelX, pixelY int) Target {
	cell := grid.ToGridPos(c.metrics, pixelX, pixelY)

	c.mu.Lock()
	defer c.mu.Unlock()
	return hitTest(c.state.Rect(), cell)
}

func hitTest(r grid.Rect, cell grid.Position) Target {
	if !r.Contains(cell.X, cell.Y) {
		return TargetNone
	}
	if cell.X == r.Right()-1 && cell.Y == r.Bottom()-1 {
		return TargetResizeHandle
	}
	if cell.Y == r.Y {
		return TargetTitleBar
	}
	return TargetWindow
}

// PressAt hit-tests the pointer and forwards to Press.
func (c *Controller) PressAt(button Button, pixelX, pixelY int) bool {
	return c.Press(button, c.HitTest(pixelX, pixelY), pixelX, pixelY)
}

// Press starts a drag (title bar) or resize (handle) gesture. Only the
// primary button starts a gesture; a press while a gesture is running is
// ignored. The return value reports whether the press was consumed, i.e.
// whether the frontend should suppress its default handling.
func (c *Controller) Press(button Button, target Target, pixelX, pixelY int) bool {
	if button != ButtonPrimary {
		return false
	}
	var next Phase
	switch target {
	case TargetTitleBar:
		next = PhaseDragging
	case TargetResizeHandle:
		next = PhaseResizing
	default:
		return false
	}

	start := grid.ToGridPos(c.metrics, pixelX, pixelY)

	c.mu.Lock()
	if c.closed || c.state.Active() {
		c.mu.Unlock()
		return false
	}
	c.state.Phase = next
	c.state.DragStart = start
	if next == PhaseDragging {
		c.state.InitialPos = c.state.Position
	} else {
		c.state.InitialSize = c.state.Size
	}
	c.gesture++
	gesture := c.gesture
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Debug("gesture started", "phase", next, "cell_x", start.X, "cell_y", start.Y)

	c.listenForRelease(gesture)
	c.notify(snap)
	return true
}

// listenForRelease attaches the global release listener for the given
// gesture. Registration happens outside the lock because a source may do I/O.
func (c *Controller) listenForRelease(gesture uint64) {
	if c.release == nil {
		return
	}
	stop, err := c.release.Listen(c.Release)
	if err != nil {
		log.Warn("global release listener unavailable; releases outside the window will not end the gesture", "err", err)
		return
	}

	c.mu.Lock()
	if c.gesture != gesture || !c.state.Active() || c.closed {
		// Released (or closed) before the listener was in place.
		c.mu.Unlock()
		stop()
		return
	}
	c.stopRelease = stop
	c.mu.Unlock()
}

// Move updates position or size from the pointer. It is a no-op while idle
// and reports whether the geometry changed.
func (c *Controller) Move(pixelX, pixelY int) bool {
	c.mu.Lock()
	if !c.state.Active() {
		c.mu.Unlock()
		return false
	}

	cell := grid.ToGridPos(c.metrics, pixelX, pixelY)
	delta := cell.Sub(c.state.DragStart)
	before := c.state.Rect()

	switch c.state.Phase {
	case PhaseDragging:
		c.state.Position = c.bounds.ClampPosition(c.state.InitialPos.Add(delta), c.state.Size)
	case PhaseResizing:
		want := c.state.InitialSize.Grow(delta)
		if c.contain {
			c.state.Size = c.bounds.ClampSizeAt(want, c.state.Position)
		} else {
			c.state.Size = c.bounds.ClampSize(want)
		}
	}

	changed := c.state.Rect() != before
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return changed
}

// Release ends any gesture in progress and detaches the global listener.
// Safe to call in any phase.
func (c *Controller) Release() {
	c.mu.Lock()
	if !c.state.Active() {
		c.mu.Unlock()
		return
	}
	phase := c.state.Phase
	c.state.Reset()
	stop := c.stopRelease
	c.stopRelease = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	log.Debug("gesture ended", "phase", phase, "x", snap.Geometry.Left, "y", snap.Geometry.Top,
		"width", snap.Geometry.Width, "height", snap.Geometry.Height)
	c.notify(snap)
}

// Close ends any gesture and releases the global listener. Further presses
// are ignored.
func (c *Controller) Close() {
	c.Release()

	c.mu.Lock()
	c.closed = true
	stop := c.stopRelease
	c.stopRelease = nil
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.OnChange != nil {
		c.OnChange(snap)
	}
}
