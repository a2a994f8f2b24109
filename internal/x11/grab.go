package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const grabEventMask = xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// pointerGrab is the display-wide release source. While a listener is
// registered the pointer is actively grabbed by the foxbash window, so
// motion and the button release are reported to it wherever they happen.
type pointerGrab struct {
	conn *xgb.Conn
	win  xproto.Window

	mu sync.Mutex
	fn func()
}

// Listen implements window.ReleaseSource.
func (g *pointerGrab) Listen(fn func()) (func(), error) {
	reply, err := xproto.GrabPointer(
		g.conn,
		false, // owner_events: report everything relative to win
		g.win,
		uint16(grabEventMask),
		xproto.GrabModeAsync, // pointer_mode
		xproto.GrabModeAsync, // keyboard_mode
		xproto.WindowNone,    // confine_to
		xproto.CursorNone,
		xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("pointer grab: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return nil, fmt.Errorf("pointer grab failed with status %d", reply.Status)
	}

	g.mu.Lock()
	g.fn = fn
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.fn = nil
			g.mu.Unlock()
			xproto.UngrabPointer(g.conn, xproto.TimeCurrentTime)
		})
	}, nil
}

// fire runs the registered listener and reports whether there was one.
func (g *pointerGrab) fire() bool {
	g.mu.Lock()
	fn := g.fn
	g.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}
