package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

func (m Monitor) contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// Monitors retrieves all active monitors using XRandR
func (c *Connection) Monitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return monitors, nil
}

// Placement returns the top-left root coordinate for a width x height window:
// centered on the monitor under the pointer, inside the work area when the
// window manager publishes one.
func (c *Connection) Placement(width, height int) (int, int) {
	screen := c.XUtil.Screen()
	root := Monitor{Width: int(screen.WidthInPixels), Height: int(screen.HeightInPixels)}

	monitors, err := c.Monitors()
	if err != nil || len(monitors) == 0 {
		monitors = []Monitor{root}
	}

	px, py := -1, -1
	if ptr, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		px, py = int(ptr.RootX), int(ptr.RootY)
	}
	mon := monitorAt(monitors, px, py)

	if areas, err := ewmh.WorkareaGet(c.XUtil); err == nil && len(areas) > 0 {
		desktop := 0
		if cur, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(cur) < len(areas) {
			desktop = int(cur)
		}
		wa := areas[desktop]
		mon = intersect(mon, Monitor{X: wa.X, Y: wa.Y, Width: int(wa.Width), Height: int(wa.Height)})
	}

	return centerOn(mon, width, height)
}

// monitorAt returns the monitor containing the point, or the first monitor.
func monitorAt(monitors []Monitor, x, y int) Monitor {
	for _, m := range monitors {
		if m.contains(x, y) {
			return m
		}
	}
	return monitors[0]
}

// intersect clips m to area. A disjoint area leaves m unchanged.
func intersect(m, area Monitor) Monitor {
	x1 := max(m.X, area.X)
	y1 := max(m.Y, area.Y)
	x2 := min(m.X+m.Width, area.X+area.Width)
	y2 := min(m.Y+m.Height, area.Y+area.Height)
	if x2 <= x1 || y2 <= y1 {
		return m
	}
	m.X, m.Y, m.Width, m.Height = x1, y1, x2-x1, y2-y1
	return m
}

// centerOn centers a window on m, pinning it to the top-left corner of m when
// it does not fit.
func centerOn(m Monitor, width, height int) (int, int) {
	x := m.X + (m.Width-width)/2
	y := m.Y + (m.Height-height)/2
	return max(x, m.X), max(y, m.Y)
}
