package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/charmbracelet/log"

	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/screen"
	"github.com/1broseidon/foxbash/internal/window"
)

const windowEventMask = xproto.EventMaskExposure |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskKeyPress |
	xproto.EventMaskStructureNotify

type frontend struct {
	conn    *Connection
	columns int
	rows    int
	chrome  screen.Chrome
	palette palette

	win *xwindow.Window
	gc  xproto.Gcontext

	fontID   xproto.Font
	fontName string
	fonts    []string
	glyphs   *fontMetrics
	// metrics is glyphs when the cell follows the font, else the configured
	// fixed cell.
	metrics      grid.CellMetrics
	cellFromFont bool

	grab *pointerGrab
	ctrl *window.Controller

	wmProtocols xproto.Atom
	wmDelete    xproto.Atom
}

// Run opens the X11 window and blocks in the event loop until the window is
// closed or q/Escape is pressed.
func Run(cfg *config.Config) error {
	conn, err := NewConnection(cfg.Display, cfg.XAuthority)
	if err != nil {
		return fmt.Errorf("failed to connect to display: %w", err)
	}
	defer conn.Close()

	f, err := newFrontend(conn, cfg)
	if err != nil {
		return err
	}
	defer f.destroy()

	cw, ch := f.metrics.CellSize()
	log.Info("x11 window ready", "font", f.fontName, "cell", fmt.Sprintf("%dx%d", cw, ch), "geometry", f.ctrl.Geometry())

	conn.EventLoop()
	return nil
}

func newFrontend(conn *Connection, cfg *config.Config) (*frontend, error) {
	pal, err := newPalette(cfg.Theme)
	if err != nil {
		return nil, err
	}

	f := &frontend{
		conn:         conn,
		columns:      cfg.Grid.Columns,
		rows:         cfg.Grid.Rows,
		chrome:       cfg.Chrome(),
		palette:      pal,
		fonts:        fontCandidates(cfg.Font),
		glyphs:       &fontMetrics{},
		cellFromFont: cfg.CellFromFont,
	}
	f.metrics = f.glyphs
	if !cfg.CellFromFont {
		f.metrics = cfg.CellMetrics()
	}

	if err := f.loadFont(f.fonts); err != nil {
		return nil, err
	}
	if err := f.createWindow(); err != nil {
		xproto.CloseFont(conn.XUtil.Conn(), f.fontID)
		return nil, err
	}

	f.grab = &pointerGrab{conn: conn.XUtil.Conn(), win: f.win.Id}
	opts := cfg.ControllerOptions()
	opts.Release = f.grab
	f.ctrl = window.New(f.metrics, opts)
	f.ctrl.OnChange = func(window.Snapshot) { f.draw() }

	if err := f.connectHandlers(); err != nil {
		f.destroy()
		return nil, err
	}

	f.win.Map()
	return f, nil
}

// loadFont opens the first usable font of names and updates the glyph
// metrics. The GC is pointed at the new font when it already exists.
func (f *frontend) loadFont(names []string) error {
	c := f.conn.XUtil.Conn()
	font, name, err := openFont(c, names)
	if err != nil {
		return err
	}
	w, h, ascent, err := queryCell(c, font)
	if err != nil {
		xproto.CloseFont(c, font)
		return fmt.Errorf("font %s: %w", name, err)
	}

	old := f.fontID
	f.fontID, f.fontName = font, name
	f.glyphs.set(w, h, ascent)

	if f.gc != 0 {
		xproto.ChangeGC(c, f.gc, xproto.GcFont, []uint32{uint32(font)})
	}
	if old != 0 {
		xproto.CloseFont(c, old)
	}
	log.Debug("font loaded", "font", name, "width", w, "height", h)
	return nil
}

func (f *frontend) pixelSize() (int, int) {
	return grid.ToPixels(f.metrics, grid.Position{X: f.columns, Y: f.rows})
}

func (f *frontend) createWindow() error {
	xu := f.conn.XUtil
	c := xu.Conn()

	win, err := xwindow.Generate(xu)
	if err != nil {
		return fmt.Errorf("failed to allocate window id: %w", err)
	}

	w, h := f.pixelSize()
	x, y := f.conn.Placement(w, h)
	desktop := f.palette.colors(screen.RoleDesktop, false)
	// Value list order follows the bit positions of the mask (low → high).
	if err := win.CreateChecked(f.conn.Root, x, y, w, h,
		xproto.CwBackPixel|xproto.CwEventMask,
		desktop.bg, windowEventMask,
	); err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	f.win = win

	gc, err := xproto.NewGcontextId(c)
	if err != nil {
		win.Destroy()
		return err
	}
	err = xproto.CreateGCChecked(
		c,
		gc,
		xproto.Drawable(win.Id),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{
			desktop.fg,
			desktop.bg,
			uint32(f.fontID),
			0, // graphics_exposures=false
		},
	).Check()
	if err != nil {
		win.Destroy()
		return fmt.Errorf("failed to create graphics context: %w", err)
	}
	f.gc = gc

	title := f.chrome.Title
	if err := ewmh.WmNameSet(xu, win.Id, title); err != nil {
		log.Debug("ewmh name not set", "err", err)
	}
	if err := icccm.WmNameSet(xu, win.Id, title); err != nil {
		log.Debug("icccm name not set", "err", err)
	}
	if err := icccm.WmClassSet(xu, win.Id, &icccm.WmClass{Instance: "foxbash", Class: "FoxBash"}); err != nil {
		log.Debug("wm class not set", "err", err)
	}
	f.setSizeHints(w, h)

	if err := icccm.WmProtocolsSet(xu, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}
	if f.wmProtocols, err = xprop.Atm(xu, "WM_PROTOCOLS"); err != nil {
		return err
	}
	if f.wmDelete, err = xprop.Atm(xu, "WM_DELETE_WINDOW"); err != nil {
		return err
	}
	return nil
}

// setSizeHints pins the top-level window to the grid size; the foxbash
// window moves inside it, the X window itself does not resize.
func (f *frontend) setSizeHints(w, h int) {
	hints := &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  uint(w),
		MinHeight: uint(h),
		MaxWidth:  uint(w),
		MaxHeight: uint(h),
	}
	if err := icccm.WmNormalHintsSet(f.conn.XUtil, f.win.Id, hints); err != nil {
		log.Debug("size hints not set", "err", err)
	}
}

func (f *frontend) connectHandlers() error {
	xu := f.conn.XUtil
	id := f.win.Id

	xevent.ExposeFun(func(_ *xgbutil.XUtil, ev xevent.ExposeEvent) {
		if ev.Count == 0 {
			f.draw()
		}
	}).Connect(xu, id)

	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		button, ok := buttonOf(ev.Detail)
		if !ok {
			return
		}
		f.ctrl.PressAt(button, int(ev.EventX), int(ev.EventY))
	}).Connect(xu, id)

	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		f.ctrl.Move(int(ev.EventX), int(ev.EventY))
	}).Connect(xu, id)

	xevent.ButtonReleaseFun(func(_ *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		f.buttonReleased(ev.Detail)
	}).Connect(xu, id)

	xevent.ClientMessageFun(func(_ *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		if ev.Type == f.wmProtocols && len(ev.Data.Data32) > 0 && xproto.Atom(ev.Data.Data32[0]) == f.wmDelete {
			f.quit()
		}
	}).Connect(xu, id)

	quit := keybind.KeyPressFun(func(_ *xgbutil.XUtil, _ xevent.KeyPressEvent) { f.quit() })
	for _, k := range []string{"q", "Escape"} {
		if err := quit.Connect(xu, id, k, false); err != nil {
			return fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	if f.cellFromFont {
		next := keybind.KeyPressFun(func(_ *xgbutil.XUtil, _ xevent.KeyPressEvent) { f.nextFont() })
		if err := next.Connect(xu, id, "f", false); err != nil {
			return fmt.Errorf("failed to bind f: %w", err)
		}
	}
	return nil
}

// buttonReleased ends the current gesture on a pointer button release.
func (f *frontend) buttonReleased(b xproto.Button) {
	if !endsGesture(b) {
		return
	}
	// Without a grab (it failed, or no gesture) the release is local.
	if !f.grab.fire() {
		f.ctrl.Release()
	}
}

// nextFont switches to the next candidate font. Cell metrics follow, so a
// gesture in progress continues in the new cell size.
func (f *frontend) nextFont() {
	idx := 0
	for i, n := range f.fonts {
		if n == f.fontName {
			idx = i
			break
		}
	}
	rotated := append(append([]string(nil), f.fonts[idx+1:]...), f.fonts[:idx+1]...)
	if err := f.loadFont(rotated); err != nil {
		log.Warn("font switch failed", "err", err)
		return
	}

	w, h := f.pixelSize()
	f.setSizeHints(w, h)
	f.win.Resize(w, h)
	f.draw()
	log.Info("font switched", "font", f.fontName)
}

func (f *frontend) quit() {
	f.ctrl.Close()
	f.conn.Quit()
}

func (f *frontend) destroy() {
	if f.ctrl != nil {
		f.ctrl.Close()
	}
	c := f.conn.XUtil.Conn()
	if f.gc != 0 {
		xproto.FreeGC(c, f.gc)
		f.gc = 0
	}
	if f.fontID != 0 {
		xproto.CloseFont(c, f.fontID)
		f.fontID = 0
	}
	if f.win != nil {
		keybind.Detach(f.conn.XUtil, f.win.Id)
		f.win.Destroy()
		f.win = nil
	}
}
