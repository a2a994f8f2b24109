package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/screen"
	"github.com/1broseidon/foxbash/internal/window"
)

// maxText8 is the longest string a single ImageText8 request carries.
const maxText8 = 255

// textRun is a piece of a canvas run drawn with one ImageText8 request.
type textRun struct {
	column int
	text   string
}

// glyphRuns splits a canvas run into ImageText8 requests. When the font
// advance equals the cell width the run is drawn in one piece, otherwise
// every character is placed on its own cell.
func glyphRuns(run screen.Run, sameAdvance bool) []textRun {
	text := make([]byte, 0, len(run.Text))
	for _, r := range run.Text {
		text = append(text, byte(screen.ASCII(r)))
	}

	var out []textRun
	if sameAdvance {
		for start := 0; start < len(text); start += maxText8 {
			end := min(start+maxText8, len(text))
			out = append(out, textRun{column: run.X + start, text: string(text[start:end])})
		}
		return out
	}
	for i, ch := range text {
		if ch == ' ' {
			continue
		}
		out = append(out, textRun{column: run.X + i, text: string(ch)})
	}
	return out
}

// runRect is the pixel rectangle covered by a run on row y.
func runRect(run screen.Run, y int, m grid.CellMetrics) xproto.Rectangle {
	span := window.Descriptor{Left: run.X, Top: y, Width: len([]rune(run.Text)), Height: 1}
	r := span.Pixels(m)
	return xproto.Rectangle{
		X:      int16(r.X),
		Y:      int16(r.Y),
		Width:  uint16(r.Width),
		Height: uint16(r.Height),
	}
}

// buttonOf maps core X buttons to controller buttons. 4-7 are wheel steps;
// they neither start nor end gestures.
func buttonOf(b xproto.Button) (window.Button, bool) {
	switch b {
	case xproto.ButtonIndex1:
		return window.ButtonPrimary, true
	case xproto.ButtonIndex2:
		return window.ButtonMiddle, true
	case xproto.ButtonIndex3:
		return window.ButtonSecondary, true
	case 8:
		return window.ButtonBack, true
	case 9:
		return window.ButtonForward, true
	default:
		return 0, false
	}
}

// endsGesture reports whether releasing b ends a drag or resize. Wheel steps
// arrive as press/release pairs and are ignored.
func endsGesture(b xproto.Button) bool {
	_, ok := buttonOf(b)
	return ok
}

// draw paints the whole canvas. Each run is filled with its background first
// so cells wider than the font glyphs leave no gaps.
func (f *frontend) draw() {
	conn := f.conn.XUtil.Conn()
	drawable := xproto.Drawable(f.win.Id)

	canvas := screen.Compose(f.columns, f.rows, f.chrome, f.ctrl.Snapshot())
	cw, _ := f.metrics.CellSize()
	glyphW, _ := f.glyphs.CellSize()
	baseline := f.glyphs.baseline()
	sameAdvance := glyphW == cw

	for y := 0; y < canvas.Rows; y++ {
		for _, run := range canvas.Runs(y) {
			c := f.palette.colors(run.Role, canvas.Active)

			xproto.ChangeGC(conn, f.gc, xproto.GcForeground, []uint32{c.bg})
			xproto.PolyFillRectangle(conn, drawable, f.gc, []xproto.Rectangle{runRect(run, y, f.metrics)})

			xproto.ChangeGC(conn, f.gc, xproto.GcForeground|xproto.GcBackground, []uint32{c.fg, c.bg})
			for _, tr := range glyphRuns(run, sameAdvance) {
				px, py := grid.ToPixels(f.metrics, grid.Position{X: tr.column, Y: y})
				xproto.ImageText8(conn, byte(len(tr.text)), drawable, f.gc,
					int16(px), int16(py+baseline), tr.text)
			}
		}
	}
}
