// Package grid holds the character-grid geometry shared by the window
// controller and the frontends: cell coordinates, sizes, bounds and the
// pixel-to-cell conversion.
package grid

// Position is the grid cell of a window's top-left corner.
type Position struct {
	X int
	Y int
}

// Sub returns the per-axis difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Size is a window extent in grid cells.
type Size struct {
	Width  int
	Height int
}

// Grow returns s enlarged by d (d may be negative).
func (s Size) Grow(d Position) Size {
	return Size{Width: s.Width + d.X, Height: s.Height + d.Y}
}

// Rect represents a window position and size in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectOf combines a position and a size.
func RectOf(p Position, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Right returns the first column after r.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row after r.
func (r Rect) Bottom() int { return r.Y + r.Height }

const (
	DefaultColumns   = 80
	DefaultRows      = 25
	DefaultMinWidth  = 15
	DefaultMinHeight = 5
)

// Bounds describes the screen grid and the legal window extents on it.
type Bounds struct {
	Columns   int
	Rows      int
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// DefaultBounds is the classic 80x25 text screen.
func DefaultBounds() Bounds {
	return Bounds{
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		MinWidth:  DefaultMinWidth,
		MaxWidth:  DefaultColumns,
		MinHeight: DefaultMinHeight,
		MaxHeight: DefaultRows,
	}
}

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampPosition keeps a window of size s fully on the screen horizontally
// and vertically. Only the window's own size is consulted.
func (b Bounds) ClampPosition(p Position, s Size) Position {
	return Position{
		X: Clamp(p.X, 0, b.Columns-s.Width),
		Y: Clamp(p.Y, 0, b.Rows-s.Height),
	}
}

// ClampSize restricts s to the fixed min/max extents. It does not look at
// where the window sits; see ClampSizeAt for the containing variant.
func (b Bounds) ClampSize(s Size) Size {
	return Size{
		Width:  Clamp(s.Width, b.MinWidth, b.MaxWidth),
		Height: Clamp(s.Height, b.MinHeight, b.MaxHeight),
	}
}

// ClampSizeAt is ClampSize with the maximum further capped so a window at p
// does not extend past the right or bottom edge. The minimum still wins when
// the remaining space is smaller than it.
func (b Bounds) ClampSizeAt(s Size, p Position) Size {
	maxW := b.MaxWidth
	if room := b.Columns - p.X; room < maxW {
		maxW = room
	}
	maxH := b.MaxHeight
	if room := b.Rows - p.Y; room < maxH {
		maxH = room
	}
	return Size{
		Width:  Clamp(s.Width, b.MinWidth, maxW),
		Height: Clamp(s.Height, b.MinHeight, maxH),
	}
}
