package grid

import "fmt"

// CellMetrics reports the pixel size of one character cell. Implementations
// are consulted on every conversion so a live font change takes effect on the
// next pointer event.
type CellMetrics interface {
	CellSize() (width, height int)
}

// FixedMetrics is a constant cell size, typically taken from configuration.
type FixedMetrics struct {
	Width  int
	Height int
}

func (m FixedMetrics) CellSize() (int, int) { return m.Width, m.Height }

// UnitMetrics treats one pixel as one cell. Terminal mouse reports already
// arrive in cells.
type UnitMetrics struct{}

func (UnitMetrics) CellSize() (int, int) { return 1, 1 }

// ToGridPos converts viewport pixel coordinates into the containing grid cell.
//
// The division floors, so pixels left of or above the origin map to negative
// cells. Both metrics must be positive; anything else is a programming error
// in the caller and panics.
func ToGridPos(m CellMetrics, pixelX, pixelY int) Position {
	cw, ch := m.CellSize()
	if cw <= 0 || ch <= 0 {
		panic(fmt.Sprintf("grid: cell metrics must be positive, got %dx%d", cw, ch))
	}
	return Position{X: floorDiv(pixelX, cw), Y: floorDiv(pixelY, ch)}
}

// ToPixels converts a cell coordinate back to the pixel of its top-left corner.
func ToPixels(m CellMetrics, cell Position) (int, int) {
	cw, ch := m.CellSize()
	return cell.X * cw, cell.Y * ch
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
