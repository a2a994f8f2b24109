package window

import (
	"fmt"

	"github.com/1broseidon/foxbash/internal/grid"
)

// Descriptor is the rendered geometry of the window in grid cells. It is the
// only externally observable output of the controller.
type Descriptor struct {
	Left   int `yaml:"left" json:"left"`
	Top    int `yaml:"top" json:"top"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// PixelRect is a Descriptor translated to pixels.
type PixelRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func descriptorOf(s *State) Descriptor {
	return Descriptor{
		Left:   s.Position.X,
		Top:    s.Position.Y,
		Width:  s.Size.Width,
		Height: s.Size.Height,
	}
}

// Rect returns the descriptor as a grid rectangle.
func (d Descriptor) Rect() grid.Rect {
	return grid.Rect{X: d.Left, Y: d.Top, Width: d.Width, Height: d.Height}
}

// Pixels scales the descriptor by the current cell metrics.
func (d Descriptor) Pixels(m grid.CellMetrics) PixelRect {
	cw, ch := m.CellSize()
	return PixelRect{
		X:      d.Left * cw,
		Y:      d.Top * ch,
		Width:  d.Width * cw,
		Height: d.Height * ch,
	}
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%dx%d at %d,%d", d.Width, d.Height, d.Left, d.Top)
}
