// Package replay feeds recorded pointer gestures through a window controller
// without a display. Scripts are YAML, in pixels:
//
//	cell: {width: 8, height: 16}
//	events:
//	  - press: {button: primary, x: 19, y: 21}
//	  - move: {x: 83, y: 85}
//	  - release: {}
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/window"
)

// Cell is the pixel size of a character cell. Zero means "use the
// configured cell".
type Cell struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Pointer is the payload of an event. Move ignores Button; release ignores
// the coordinates.
type Pointer struct {
	Button string `yaml:"button,omitempty"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// Event holds exactly one of Press, Move or Release.
type Event struct {
	Press   *Pointer `yaml:"press,omitempty"`
	Move    *Pointer `yaml:"move,omitempty"`
	Release *Pointer `yaml:"release,omitempty"`
}

func (e Event) validate() error {
	n := 0
	for _, p := range []*Pointer{e.Press, e.Move, e.Release} {
		if p != nil {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("event must have exactly one of press, move, release (has %d)", n)
	}
	if e.Press != nil {
		if _, err := window.ParseButton(e.Press.Button); err != nil {
			return err
		}
	}
	if e.Release != nil {
		if _, err := window.ParseButton(e.Release.Button); err != nil {
			return err
		}
	}
	return nil
}

// Script is a cell size and a list of pointer events.
type Script struct {
	Cell   Cell    `yaml:"cell"`
	Events []Event `yaml:"events"`
}

// Parse decodes a script strictly; unknown keys are errors.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if s.Cell.Width < 0 || s.Cell.Height < 0 {
		return nil, fmt.Errorf("cell: width and height must be positive")
	}
	for i, ev := range s.Events {
		if err := ev.validate(); err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Metrics returns the script cell, falling back to fallback for unset axes.
func (s *Script) Metrics(fallback grid.FixedMetrics) grid.FixedMetrics {
	m := grid.FixedMetrics{Width: s.Cell.Width, Height: s.Cell.Height}
	if m.Width == 0 {
		m.Width = fallback.Width
	}
	if m.Height == 0 {
		m.Height = fallback.Height
	}
	return m
}
