package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/window"
)

const dragScript = `
cell: {width: 8, height: 16}
events:
  - press: {button: primary, x: 19, y: 21}
  - move: {x: 83, y: 85}
  - release: {}
`

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return s
}

func TestRun_DragScenario(t *testing.T) {
	s := mustParse(t, dragScript)
	res, err := Run(s, s.Metrics(grid.FixedMetrics{}), window.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(res.Steps))
	}

	press := res.Steps[0]
	if press.Target != "title-bar" || !press.Consumed || press.Phase != "dragging" {
		t.Fatalf("press step = %+v", press)
	}
	if move := res.Steps[1]; move.Geometry.Left != 10 || move.Geometry.Top != 5 {
		t.Fatalf("move step = %+v", move)
	}
	if res.Phase != "idle" || res.Final.Left != 10 || res.Final.Top != 5 {
		t.Fatalf("final = %s %v", res.Phase, res.Final)
	}
	if res.Listeners != 0 {
		t.Fatalf("listeners left attached: %d", res.Listeners)
	}
}

func TestRun_ResizeToMinimum(t *testing.T) {
	s := mustParse(t, `
cell: {width: 8, height: 16}
events:
  - press: {x: 329, y: 241}
  - move: {x: -800, y: -1600}
`)
	res, err := Run(s, s.Metrics(grid.FixedMetrics{}), window.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Steps[0].Target != "resize-handle" {
		t.Fatalf("press target = %s", res.Steps[0].Target)
	}
	if res.Final.Width != 15 || res.Final.Height != 5 {
		t.Fatalf("final size = %v, want 15x5", res.Final)
	}
	// No release in the script: the gesture is still open.
	if res.Phase != "resizing" || res.Listeners != 1 {
		t.Fatalf("phase %s listeners %d", res.Phase, res.Listeners)
	}
}

func TestRun_SecondaryButtonIgnored(t *testing.T) {
	s := mustParse(t, `
events:
  - press: {button: right, x: 19, y: 21}
  - move: {x: 300, y: 300}
`)
	res, err := Run(s, s.Metrics(grid.FixedMetrics{Width: 8, Height: 16}), window.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Steps[0].Consumed || res.Phase != "idle" {
		t.Fatalf("secondary press started a gesture: %+v", res.Steps[0])
	}
	if res.Final != (window.Descriptor{Left: 2, Top: 1, Width: 40, Height: 15}) {
		t.Fatalf("geometry changed: %v", res.Final)
	}
}

func TestRun_RejectsEmptyCell(t *testing.T) {
	s := mustParse(t, "events: []\n")
	if _, err := Run(s, s.Metrics(grid.FixedMetrics{}), window.DefaultOptions()); err == nil {
		t.Fatalf("expected error for zero cell size")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"two kinds", "events:\n  - {press: {x: 1, y: 1}, move: {x: 2, y: 2}}\n", "exactly one"},
		{"no kind", "events:\n  - {}\n", "exactly one"},
		{"bad button", "events:\n  - press: {button: wheel, x: 1, y: 1}\n", "unknown button"},
		{"unknown key", "cells: {width: 8}\n", "cells"},
		{"negative cell", "cell: {width: -1, height: 16}\n", "positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Parse error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestScriptMetrics_Fallback(t *testing.T) {
	s := mustParse(t, "cell: {width: 10}\n")
	m := s.Metrics(grid.FixedMetrics{Width: 9, Height: 15})
	if m.Width != 10 || m.Height != 15 {
		t.Fatalf("metrics = %+v", m)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.yaml")
	if err := os.WriteFile(path, []byte(dragScript), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Events) != 3 || s.Events[2].Release == nil {
		t.Fatalf("unexpected script %+v", s)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
