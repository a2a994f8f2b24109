package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/window"
)

func newTestModel(t *testing.T) (model, *window.Controller, *window.Signal) {
	t.Helper()
	cfg := config.DefaultConfig()
	release := window.NewSignal()
	opts := cfg.ControllerOptions()
	opts.Release = release
	ctrl := window.New(grid.UnitMetrics{}, opts)
	t.Cleanup(ctrl.Close)
	return newModel(cfg, ctrl, release), ctrl, release
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestUpdate_DragTitleBar(t *testing.T) {
	m, ctrl, release := newTestModel(t)

	m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 1))
	if ctrl.Phase() != window.PhaseDragging {
		t.Fatalf("phase = %v, want dragging", ctrl.Phase())
	}
	if release.Listeners() != 1 {
		t.Fatalf("expected one release listener, got %d", release.Listeners())
	}

	m = send(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 10, 5))
	if g := ctrl.Geometry(); g.Left != 10 || g.Top != 5 {
		t.Fatalf("geometry = %v, want left 10 top 5", g)
	}

	// Released far from the window.
	send(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 79, 24))
	if ctrl.Phase() != window.PhaseIdle {
		t.Fatalf("phase = %v, want idle", ctrl.Phase())
	}
	if g := ctrl.Geometry(); g.Left != 10 || g.Top != 5 {
		t.Fatalf("release moved the window: %v", g)
	}
	if release.Listeners() != 0 {
		t.Fatalf("listener leaked: %d", release.Listeners())
	}
}

func TestUpdate_ResizeFromHandle(t *testing.T) {
	m, ctrl, _ := newTestModel(t)

	// Default window spans columns 2..41 and rows 1..15.
	m = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 41, 15),
		mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 0, 0),
	)
	if g := ctrl.Geometry(); g.Width != 15 || g.Height != 5 {
		t.Fatalf("geometry = %v, want 15x5", g)
	}
	send(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 0, 0))
	if ctrl.Phase() != window.PhaseIdle {
		t.Fatalf("phase = %v, want idle", ctrl.Phase())
	}
}

func TestUpdate_IgnoresOtherButtons(t *testing.T) {
	buttons := []tea.MouseButton{
		tea.MouseButtonRight,
		tea.MouseButtonMiddle,
		tea.MouseButtonWheelUp,
		tea.MouseButtonWheelDown,
	}
	for _, b := range buttons {
		m, ctrl, _ := newTestModel(t)
		send(t, m,
			mouse(tea.MouseActionPress, b, 2, 1),
			mouse(tea.MouseActionMotion, b, 20, 10),
		)
		if ctrl.Phase() != window.PhaseIdle {
			t.Fatalf("button %v started a gesture", b)
		}
		if g := ctrl.Geometry(); g.Left != 2 || g.Top != 1 {
			t.Fatalf("button %v moved the window: %v", b, g)
		}
	}
}

func TestUpdate_BlurEndsGesture(t *testing.T) {
	m, ctrl, release := newTestModel(t)

	m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 5, 1))
	send(t, m, tea.BlurMsg{})
	if ctrl.Phase() != window.PhaseIdle {
		t.Fatalf("phase = %v after blur, want idle", ctrl.Phase())
	}
	if release.Listeners() != 0 {
		t.Fatalf("listener leaked: %d", release.Listeners())
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, k := range keys {
		m, ctrl, release := newTestModel(t)
		m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 5, 1))

		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("key %q: expected quit command", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q: expected tea.QuitMsg", k.String())
		}
		if ctrl.Phase() != window.PhaseIdle || release.Listeners() != 0 {
			t.Fatalf("key %q: controller not closed cleanly", k.String())
		}
	}
}

func TestView_RendersWindowAndStatus(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 26 {
		t.Fatalf("expected 25 grid rows plus status, got %d lines", len(lines))
	}
	if !strings.Contains(out, "FoxBash Terminal") {
		t.Fatalf("title missing from view")
	}
	if !strings.Contains(lines[25], "idle") || !strings.Contains(lines[25], "40x15 at 2,1") {
		t.Fatalf("unexpected status line %q", lines[25])
	}

	m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 1))
	if !strings.Contains(m.View(), "dragging") {
		t.Fatalf("status line does not show dragging")
	}
}

func TestButtonOf(t *testing.T) {
	tests := []struct {
		in   tea.MouseButton
		want window.Button
		ok   bool
	}{
		{tea.MouseButtonLeft, window.ButtonPrimary, true},
		{tea.MouseButtonMiddle, window.ButtonMiddle, true},
		{tea.MouseButtonRight, window.ButtonSecondary, true},
		{tea.MouseButtonBackward, window.ButtonBack, true},
		{tea.MouseButtonForward, window.ButtonForward, true},
		{tea.MouseButtonWheelUp, 0, false},
		{tea.MouseButtonNone, 0, false},
	}
	for _, tt := range tests {
		got, ok := buttonOf(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("buttonOf(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
