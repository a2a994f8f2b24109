package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/screen"
	"github.com/1broseidon/foxbash/internal/window"
)

// model is the bubbletea model. Terminal mouse reports are already in cells,
// so the controller runs with unit metrics and the cell coordinates double as
// pixels.
type model struct {
	ctrl    *window.Controller
	release *window.Signal

	columns int
	rows    int
	chrome  screen.Chrome
	styles  styles
	keys    keymap

	width  int
	height int
}

func newModel(cfg *config.Config, ctrl *window.Controller, release *window.Signal) model {
	return model{
		ctrl:    ctrl,
		release: release,
		columns: cfg.Grid.Columns,
		rows:    cfg.Grid.Rows,
		chrome:  cfg.Chrome(),
		styles:  newStyles(cfg.Theme),
		keys:    newKeymap(),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.ctrl.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.reset):
			m.endGesture()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.BlurMsg:
		// The terminal stops reporting once it loses focus, so the release
		// would never arrive.
		m.endGesture()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := buttonOf(msg.Button)
		if !ok {
			return
		}
		if m.ctrl.PressAt(button, msg.X, msg.Y) {
			log.Debug("press consumed", "x", msg.X, "y", msg.Y)
		}
	case tea.MouseActionMotion:
		m.ctrl.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.endGesture()
	}
}

// endGesture fires the global release signal. With no listener attached the
// controller is released directly.
func (m model) endGesture() {
	if !m.release.Fire() {
		m.ctrl.Release()
	}
}

// buttonOf maps terminal buttons to controller buttons. Wheel events are not
// buttons and report false.
func buttonOf(b tea.MouseButton) (window.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return window.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return window.ButtonMiddle, true
	case tea.MouseButtonRight:
		return window.ButtonSecondary, true
	case tea.MouseButtonBackward:
		return window.ButtonBack, true
	case tea.MouseButtonForward:
		return window.ButtonForward, true
	default:
		return 0, false
	}
}

// View implements tea.Model.
func (m model) View() string {
	snap := m.ctrl.Snapshot()
	canvas := screen.Compose(m.columns, m.rows, m.chrome, snap)

	var sb strings.Builder
	for y := 0; y < canvas.Rows; y++ {
		for _, run := range canvas.Runs(y) {
			sb.WriteString(m.styles.role(run.Role, canvas.Active).Render(run.Text))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(m.styles.status.Render(statusLine(snap)))
	return sb.String()
}

func statusLine(snap window.Snapshot) string {
	return fmt.Sprintf(" %-8s %s  •  drag the title bar, resize from ◢  •  q quit", snap.Phase, snap.Geometry)
}
