// Package tui runs the foxbash window inside a terminal using bubbletea mouse
// reporting.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/window"
)

// Run starts the terminal frontend and blocks until the user quits.
func Run(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	release := window.NewSignal()
	opts := cfg.ControllerOptions()
	opts.Release = release
	ctrl := window.New(grid.UnitMetrics{}, opts)
	defer ctrl.Close()

	ctrl.OnChange = func(s window.Snapshot) {
		log.Debug("window changed", "phase", s.Phase, "geometry", s.Geometry)
	}

	p := tea.NewProgram(newModel(cfg, ctrl, release),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	return nil
}
