package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/screen"
)

// styles maps each canvas role to a lipgloss style. The active set is used
// while a gesture is running.
type styles struct {
	idle   map[screen.Role]lipgloss.Style
	active map[screen.Role]lipgloss.Style
	status lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	cell := func(fg, bg string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
	}

	idle := map[screen.Role]lipgloss.Style{
		screen.RoleDesktop:     cell(theme.DesktopText, theme.Desktop),
		screen.RoleFrame:       cell(theme.WindowText, theme.Window),
		screen.RoleTitle:       cell(theme.TitleText, theme.Title).Bold(true),
		screen.RoleTitleButton: cell(theme.TitleText, theme.Title),
		screen.RoleContent:     cell(theme.WindowText, theme.Window),
		screen.RoleHandle:      cell(theme.Handle, theme.Window),
	}

	active := make(map[screen.Role]lipgloss.Style, len(idle))
	for role, st := range idle {
		active[role] = st
	}
	active[screen.RoleDesktop] = cell(theme.DesktopText, theme.DesktopActive)
	active[screen.RoleTitle] = cell(theme.WindowText, theme.TitleActive).Bold(true)
	active[screen.RoleTitleButton] = cell(theme.WindowText, theme.TitleActive)

	return styles{
		idle:   idle,
		active: active,
		status: lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) role(r screen.Role, active bool) lipgloss.Style {
	if active {
		return s.active[r]
	}
	return s.idle[r]
}
