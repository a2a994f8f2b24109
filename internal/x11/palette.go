package x11

import (
	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/screen"
)

// colors is a foreground/background pixel pair. Pixels are 0xRRGGBB, which
// is what TrueColor visuals at depth 24 expect.
type colors struct {
	fg uint32
	bg uint32
}

type palette struct {
	idle   map[screen.Role]colors
	active map[screen.Role]colors
}

func newPalette(theme config.ThemeConfig) (palette, error) {
	var firstErr error
	px := func(s string) uint32 {
		v, err := config.ParseColor(s)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}

	idle := map[screen.Role]colors{
		screen.RoleDesktop:     {px(theme.DesktopText), px(theme.Desktop)},
		screen.RoleFrame:       {px(theme.WindowText), px(theme.Window)},
		screen.RoleTitle:       {px(theme.TitleText), px(theme.Title)},
		screen.RoleTitleButton: {px(theme.TitleText), px(theme.Title)},
		screen.RoleContent:     {px(theme.WindowText), px(theme.Window)},
		screen.RoleHandle:      {px(theme.Handle), px(theme.Window)},
	}
	active := make(map[screen.Role]colors, len(idle))
	for role, c := range idle {
		active[role] = c
	}
	active[screen.RoleDesktop] = colors{px(theme.DesktopText), px(theme.DesktopActive)}
	active[screen.RoleTitle] = colors{px(theme.WindowText), px(theme.TitleActive)}
	active[screen.RoleTitleButton] = colors{px(theme.WindowText), px(theme.TitleActive)}

	if firstErr != nil {
		return palette{}, firstErr
	}
	return palette{idle: idle, active: active}, nil
}

func (p palette) colors(r screen.Role, active bool) colors {
	if active {
		return p.active[r]
	}
	return p.idle[r]
}
