package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/screen"
	"github.com/1broseidon/foxbash/internal/window"
)

// Backend selects the frontend that draws the screen and feeds pointer events.
type Backend string

const (
	BackendTUI Backend = "tui" // Terminal, via bubbletea mouse reporting.
	BackendX11 Backend = "x11" // X11 window, real pixel coordinates.
)

// GridConfig is the character screen size.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// CellConfig is the pixel size of one character cell.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig is the initial geometry, size limits and decoration of the window.
type WindowConfig struct {
	X         int `yaml:"x"`
	Y         int `yaml:"y"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`

	// ContainOnResize caps resizes at the screen edge. By default the size
	// is clamped against min/max only and may run off the right or bottom.
	ContainOnResize bool `yaml:"contain_on_resize"`

	Title   string   `yaml:"title"`
	Content []string `yaml:"content"`
}

// ThemeConfig holds "#rrggbb" colors for the screen roles.
type ThemeConfig struct {
	Desktop       string `yaml:"desktop"`
	DesktopText   string `yaml:"desktop_text"`
	Window        string `yaml:"window"`
	WindowText    string `yaml:"window_text"`
	Title         string `yaml:"title"`
	TitleText     string `yaml:"title_text"`
	TitleActive   string `yaml:"title_active"`
	Handle        string `yaml:"handle"`
	DesktopActive string `yaml:"desktop_active"`
}

// Config is the effective foxbash configuration.
type Config struct {
	LogLevel     string       `yaml:"log_level"`
	Backend      Backend      `yaml:"backend"`
	Display      string       `yaml:"display"`
	XAuthority   string       `yaml:"xauthority"`
	Font         string       `yaml:"font"`
	CellFromFont bool         `yaml:"cell_from_font"`
	Grid         GridConfig   `yaml:"grid"`
	Cell         CellConfig   `yaml:"cell"`
	Window       WindowConfig `yaml:"window"`
	Theme        ThemeConfig  `yaml:"theme"`
}

// DefaultConfig returns the built-in configuration: the classic 80x25 blue
// screen with a 40x15 window at (2,1).
func DefaultConfig() *Config {
	chrome := screen.DefaultChrome()
	return &Config{
		LogLevel:     "info",
		Backend:      BackendTUI,
		Font:         "9x15",
		CellFromFont: true,
		Grid: GridConfig{
			Columns: grid.DefaultColumns,
			Rows:    grid.DefaultRows,
		},
		Cell: CellConfig{
			Width:  9,
			Height: 15,
		},
		Window: WindowConfig{
			X:         2,
			Y:         1,
			Width:     40,
			Height:    15,
			MinWidth:  grid.DefaultMinWidth,
			MinHeight: grid.DefaultMinHeight,
			MaxWidth:  grid.DefaultColumns,
			MaxHeight: grid.DefaultRows,
			Title:     chrome.Title,
			Content:   chrome.Content,
		},
		Theme: ThemeConfig{
			Desktop:       "#0000aa",
			DesktopText:   "#5555ff",
			DesktopActive: "#000080",
			Window:        "#aaaaaa",
			WindowText:    "#000000",
			Title:         "#00aaaa",
			TitleText:     "#ffffff",
			TitleActive:   "#55ffff",
			Handle:        "#555555",
		},
	}
}

// Bounds returns the grid and size limits.
func (c *Config) Bounds() grid.Bounds {
	return grid.Bounds{
		Columns:   c.Grid.Columns,
		Rows:      c.Grid.Rows,
		MinWidth:  c.Window.MinWidth,
		MaxWidth:  c.Window.MaxWidth,
		MinHeight: c.Window.MinHeight,
		MaxHeight: c.Window.MaxHeight,
	}
}

// ControllerOptions builds window controller options. The release source is
// left to the frontend.
func (c *Config) ControllerOptions() window.Options {
	return window.Options{
		Bounds:          c.Bounds(),
		Position:        grid.Position{X: c.Window.X, Y: c.Window.Y},
		Size:            grid.Size{Width: c.Window.Width, Height: c.Window.Height},
		ContainOnResize: c.Window.ContainOnResize,
	}
}

// Chrome returns the window decoration.
func (c *Config) Chrome() screen.Chrome {
	return screen.Chrome{
		Title:   c.Window.Title,
		Content: append([]string(nil), c.Window.Content...),
	}
}

// CellMetrics returns the configured cell size.
func (c *Config) CellMetrics() grid.FixedMetrics {
	return grid.FixedMetrics{Width: c.Cell.Width, Height: c.Cell.Height}
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	switch c.Backend {
	case BackendTUI, BackendX11:
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: tui, x11")}
	}
	if c.CellFromFont && strings.TrimSpace(c.Font) == "" {
		return &ValidationError{Path: "font", Err: fmt.Errorf("font is required when cell_from_font is set")}
	}

	if c.Grid.Columns < 1 {
		return &ValidationError{Path: "grid.columns", Err: fmt.Errorf("columns must be >= 1")}
	}
	if c.Grid.Rows < 1 {
		return &ValidationError{Path: "grid.rows", Err: fmt.Errorf("rows must be >= 1")}
	}
	// Cell size is a divisor on every pointer event.
	if c.Cell.Width < 1 {
		return &ValidationError{Path: "cell.width", Err: fmt.Errorf("width must be >= 1 pixel")}
	}
	if c.Cell.Height < 1 {
		return &ValidationError{Path: "cell.height", Err: fmt.Errorf("height must be >= 1 pixel")}
	}

	if err := c.validateWindow(); err != nil {
		return err
	}

	for _, tc := range c.themeColors() {
		if _, err := ParseColor(tc.value); err != nil {
			return &ValidationError{Path: tc.path, Err: err}
		}
	}
	return nil
}

func (c *Config) validateWindow() error {
	w := c.Window
	if w.MinWidth < 1 {
		return &ValidationError{Path: "window.min_width", Err: fmt.Errorf("min_width must be >= 1")}
	}
	if w.MinHeight < 1 {
		return &ValidationError{Path: "window.min_height", Err: fmt.Errorf("min_height must be >= 1")}
	}
	if w.MaxWidth < w.MinWidth {
		return &ValidationError{Path: "window.max_width", Err: fmt.Errorf("max_width %d is below min_width %d", w.MaxWidth, w.MinWidth)}
	}
	if w.MaxHeight < w.MinHeight {
		return &ValidationError{Path: "window.max_height", Err: fmt.Errorf("max_height %d is below min_height %d", w.MaxHeight, w.MinHeight)}
	}
	if w.MaxWidth > c.Grid.Columns {
		return &ValidationError{Path: "window.max_width", Err: fmt.Errorf("max_width %d exceeds grid.columns %d", w.MaxWidth, c.Grid.Columns)}
	}
	if w.MaxHeight > c.Grid.Rows {
		return &ValidationError{Path: "window.max_height", Err: fmt.Errorf("max_height %d exceeds grid.rows %d", w.MaxHeight, c.Grid.Rows)}
	}
	if w.Width < w.MinWidth || w.Width > w.MaxWidth {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be within [%d, %d]", w.MinWidth, w.MaxWidth)}
	}
	if w.Height < w.MinHeight || w.Height > w.MaxHeight {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be within [%d, %d]", w.MinHeight, w.MaxHeight)}
	}
	if w.X < 0 || w.X > c.Grid.Columns-w.Width {
		return &ValidationError{Path: "window.x", Err: fmt.Errorf("x must be within [0, %d]", c.Grid.Columns-w.Width)}
	}
	if w.Y < 0 || w.Y > c.Grid.Rows-w.Height {
		return &ValidationError{Path: "window.y", Err: fmt.Errorf("y must be within [0, %d]", c.Grid.Rows-w.Height)}
	}
	return nil
}

type themeColor struct {
	path  string
	value string
}

// themeColors lists the theme in file order so validation reports the first
// bad color.
func (c *Config) themeColors() []themeColor {
	t := c.Theme
	return []themeColor{
		{"theme.desktop", t.Desktop},
		{"theme.desktop_text", t.DesktopText},
		{"theme.window", t.Window},
		{"theme.window_text", t.WindowText},
		{"theme.title", t.Title},
		{"theme.title_text", t.TitleText},
		{"theme.title_active", t.TitleActive},
		{"theme.handle", t.Handle},
		{"theme.desktop_active", t.DesktopActive},
	}
}

// ParseColor parses "#rrggbb" into a 0xRRGGBB pixel value.
func ParseColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("color %q must be in #rrggbb form", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q must be in #rrggbb form", s)
	}
	return uint32(v), nil
}
