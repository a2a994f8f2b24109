package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw over the defaults.
//
// window.max_width and window.max_height follow grid.columns and grid.rows
// unless set explicitly, so enlarging the grid enlarges the window limit too.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	setString(&cfg.LogLevel, raw.LogLevel)
	if raw.Backend != nil {
		cfg.Backend = *raw.Backend
	}
	setString(&cfg.Display, raw.Display)
	setString(&cfg.XAuthority, raw.XAuthority)
	setString(&cfg.Font, raw.Font)
	setBool(&cfg.CellFromFont, raw.CellFromFont)

	if raw.Grid != nil {
		setInt(&cfg.Grid.Columns, raw.Grid.Columns)
		setInt(&cfg.Grid.Rows, raw.Grid.Rows)
	}
	if raw.Cell != nil {
		setInt(&cfg.Cell.Width, raw.Cell.Width)
		setInt(&cfg.Cell.Height, raw.Cell.Height)
	}

	cfg.Window.MaxWidth = cfg.Grid.Columns
	cfg.Window.MaxHeight = cfg.Grid.Rows
	if w := raw.Window; w != nil {
		setInt(&cfg.Window.X, w.X)
		setInt(&cfg.Window.Y, w.Y)
		setInt(&cfg.Window.Width, w.Width)
		setInt(&cfg.Window.Height, w.Height)
		setInt(&cfg.Window.MinWidth, w.MinWidth)
		setInt(&cfg.Window.MinHeight, w.MinHeight)
		setInt(&cfg.Window.MaxWidth, w.MaxWidth)
		setInt(&cfg.Window.MaxHeight, w.MaxHeight)
		setBool(&cfg.Window.ContainOnResize, w.ContainOnResize)
		setString(&cfg.Window.Title, w.Title)
		if w.Content != nil {
			cfg.Window.Content = append([]string(nil), w.Content...)
		}
	}

	if t := raw.Theme; t != nil {
		setString(&cfg.Theme.Desktop, t.Desktop)
		setString(&cfg.Theme.DesktopText, t.DesktopText)
		setString(&cfg.Theme.DesktopActive, t.DesktopActive)
		setString(&cfg.Theme.Window, t.Window)
		setString(&cfg.Theme.WindowText, t.WindowText)
		setString(&cfg.Theme.Title, t.Title)
		setString(&cfg.Theme.TitleText, t.TitleText)
		setString(&cfg.Theme.TitleActive, t.TitleActive)
		setString(&cfg.Theme.Handle, t.Handle)
	}

	return cfg
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
