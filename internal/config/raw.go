package config

// RawGrid mirrors GridConfig with optional fields.
type RawGrid struct {
	Columns *int `yaml:"columns"`
	Rows    *int `yaml:"rows"`
}

type RawCell struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type RawWindow struct {
	X               *int     `yaml:"x"`
	Y               *int     `yaml:"y"`
	Width           *int     `yaml:"width"`
	Height          *int     `yaml:"height"`
	MinWidth        *int     `yaml:"min_width"`
	MinHeight       *int     `yaml:"min_height"`
	MaxWidth        *int     `yaml:"max_width"`
	MaxHeight       *int     `yaml:"max_height"`
	ContainOnResize *bool    `yaml:"contain_on_resize"`
	Title           *string  `yaml:"title"`
	Content         []string `yaml:"content"`
}

type RawTheme struct {
	Desktop       *string `yaml:"desktop"`
	DesktopText   *string `yaml:"desktop_text"`
	DesktopActive *string `yaml:"desktop_active"`
	Window        *string `yaml:"window"`
	WindowText    *string `yaml:"window_text"`
	Title         *string `yaml:"title"`
	TitleText     *string `yaml:"title_text"`
	TitleActive   *string `yaml:"title_active"`
	Handle        *string `yaml:"handle"`
}

// RawConfig is the file representation: every field is optional and unset
// fields keep their defaults.
type RawConfig struct {
	LogLevel     *string    `yaml:"log_level"`
	Backend      *Backend   `yaml:"backend"`
	Display      *string    `yaml:"display"`
	XAuthority   *string    `yaml:"xauthority"`
	Font         *string    `yaml:"font"`
	CellFromFont *bool      `yaml:"cell_from_font"`
	Grid         *RawGrid   `yaml:"grid"`
	Cell         *RawCell   `yaml:"cell"`
	Window       *RawWindow `yaml:"window"`
	Theme        *RawTheme  `yaml:"theme"`
}
