// Package screen composes the retro text screen: the desktop, the window
// frame and title bar, the content lines and the resize handle, as a grid of
// cells both frontends can paint.
package screen

import (
	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/window"
)

// Role tells a renderer how to paint a cell.
type Role int

const (
	RoleDesktop Role = iota
	RoleFrame
	RoleTitle
	RoleTitleButton
	RoleContent
	RoleHandle
)

func (r Role) String() string {
	switch r {
	case RoleDesktop:
		return "desktop"
	case RoleFrame:
		return "frame"
	case RoleTitle:
		return "title"
	case RoleTitleButton:
		return "title-button"
	case RoleContent:
		return "content"
	case RoleHandle:
		return "handle"
	default:
		return "unknown"
	}
}

const (
	CloseGlyph    = '■'
	MaximizeGlyph = '≡'
	HandleGlyph   = '◢'
	desktopGlyph  = '░'
)

// Cell is one character position on the screen.
type Cell struct {
	Rune rune
	Role Role
}

// Chrome is the static decoration of the window.
type Chrome struct {
	Title   string
	Content []string
}

// DefaultChrome returns the stock FoxBash banner.
func DefaultChrome() Chrome {
	return Chrome{
		Title: "FoxBash Terminal",
		Content: []string{
			"Welcome to FoxBash",
			"Type 'help' for commands",
			"Ready...",
		},
	}
}

// Canvas is a composed screen.
type Canvas struct {
	Columns int
	Rows    int
	Cells   [][]Cell

	// Active is set while a gesture is in progress.
	Active bool
}

// Compose draws the window described by snap onto a columns x rows desktop.
// Parts of the window that fall outside the screen are clipped.
func Compose(columns, rows int, chrome Chrome, snap window.Snapshot) *Canvas {
	c := &Canvas{
		Columns: columns,
		Rows:    rows,
		Cells:   make([][]Cell, rows),
		Active:  snap.Phase != window.PhaseIdle,
	}
	for y := range c.Cells {
		c.Cells[y] = make([]Cell, columns)
		for x := range c.Cells[y] {
			c.Cells[y][x] = Cell{Rune: desktopGlyph, Role: RoleDesktop}
		}
	}

	r := snap.Geometry.Rect()
	if r.Width < 1 || r.Height < 1 {
		return c
	}
	c.drawTitleBar(r, chrome.Title)
	c.drawBody(r, chrome.Content)
	return c
}

func (c *Canvas) set(x, y int, ch rune, role Role) {
	if y < 0 || y >= c.Rows || x < 0 || x >= c.Columns {
		return
	}
	c.Cells[y][x] = Cell{Rune: ch, Role: role}
}

func (c *Canvas) drawTitleBar(r grid.Rect, title string) {
	y := r.Y
	for x := r.X; x < r.Right(); x++ {
		c.set(x, y, ' ', RoleTitle)
	}
	c.set(r.X+1, y, CloseGlyph, RoleTitleButton)
	c.set(r.Right()-2, y, MaximizeGlyph, RoleTitleButton)

	// Title is centered between the two buttons.
	room := r.Width - 6
	if room < 1 {
		return
	}
	text := []rune(title)
	if len(text) > room {
		text = text[:room]
	}
	start := r.X + 3 + (room-len(text))/2
	for i, ch := range text {
		c.set(start+i, y, ch, RoleTitle)
	}
}

func (c *Canvas) drawBody(r grid.Rect, content []string) {
	last := r.Bottom() - 1
	for y := r.Y + 1; y <= last; y++ {
		for x := r.X; x < r.Right(); x++ {
			ch := ' '
			role := RoleContent
			switch {
			case y == last && x == r.X:
				ch, role = '└', RoleFrame
			case y == last:
				ch, role = '─', RoleFrame
			case x == r.X || x == r.Right()-1:
				ch, role = '│', RoleFrame
			}
			c.set(x, y, ch, role)
		}
	}

	inner := r.Width - 2
	for i, line := range content {
		y := r.Y + 1 + i
		if y >= last || inner < 1 {
			break
		}
		text := []rune(line)
		if len(text) > inner {
			text = text[:inner]
		}
		for j, ch := range text {
			c.set(r.X+1+j, y, ch, RoleContent)
		}
	}

	if r.Height > 1 {
		c.set(r.Right()-1, last, HandleGlyph, RoleHandle)
	}
}

// Lines returns the canvas as plain text, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.Rows)
	for y, row := range c.Cells {
		buf := make([]rune, len(row))
		for x, cell := range row {
			buf[x] = cell.Rune
		}
		lines[y] = string(buf)
	}
	return lines
}

// Runs splits a row into maximal spans of equal role.
func (c *Canvas) Runs(y int) []Run {
	row := c.Cells[y]
	var runs []Run
	for x := 0; x < len(row); {
		role := row[x].Role
		end := x
		for end < len(row) && row[end].Role == role {
			end++
		}
		text := make([]rune, 0, end-x)
		for _, cell := range row[x:end] {
			text = append(text, cell.Rune)
		}
		runs = append(runs, Run{X: x, Role: role, Text: string(text)})
		x = end
	}
	return runs
}

// Run is a horizontal span of cells sharing a role.
type Run struct {
	X    int
	Role Role
	Text string
}

// ASCII maps the glyphs used on the canvas to 7-bit stand-ins for renderers
// limited to Latin-1 core fonts.
func ASCII(r rune) rune {
	switch r {
	case CloseGlyph:
		return '#'
	case MaximizeGlyph:
		return '='
	case HandleGlyph:
		return '/'
	case desktopGlyph:
		return ' '
	case '─':
		return '-'
	case '│':
		return '|'
	case '└':
		return '+'
	}
	if r > 0x7e {
		return '?'
	}
	return r
}
