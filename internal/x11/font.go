package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// fallbackFonts are tried after the configured font. Every X server ships
// "fixed".
var fallbackFonts = []string{"9x15", "8x13", "6x13", "fixed"}

// fontMetrics is the cell size of the open core font. It implements
// grid.CellMetrics and follows font reloads.
type fontMetrics struct {
	mu     sync.Mutex
	width  int
	height int
	ascent int
}

func (m *fontMetrics) CellSize() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *fontMetrics) baseline() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ascent
}

func (m *fontMetrics) set(width, height, ascent int) {
	m.mu.Lock()
	m.width, m.height, m.ascent = width, height, ascent
	m.mu.Unlock()
}

// openFont opens the first font in names the server knows.
func openFont(conn *xgb.Conn, names []string) (xproto.Font, string, error) {
	font, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, "", err
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check(); err == nil {
			return font, name, nil
		}
	}
	return 0, "", fmt.Errorf("none of the fonts %v could be opened", names)
}

// queryCell reads the character cell of a fixed-width font.
func queryCell(conn *xgb.Conn, font xproto.Font) (width, height, ascent int, err error) {
	reply, err := xproto.QueryFont(conn, xproto.Fontable(font)).Reply()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to query font: %w", err)
	}
	return cellFromReply(reply)
}

func cellFromReply(reply *xproto.QueryFontReply) (width, height, ascent int, err error) {
	width = int(reply.MaxBounds.CharacterWidth)
	ascent = int(reply.FontAscent)
	height = ascent + int(reply.FontDescent)
	if width < 1 || height < 1 {
		return 0, 0, 0, fmt.Errorf("font reports an empty cell (%dx%d)", width, height)
	}
	return width, height, ascent, nil
}

// fontCandidates puts the configured font first and drops duplicates.
func fontCandidates(preferred string) []string {
	names := []string{preferred}
	for _, n := range fallbackFonts {
		if n != preferred {
			names = append(names, n)
		}
	}
	return names
}
