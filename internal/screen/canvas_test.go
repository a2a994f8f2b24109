package screen

import (
	"strings"
	"testing"

	"github.com/1broseidon/foxbash/internal/window"
)

func snapshotAt(left, top, width, height int) window.Snapshot {
	return window.Snapshot{
		Phase:    window.PhaseIdle,
		Geometry: window.Descriptor{Left: left, Top: top, Width: width, Height: height},
	}
}

func TestCompose_DefaultWindow(t *testing.T) {
	c := Compose(80, 25, DefaultChrome(), snapshotAt(2, 1, 40, 15))

	if len(c.Cells) != 25 || len(c.Cells[0]) != 80 {
		t.Fatalf("canvas is %dx%d", len(c.Cells[0]), len(c.Cells))
	}
	if c.Active {
		t.Fatalf("idle snapshot should not be active")
	}

	lines := c.Lines()
	title := lines[1]
	if !strings.Contains(title, "FoxBash Terminal") {
		t.Fatalf("title row missing title: %q", title)
	}
	if got := c.Cells[1][3]; got.Rune != CloseGlyph || got.Role != RoleTitleButton {
		t.Fatalf("close button cell = %+v", got)
	}
	if got := c.Cells[1][40]; got.Rune != MaximizeGlyph {
		t.Fatalf("maximize button cell = %+v", got)
	}
	if !strings.Contains(lines[2], "Welcome to FoxBash") {
		t.Fatalf("content row missing banner: %q", lines[2])
	}
	if got := c.Cells[15][41]; got.Rune != HandleGlyph || got.Role != RoleHandle {
		t.Fatalf("handle cell = %+v", got)
	}
	if got := c.Cells[0][0]; got.Role != RoleDesktop {
		t.Fatalf("expected desktop at origin, got %+v", got)
	}
}

func TestCompose_ClipsOverflowingWindow(t *testing.T) {
	c := Compose(80, 25, DefaultChrome(), snapshotAt(60, 20, 40, 15))

	if got := c.Cells[20][59].Role; got != RoleDesktop {
		t.Fatalf("left of window = %v, want desktop", got)
	}
	if got := c.Cells[20][79].Role; got != RoleTitle {
		t.Fatalf("title bar at right edge = %v, want title", got)
	}
	if got := c.Cells[24][60]; got.Role != RoleFrame || got.Rune != '│' {
		t.Fatalf("last visible row = %+v, want left frame", got)
	}
	// Handle lies off screen, so nothing on the canvas carries that role.
	for _, row := range c.Cells {
		for _, cell := range row {
			if cell.Role == RoleHandle {
				t.Fatalf("handle drawn although it is off screen")
			}
		}
	}
}

func TestCompose_ActiveWhileDragging(t *testing.T) {
	snap := snapshotAt(2, 1, 40, 15)
	snap.Phase = window.PhaseDragging
	if c := Compose(80, 25, DefaultChrome(), snap); !c.Active {
		t.Fatalf("expected active canvas while dragging")
	}
}

func TestCompose_TruncatesLongTitleAndContent(t *testing.T) {
	chrome := Chrome{
		Title:   strings.Repeat("T", 50),
		Content: []string{strings.Repeat("c", 50)},
	}
	c := Compose(80, 25, chrome, snapshotAt(0, 0, 15, 5))

	if n := strings.Count(c.Lines()[0], "T"); n != 9 {
		t.Fatalf("expected title truncated to 9 cells, got %d", n)
	}
	row := c.Runs(1)
	for _, run := range row {
		if run.Role == RoleContent && len([]rune(run.Text)) > 13 {
			t.Fatalf("content run too long: %q", run.Text)
		}
	}
}

func TestRuns_CoverWholeRow(t *testing.T) {
	c := Compose(80, 25, DefaultChrome(), snapshotAt(2, 1, 40, 15))
	for y := 0; y < c.Rows; y++ {
		total := 0
		for _, run := range c.Runs(y) {
			if run.X != total {
				t.Fatalf("row %d: run starts at %d, expected %d", y, run.X, total)
			}
			total += len([]rune(run.Text))
		}
		if total != 80 {
			t.Fatalf("row %d: runs cover %d cells", y, total)
		}
	}
}

func TestASCII(t *testing.T) {
	for in, want := range map[rune]rune{CloseGlyph: '#', MaximizeGlyph: '=', HandleGlyph: '/', 'a': 'a', '│': '|', 'é': '?'} {
		if got := ASCII(in); got != want {
			t.Errorf("ASCII(%q) = %q, want %q", in, got, want)
		}
	}
}
