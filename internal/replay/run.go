package replay

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/foxbash/internal/grid"
	"github.com/1broseidon/foxbash/internal/window"
)

// Step is the controller state after one event.
type Step struct {
	Index    int               `yaml:"index"`
	Event    string            `yaml:"event"`
	Target   string            `yaml:"target,omitempty"`
	Consumed bool              `yaml:"consumed,omitempty"`
	Phase    string            `yaml:"phase"`
	Geometry window.Descriptor `yaml:"geometry"`
}

// Result is the trace of a replay.
type Result struct {
	Steps []Step            `yaml:"steps"`
	Phase string            `yaml:"phase"`
	Final window.Descriptor `yaml:"final"`
	// Listeners is the number of release listeners still attached after the
	// script; a completed gesture leaves none.
	Listeners int `yaml:"listeners"`
}

// Run replays s through a fresh controller built from opts. Releases go
// through an in-process release signal, as a terminal delivers them.
func Run(s *Script, metrics grid.FixedMetrics, opts window.Options) (*Result, error) {
	if metrics.Width < 1 || metrics.Height < 1 {
		return nil, fmt.Errorf("cell size must be positive, got %dx%d", metrics.Width, metrics.Height)
	}

	release := window.NewSignal()
	opts.Release = release
	ctrl := window.New(metrics, opts)

	res := &Result{}
	for i, ev := range s.Events {
		step := Step{Index: i}
		switch {
		case ev.Press != nil:
			button, _ := window.ParseButton(ev.Press.Button)
			target := ctrl.HitTest(ev.Press.X, ev.Press.Y)
			step.Event = fmt.Sprintf("press %s %d,%d", button, ev.Press.X, ev.Press.Y)
			step.Target = target.String()
			step.Consumed = ctrl.Press(button, target, ev.Press.X, ev.Press.Y)
		case ev.Move != nil:
			step.Event = fmt.Sprintf("move %d,%d", ev.Move.X, ev.Move.Y)
			ctrl.Move(ev.Move.X, ev.Move.Y)
		case ev.Release != nil:
			button, _ := window.ParseButton(ev.Release.Button)
			step.Event = fmt.Sprintf("release %s", button)
			if !release.Fire() {
				ctrl.Release()
			}
		}

		snap := ctrl.Snapshot()
		step.Phase = snap.Phase.String()
		step.Geometry = snap.Geometry
		res.Steps = append(res.Steps, step)
		log.Debug("replay step", "index", i, "event", step.Event, "phase", step.Phase, "geometry", step.Geometry)
	}

	snap := ctrl.Snapshot()
	res.Phase = snap.Phase.String()
	res.Final = snap.Geometry
	res.Listeners = release.Listeners()

	ctrl.Close()
	return res, nil
}
