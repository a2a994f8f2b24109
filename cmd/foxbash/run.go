package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/1broseidon/foxbash/internal/config"
	"github.com/1broseidon/foxbash/internal/logging"
	"github.com/1broseidon/foxbash/internal/runtimepath"
	"github.com/1broseidon/foxbash/internal/tui"
	"github.com/1broseidon/foxbash/internal/x11"
)

var longRun = `
Open the foxbash window.

The tui backend draws into the current terminal and needs mouse reporting.
The x11 backend opens a window on $DISPLAY (or the configured display).

Keys:
  q, Esc     Quit
  Ctrl+C     Quit (tui)
  r          End a stuck gesture (tui)
  f          Switch to the next core font (x11, cell_from_font)
`

func newRunCmd(configPath *string) *cobra.Command {
	var (
		backend string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the foxbash window",
		Long:  longRun,
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			cfg := res.Config

			if backend != "" {
				switch config.Backend(backend) {
				case config.BackendTUI, config.BackendX11:
					cfg.Backend = config.Backend(backend)
				default:
					return usagef("--backend must be one of: tui, x11")
				}
			}

			out, closeLog, err := logSink(cfg.Backend, logFile)
			if err != nil {
				return err
			}
			defer closeLog()
			if err := logging.Setup(cfg.LogLevel, out); err != nil {
				return err
			}
			log.Info("starting", "backend", cfg.Backend, "config", res.File)

			switch cfg.Backend {
			case config.BackendX11:
				return x11.Run(cfg)
			default:
				return tui.Run(cfg)
			}
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "", "frontend to use: tui or x11 (default from config)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (tui default: ~/.local/state/foxbash/foxbash.log)")
	return cmd
}

// logSink picks where logs go. The terminal frontend owns the screen, so
// without --log-file it logs to the per-user state log instead of stderr.
func logSink(backend config.Backend, path string) (io.Writer, func(), error) {
	if path == "" && backend == config.BackendTUI {
		path = runtimepath.LogPath()
	}
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	return os.Stderr, func() {}, nil
}
