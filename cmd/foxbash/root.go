package main

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/foxbash/internal/config"
)

var longRoot = `
foxbash draws a retro DOS-style terminal window on an 80x25 character
screen. Drag it by the title bar, resize it from the bottom-right handle.

Examples:
  # Run in the current terminal
  foxbash run

  # Open an X11 window instead
  foxbash run --backend x11

  # Replay a recorded gesture without a display
  foxbash replay drag.yaml
`

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "foxbash",
		Short:         "A draggable, resizable retro terminal window",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.PersistentFlags().StringVar(&configPath, "path", "", "config file path (default: ~/.config/foxbash/config.yaml)")

	root.AddCommand(
		newRunCmd(&configPath),
		newReplayCmd(&configPath),
		newConfigCmd(&configPath),
	)
	return root
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("%s requires %s", cmd.CommandPath(), what)
		}
		return nil
	}
}
