package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/foxbash/internal/logging"
	"github.com/1broseidon/foxbash/internal/replay"
)

var longReplay = `
Replay a YAML gesture script through the window controller and print the
resulting trace. Coordinates are pixels; the cell size comes from the script
or, when omitted, from the config.

Example script:
  cell: {width: 8, height: 16}
  events:
    - press: {button: primary, x: 19, y: 21}
    - move: {x: 83, y: 85}
    - release: {}
`

func newReplayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "replay SCRIPT.yaml",
		Short: "Replay a gesture script headlessly",
		Long:  longReplay,
		Args:  exactArgs(1, "a script path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := logging.Setup(res.Config.LogLevel, cmd.ErrOrStderr()); err != nil {
				return err
			}

			script, err := replay.Load(args[0])
			if err != nil {
				return err
			}
			result, err := replay.Run(script, script.Metrics(res.Config.CellMetrics()), res.Config.ControllerOptions())
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(result)
			if err != nil {
				return fmt.Errorf("failed to encode trace: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
