package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/foxbash/internal/config"
)

func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown config subcommand: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Help()
			return usagef("config requires a subcommand")
		},
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(*configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config: ok")
			return nil
		},
	}

	var defaults bool
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if !defaults {
				res, err := loadConfig(*configPath)
				if err != nil {
					return err
				}
				cfg = res.Config
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	printCmd.Flags().BoolVar(&defaults, "defaults", false, "print built-in defaults (no files)")

	explain := &cobra.Command{
		Use:   "explain <yaml.path>",
		Short: "Explain where a config value comes from",
		Args:  exactArgs(1, "<yaml.path>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			value, src, err := config.Explain(res, args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(value)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "path: %s\n", args[0])
			fmt.Fprintf(w, "source: %s\n", formatSource(src))
			fmt.Fprintf(w, "value:\n%s", string(out))
			return nil
		},
	}

	cmd.AddCommand(validate, printCmd, explain)
	return cmd
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	case config.SourceDefault:
		if src.Name != "" {
			return "default:" + src.Name
		}
		return "default"
	default:
		return string(src.Kind)
	}
}
