package main

import (
	"fmt"

	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/systems"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTuningCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuning",
		Short: "Show or persist movement tuning",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective tuning as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(config.Actor.Tuning); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	save := &cobra.Command{
		Use:   "save",
		Short: "Save the effective tuning as the default profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := systems.InitPersistence(appName); err != nil {
				return fmt.Errorf("persistence: %w", err)
			}
			if err := systems.SaveTuning(config.Actor.Tuning); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "tuning saved")
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved tuning profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := systems.InitPersistence(appName); err != nil {
				return fmt.Errorf("persistence: %w", err)
			}
			if err := systems.ClearTuning(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "tuning reset")
			return nil
		},
	}

	cmd.AddCommand(show, save, reset)
	return cmd
}
