package main

import (
	"fmt"

	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "rollsphere"

// app carries state set up by the root command for its subcommands.
type app struct {
	cfgFile string
	file    *config.File
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "rollsim",
		Short:         "Headless rolling-sphere simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			f.Apply()
			a.file = f

			logger, err := observability.Install(f.Logger)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, toml or json)")

	root.AddCommand(newRunCmd(a), newTuningCmd(a))
	return root
}
