// Package main is the entry point for the orrery viewer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/app"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &config.Flags{}

	root := &cobra.Command{
		Use:           "orrery",
		Short:         "animated solar system model",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags, os.Stdout)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runWindow(cfg)
		},
	}
	flags.Register(root.PersistentFlags())

	root.AddCommand(
		newTermCmd(flags),
		newFrameCmd(flags),
		newConfigCmd(flags),
	)
	return root
}

// setup loads configuration and initializes the logger. A nil console keeps
// logs off the terminal. Errors are printed here because the logger may not
// exist yet.
func setup(flags *config.Flags, console io.Writer) (*config.Config, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return nil, err
	}

	opts := logger.Options{Level: cfg.Logging.Level, Console: console}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return nil, err
	}

	logger.Info("=== Orrery ===")
	logger.Sugar.Debugf("Config: %+v", cfg)
	return cfg, nil
}

func runWindow(cfg *config.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return err
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return err
	}

	logger.Info("viewer closed normally")
	return nil
}
