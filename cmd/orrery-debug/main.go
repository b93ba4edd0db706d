// Package main is the orrery debug viewer: the same scene, drawn behind an
// ImGui overlay with frame timing and draw counts.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/overlay"
)

func init() {
	// SDL and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &config.Flags{}

	root := &cobra.Command{
		Use:           "orrery-debug",
		Short:         "animated solar system model with a debug overlay",
		Long:          "Runs the viewer inside an ImGui window. F3 toggles the overlay, M toggles memory stats, Escape or Q quits.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
				return err
			}

			opts := logger.Options{Level: cfg.Logging.Level, Console: os.Stdout}
			if cfg.Logging.LogFile != "" {
				opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
			}
			if err := logger.InitWithOptions(opts); err != nil {
				fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
				return err
			}
			defer logger.Sync()

			logger.Info("=== Orrery debug viewer ===")

			v, err := overlay.New(cfg)
			if err != nil {
				logger.Error("failed to start debug viewer", zap.Error(err))
				return err
			}
			v.Run()
			return nil
		},
	}
	flags.Register(root.PersistentFlags())
	return root
}
