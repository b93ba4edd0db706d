package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
	termview "github.com/Faultbox/orrery/internal/term"
)

func newTermCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "watch the animation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the preview, so logs only go to a file.
			cfg, err := setup(flags, nil)
			if err != nil {
				return err
			}
			defer logger.Sync()

			sc, err := scene.FromConfig(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Scene error: %v\n", err)
				return err
			}

			// The real size arrives with the first window size message.
			return termview.Run(sc, 100, 30)
		},
	}
}

func newFrameCmd(flags *config.Flags) *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "print the draw calls of one frame as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags, os.Stderr)
			if err != nil {
				return err
			}
			defer logger.Sync()

			sc, err := scene.FromConfig(cfg)
			if err != nil {
				logger.Error("failed to build scene", zap.Error(err))
				return err
			}
			return writeFrame(cmd, sc, ticks)
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 0, "advance the animation this many ticks first")
	return cmd
}

// frameDump is the YAML shape of a recorded frame.
type frameDump struct {
	Angle float32          `yaml:"angle"`
	Ticks uint64           `yaml:"ticks"`
	Calls []scene.DrawCall `yaml:"calls"`
}

func writeFrame(cmd *cobra.Command, sc *scene.Scene, ticks int) error {
	for i := 0; i < ticks; i++ {
		sc.Tick()
	}

	rec := &scene.Recorder{}
	sc.Render(rec)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(frameDump{
		Angle: sc.Angle(),
		Ticks: sc.Animation().Ticks(),
		Calls: rec.Calls,
	}); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return enc.Close()
}

func newConfigCmd(flags *config.Flags) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			if save != "" {
				if err := cfg.SaveTo(save); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", save)
				return nil
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the configuration to this path instead")
	return cmd
}
