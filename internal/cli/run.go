package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/forPelevin/vidtweak/internal/logging"
	"github.com/forPelevin/vidtweak/internal/pipeline"
	"github.com/forPelevin/vidtweak/internal/types"
)

func run(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	input, _ := f.GetString("input")
	output, _ := f.GetString("output")
	speed, _ := f.GetFloat64("speed")
	mute, _ := f.GetBool("mute")
	dryRun, _ := f.GetBool("dry-run")
	ffmpegPath, _ := f.GetString("ffmpeg")
	ffprobePath, _ := f.GetString("ffprobe")

	log, closer, err := logging.New(logging.Config{
		Level:   os.Getenv("VIDTWEAK_LOG_LEVEL"),
		File:    os.Getenv("VIDTWEAK_LOG_FILE"),
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer closer.Close()
	defer func() { _ = log.Sync() }()

	cfg := pipeline.Config{
		Options: types.Options{
			Input:     input,
			Output:    output,
			Speed:     speed,
			Mute:      mute,
			TrimStart: optionalFloat(f, "trim-start"),
			TrimTo:    optionalFloat(f, "trim-to"),
			TrimEnd:   optionalFloat(f, "trim-end"),
			PitchUp:   optionalFloat(f, "pitch-up"),
			PitchDown: optionalFloat(f, "pitch-down"),
		},
		DryRun:      dryRun,
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
		Log:         log,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		log.Debug("run failed", zap.Error(err))
		return err
	}
	log.Info("done", zap.String("output", res.Output.Path))
	return nil
}

// optionalFloat returns nil unless the flag was given on the command line.
func optionalFloat(f *pflag.FlagSet, name string) *float64 {
	if !f.Changed(name) {
		return nil
	}
	v, err := f.GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
