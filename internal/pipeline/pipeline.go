package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/forPelevin/vidtweak/internal/domain/ffargs"
	"github.com/forPelevin/vidtweak/internal/ports"
	"github.com/forPelevin/vidtweak/internal/ports/adapters/ffmpeg"
	"github.com/forPelevin/vidtweak/internal/ports/adapters/osfs"
	"github.com/forPelevin/vidtweak/internal/types"
	"github.com/forPelevin/vidtweak/internal/usecase"
)

type Config struct {
	Options types.Options
	DryRun  bool

	FFmpegPath  string
	FFprobePath string

	// Stdout and Stderr default to the process streams. ffmpeg inherits them.
	Stdout io.Writer
	Stderr io.Writer
	Log    *zap.Logger
}

func (c Config) Validate() error {
	if c.Options.Input == "" {
		return errors.New("input is required")
	}
	if err := ffargs.ValidateInput(c.Options.Input); err != nil {
		return err
	}
	if err := ffargs.ValidateOptions(c.Options); err != nil {
		return err
	}
	// trim-end probes the input, so a dry run needs it too
	needsInput := !c.DryRun || (c.Options.TrimEnd != nil && *c.Options.TrimEnd != 0)
	if needsInput {
		if _, err := os.Stat(c.Options.Input); err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
	}
	return nil
}

func Run(ctx context.Context, cfg Config) (usecase.Result, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	// adapters
	v := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath,
		ffmpeg.WithOutput(stdout, stderr),
		ffmpeg.WithLogger(log.Named("ffmpeg")),
	)
	fs := osfs.New()

	uc := usecase.New(usecase.Deps{
		Video: v,
		FS:    fs,
		Out:   stdout,
		Log:   log,
	})

	log.Debug("starting", zap.String("input", cfg.Options.Input), zap.Bool("dry_run", cfg.DryRun))
	return uc.Run(ctx, usecase.Input{Options: cfg.Options, DryRun: cfg.DryRun})
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.FileSystem = osfs.FS{}
