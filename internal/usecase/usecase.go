package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/forPelevin/vidtweak/internal/domain/ffargs"
	"github.com/forPelevin/vidtweak/internal/domain/outpath"
	"github.com/forPelevin/vidtweak/internal/ports"
	"github.com/forPelevin/vidtweak/internal/types"
)

const processingMsg = "Processing video..."

type Deps struct {
	Video ports.VideoTool
	FS    ports.FileSystem
	// Out receives user-facing notices. Nil discards them.
	Out io.Writer
	Log *zap.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return Usecase{d: d}
}

type Input struct {
	Options types.Options
	DryRun  bool
}

type Result struct {
	Args   []string
	Output outpath.Result
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	opts := in.Options
	if err := ffargs.ValidateInput(opts.Input); err != nil {
		return Result{}, err
	}
	if err := ffargs.ValidateOptions(opts); err != nil {
		return Result{}, err
	}

	if opts.TrimEnd != nil && *opts.TrimEnd != 0 {
		to, err := u.trimEndToDuration(ctx, opts)
		if err != nil {
			return Result{}, err
		}
		opts.TrimTo = &to
	}

	args := ffargs.Build(opts)

	out, err := outpath.Resolve(outpath.Default(opts.Input, opts.Output), u.d.FS.Exists)
	if err != nil {
		return Result{}, fmt.Errorf("resolve output: %w", err)
	}
	if out.Renamed {
		fmt.Fprintf(u.d.Out, "%q already exists, writing to %s\n", out.Requested, out.Path)
	}
	args = ffargs.Finish(args, out.Path)
	u.d.Log.Info("resolved command",
		zap.Strings("args", args),
		zap.String("output", out.Path),
		zap.Bool("renamed", out.Renamed),
	)

	res := Result{Args: args, Output: out}
	if in.DryRun {
		fmt.Fprintln(u.d.Out, "ffmpeg "+strings.Join(args, " "))
		return res, nil
	}

	fmt.Fprint(u.d.Out, processingMsg)
	err = u.d.Video.Run(ctx, args)
	fmt.Fprint(u.d.Out, "\r"+strings.Repeat(" ", len(processingMsg))+"\r")
	if err != nil {
		return res, err
	}

	fmt.Fprintf(u.d.Out, "%q has been written\n", out.Path)
	return res, nil
}

// trimEndToDuration converts "drop the last N seconds" into the output
// duration passed to -t. The output starts at trim-start when set.
func (u Usecase) trimEndToDuration(ctx context.Context, opts types.Options) (float64, error) {
	total, err := u.d.Video.ProbeDuration(ctx, opts.Input)
	if err != nil {
		return 0, fmt.Errorf("trim-end: %w", err)
	}
	start := 0.0
	if opts.TrimStart != nil {
		start = *opts.TrimStart
	}
	d := total.Seconds() - start - *opts.TrimEnd
	if d <= 0 {
		return 0, fmt.Errorf("%w: trim-end %v leaves nothing of a %.3fs input", ffargs.ErrInvalidOptions, *opts.TrimEnd, total.Seconds())
	}
	u.d.Log.Debug("trim-end resolved", zap.Float64("duration", d), zap.Duration("input", total))
	return d, nil
}
