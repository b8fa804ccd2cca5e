package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
	stdout  io.Writer
	stderr  io.Writer
	log     *zap.Logger
}

// ExitError is returned by Run when ffmpeg exits with a nonzero status.
type ExitError struct {
	Code   int
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("ffmpeg exited with status %d", e.Code)
	}
	return fmt.Sprintf("ffmpeg exited with status %d: %s", e.Code, msg)
}

func (e *ExitError) Unwrap() error { return e.Err }

type Option func(*Adapter)

// WithOutput overrides where the child's stdout and stderr are streamed.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *Adapter) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

func New(ffmpegPath, ffprobePath string, opts ...Option) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	a := &Adapter{
		ffmpeg:  ffmpegPath,
		ffprobe: ffprobePath,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run executes ffmpeg with args. Output is streamed as it is produced;
// stderr is also kept so a failure can be reported after the fact.
func (a *Adapter) Run(ctx context.Context, args []string) error {
	var errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	cmd.Stdout = a.stdout
	cmd.Stderr = io.MultiWriter(a.stderr, &errBuf)

	a.log.Debug("exec ffmpeg", zap.String("bin", a.ffmpeg), zap.Strings("args", args))
	start := time.Now()
	err := cmd.Run()
	a.log.Debug("ffmpeg finished", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode(), Stderr: errBuf.String(), Err: err}
	}
	return fmt.Errorf("ffmpeg run: %w", err)
}

func (a *Adapter) ProbeDuration(ctx context.Context, input string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		input,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	a.log.Debug("probed duration", zap.String("input", input), zap.Float64("seconds", sec))
	return time.Duration(sec * float64(time.Second)), nil
}
