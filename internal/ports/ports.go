package ports

import (
	"context"
	"time"
)

type VideoTool interface {
	// Run executes the media tool with args, streaming its output to the
	// terminal. It blocks until the tool exits.
	Run(ctx context.Context, args []string) error
	ProbeDuration(ctx context.Context, input string) (time.Duration, error)
}

type FileSystem interface {
	Exists(path string) (bool, error)
}
