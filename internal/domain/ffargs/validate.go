package ffargs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forPelevin/vidtweak/internal/types"
)

var (
	ErrUnsupportedInput = errors.New("not a video file")
	ErrInvalidOptions   = errors.New("invalid options")
)

// atempo only accepts factors in this range.
const (
	MinSpeed = 0.5
	MaxSpeed = 100.0
)

var acceptedExts = map[string]struct{}{
	"mp4": {},
	"mov": {},
}

// ValidateInput checks the input container extension against the allow-list.
func ValidateInput(path string) error {
	if path == "" {
		return fmt.Errorf("%w: input is empty", ErrUnsupportedInput)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := acceptedExts[ext]; !ok {
		return fmt.Errorf("%w: %q (want .mp4 or .mov)", ErrUnsupportedInput, path)
	}
	return nil
}

func ValidateOptions(opts types.Options) error {
	if !(opts.Speed >= MinSpeed && opts.Speed <= MaxSpeed) {
		return fmt.Errorf("%w: speed %v out of range [%v, %v]", ErrInvalidOptions, opts.Speed, MinSpeed, MaxSpeed)
	}
	for _, t := range []struct {
		name string
		v    *float64
	}{
		{"trim-start", opts.TrimStart},
		{"trim-to", opts.TrimTo},
		{"trim-end", opts.TrimEnd},
	} {
		if t.v != nil && *t.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidOptions, t.name, *t.v)
		}
	}
	if opts.TrimTo != nil && opts.TrimEnd != nil {
		return fmt.Errorf("%w: trim-to and trim-end cannot be combined", ErrInvalidOptions)
	}
	return nil
}
