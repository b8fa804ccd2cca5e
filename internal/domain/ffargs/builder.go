package ffargs

import (
	"math"
	"strconv"

	"github.com/forPelevin/vidtweak/internal/types"
)

// Build maps opts onto an ffmpeg argument list. The output codec flags and
// output path are not included; see Finish.
//
// Order: base args, speed, pitch up, pitch down, trim-to, mute. Trim-start
// is inserted ahead of the input so ffmpeg seeks before decoding.
func Build(opts types.Options) []string {
	args := []string{
		"-i", opts.Input,
		"-loglevel", "error",
	}

	if opts.Speed != 1 {
		args = append(args,
			"-vf", "setpts="+fmtFloat(1/opts.Speed)+"*PTS",
			"-af", "atempo="+fmtFloat(opts.Speed),
		)
	}
	if opts.PitchUp != nil {
		args = append(args, "-af", rubberband(*opts.PitchUp))
	}
	if opts.PitchDown != nil {
		args = append(args, "-af", rubberband(-*opts.PitchDown))
	}
	if isSet(opts.TrimTo) {
		args = append(args, "-t", fmtFloat(*opts.TrimTo))
	}
	if isSet(opts.TrimStart) {
		args = append([]string{"-ss", fmtFloat(*opts.TrimStart)}, args...)
	}
	if opts.Mute {
		args = append(args, "-an")
	}
	return args
}

// Finish appends the stream-copy video codec and the output path. The video
// stream is never re-encoded.
func Finish(args []string, output string) []string {
	return append(args, "-c:v", "copy", output)
}

// PitchRatio converts a semitone offset to a frequency ratio.
func PitchRatio(semitones float64) float64 {
	return math.Pow(2, semitones/12)
}

func rubberband(semitones float64) string {
	return "rubberband=pitch=" + fmtFloat(PitchRatio(semitones))
}

// isSet reports whether a trim value should produce a flag; 0 seconds is a
// no-op for both -ss and -t.
func isSet(v *float64) bool {
	return v != nil && *v != 0
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
