package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forPelevin/vidtweak/internal/ports/adapters/ffmpeg"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		reportError(root, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vidtweak --input <file>",
		Short:        "Streamline video editing on the command line",
		Long:         "Change speed, shift pitch, trim, or mute an .mp4/.mov file with ffmpeg.\nThe video stream is copied; only audio and container timing change.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	root.SilenceErrors = true

	f := root.Flags()
	f.StringP("input", "i", "", "Path to video file (.mp4 or .mov)")
	f.StringP("output", "o", "", "Output file (default Output.<input extension>)")
	f.Float64P("speed", "s", 1.0, "Speed multiplier")
	f.BoolP("mute", "m", false, "Drop the audio track")
	f.Float64("trim-start", 0, "Trim x seconds from the start")
	f.Float64("trim-to", 0, "Keep only the first x seconds")
	f.Float64("trim-end", 0, "Trim x seconds from the end (probes the input duration)")
	f.Float64("pitch-up", 0, "Pitch up adjustment in semitones")
	f.Float64("pitch-down", 0, "Pitch down adjustment in semitones")
	f.Bool("dry-run", false, "Print the ffmpeg command without running it")
	f.String("ffmpeg", getenvDefault("FFMPEG_PATH", "ffmpeg"), "ffmpeg binary")
	f.String("ffprobe", getenvDefault("FFPROBE_PATH", "ffprobe"), "ffprobe binary")
	_ = root.MarkFlagRequired("input")

	return root
}

func reportError(cmd *cobra.Command, err error) {
	var exitErr *ffmpeg.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error executing FFmpeg command: %s\n", exitErr.Stderr)
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
