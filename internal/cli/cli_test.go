package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forPelevin/vidtweak/internal/ports/adapters/ffmpeg"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_DryRunBuildsCommand(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "speed",
			args: []string{"-i", "clip.mp4", "--speed", "2", "--dry-run"},
			want: "ffmpeg -i clip.mp4 -loglevel error -vf setpts=0.5*PTS -af atempo=2 -c:v copy Output.mp4",
		},
		{
			name: "mute and trim-to",
			args: []string{"--input", "a.mov", "--mute", "--trim-to", "5", "--dry-run"},
			want: "ffmpeg -i a.mov -loglevel error -t 5 -an -c:v copy Output.mov",
		},
		{
			name: "trim-start",
			args: []string{"-i", "a.mov", "--trim-start", "2.5", "-o", "cut.mov", "--dry-run"},
			want: "ffmpeg -ss 2.5 -i a.mov -loglevel error -c:v copy cut.mov",
		},
		{
			name: "trailing dot output takes input extension",
			args: []string{"-i", "a.mov", "-o", "Output.", "--mute", "--dry-run"},
			want: "ffmpeg -i a.mov -loglevel error -an -c:v copy Output.mov",
		},
		{
			name: "explicit pitch applies",
			args: []string{"-i", "a.mov", "--pitch-up", "12", "--dry-run"},
			want: "ffmpeg -i a.mov -loglevel error -af rubberband=pitch=2 -c:v copy Output.mov",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got := strings.TrimSpace(stdout); got != tt.want {
				t.Fatalf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoot_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "missing input", args: []string{"--dry-run"}, wantMsg: `required flag(s) "input" not set`},
		{name: "unsupported extension", args: []string{"-i", "notes.txt", "--speed", "2", "--dry-run"}, wantMsg: "not a video file"},
		{name: "zero speed", args: []string{"-i", "a.mp4", "--speed", "0", "--dry-run"}, wantMsg: "speed 0 out of range"},
		{name: "bad speed", args: []string{"-i", "a.mp4", "--speed", "nope"}, wantMsg: `invalid argument "nope"`},
		{name: "positional arg", args: []string{"-i", "a.mp4", "extra"}, wantMsg: "unknown command"},
		{name: "trim-to with trim-end", args: []string{"-i", "a.mp4", "--trim-to", "3", "--trim-end", "1", "--dry-run"}, wantMsg: "cannot be combined"},
		{name: "input must exist", args: []string{"-i", "gone.mp4"}, wantMsg: "config: stat input:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestRoot_FFmpegFailure(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	if err := os.WriteFile("clip.mp4", []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fake := filepath.Join(tmp, "fake-ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\necho 'clip.mp4: Invalid data found' >&2\nexit 1\n"), 0o755); err != nil {
		t.Fatalf("write fake ffmpeg: %v", err)
	}

	_, _, err := execute(t, "-i", "clip.mp4", "--ffmpeg", fake)
	var exitErr *ffmpeg.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ffmpeg.ExitError, got %v", err)
	}

	var report bytes.Buffer
	root := newRootCmd()
	root.SetErr(&report)
	reportError(root, err)
	if !strings.HasPrefix(report.String(), "Error executing FFmpeg command: clip.mp4: Invalid data found") {
		t.Fatalf("unexpected report: %q", report.String())
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
