// Package metadata discovers a remote video's duration by probing an
// external metadata tool. Resolution is best-effort: every failure
// mode reports "unknown" rather than an error, and callers fall back
// to whole-video analysis.
package metadata

import (
	"context"
	"encoding/json"
	"log"
	"os/exec"
)

// DefaultBinary is the probe tool used when no path is configured.
const DefaultBinary = "yt-dlp"

// Runner abstracts command execution so tests can stub the probe.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// videoInfo is the subset of the probe's JSON document we read.
type videoInfo struct {
	Duration float64 `json:"duration"`
}

// YTDLP resolves video durations by shelling out to yt-dlp and
// parsing its JSON metadata dump.
type YTDLP struct {
	path   string
	runner Runner
}

// New creates a resolver using the yt-dlp binary at path (empty means
// DefaultBinary on $PATH). A nil runner execs the real tool.
func New(path string, runner Runner) *YTDLP {
	if path == "" {
		path = DefaultBinary
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &YTDLP{path: path, runner: runner}
}

// Resolve returns the video's total duration in whole seconds. Any
// failure (missing binary, non-zero exit, unparseable output, absent
// or non-positive duration) reports ok=false. One attempt, no caching.
func (y *YTDLP) Resolve(ctx context.Context, videoURL string) (seconds int, ok bool) {
	out, err := y.runner.Output(ctx, y.path, "--dump-json", "--skip-download", "--no-warnings", videoURL)
	if err != nil {
		log.Printf("metadata: probe failed for %s: %v", videoURL, err)
		return 0, false
	}

	var info videoInfo
	if err := json.Unmarshal(out, &info); err != nil {
		log.Printf("metadata: parse probe output: %v", err)
		return 0, false
	}
	if info.Duration <= 0 {
		return 0, false
	}
	return int(info.Duration), true
}
