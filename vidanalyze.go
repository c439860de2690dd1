// Package vidanalyze analyzes remote video content by delegating the
// understanding work to Google's generative models. A video referenced
// by URL is either analyzed in a single whole-video call, or split
// into fixed-length time segments that are analyzed concurrently and
// reassembled into one ordered report.
package vidanalyze

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AnalysisClient is the capability surface the analyzer needs from a
// remote backend. Implementations convert remote errors into Failure
// outcomes; no call on this interface returns a Go error.
type AnalysisClient interface {
	// AnalyzeWhole issues one request covering the entire video.
	AnalyzeWhole(ctx context.Context, videoURL, prompt string, params GenerationParams) Outcome

	// AnalyzeSegment issues one request covering a single time window.
	// Backends without segment support return an immediate Failure
	// without touching the network.
	AnalyzeSegment(ctx context.Context, videoURL, prompt string, seg Segment, params GenerationParams) Outcome

	// SupportsSegments reports whether AnalyzeSegment can succeed on
	// this backend.
	SupportsSegments() bool

	// Capabilities describes the active backend profile for humans.
	Capabilities() string
}

// DurationResolver discovers a video's total duration from its URL.
// ok is false when the duration cannot be determined; resolution
// failures are never errors.
type DurationResolver interface {
	Resolve(ctx context.Context, videoURL string) (seconds int, ok bool)
}

// Analyzer orchestrates a single analysis run: duration resolution,
// segment planning, the concurrent per-segment calls, and report
// rendering. Construct one with New and the With* options.
type Analyzer struct {
	client         AnalysisClient
	resolver       DurationResolver // optional; nil means duration is always unknown
	params         GenerationParams
	chunking       bool
	segmentSeconds int
	maxWorkers     int
	styled         bool
	runID          string
}

// Option configures an Analyzer during New.
type Option func(*Analyzer) error

// New creates an Analyzer. An analysis client is required; everything
// else has defaults.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		params: GenerationParams{
			Temperature:     DefaultTemperature,
			MaxOutputTokens: DefaultMaxOutputTokens,
		},
		segmentSeconds: DefaultSegmentSeconds,
		maxWorkers:     DefaultMaxWorkers,
		runID:          uuid.NewString()[:8],
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.client == nil {
		return nil, fmt.Errorf("an analysis client is required (use WithClient)")
	}
	return a, nil
}
