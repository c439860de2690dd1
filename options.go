package vidanalyze

import "fmt"

// WithClient sets the remote analysis client. Required.
func WithClient(client AnalysisClient) Option {
	return func(a *Analyzer) error {
		a.client = client
		return nil
	}
}

// WithDurationResolver sets the collaborator used to discover a
// video's total duration. Without one, duration is always unknown and
// chunked analysis falls back to a single whole-video call.
func WithDurationResolver(r DurationResolver) Option {
	return func(a *Analyzer) error {
		a.resolver = r
		return nil
	}
}

// WithGenerationParams sets the sampling configuration for every
// request in the run.
func WithGenerationParams(params GenerationParams) Option {
	return func(a *Analyzer) error {
		a.params = params
		return nil
	}
}

// WithChunking enables or disables segmented analysis. Chunking only
// takes effect when the client supports segments and the video's
// duration is known and exceeds the segment length.
func WithChunking(enabled bool) Option {
	return func(a *Analyzer) error {
		a.chunking = enabled
		return nil
	}
}

// WithSegmentDuration sets the segment length in seconds for chunked
// analysis.
func WithSegmentDuration(seconds int) Option {
	return func(a *Analyzer) error {
		if seconds <= 0 {
			return fmt.Errorf("segment duration must be positive, got %d", seconds)
		}
		a.segmentSeconds = seconds
		return nil
	}
}

// WithMaxWorkers sets the worker pool size for chunked analysis.
func WithMaxWorkers(n int) Option {
	return func(a *Analyzer) error {
		if n < 1 {
			return fmt.Errorf("max workers must be at least 1, got %d", n)
		}
		a.maxWorkers = n
		return nil
	}
}

// WithStyledOutput enables terminal styling in rendered reports.
// Leave it off when stdout is not a terminal.
func WithStyledOutput(styled bool) Option {
	return func(a *Analyzer) error {
		a.styled = styled
		return nil
	}
}
