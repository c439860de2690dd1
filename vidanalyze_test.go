package vidanalyze

import (
	"context"
	"strings"
	"testing"
)

// stubResolver reports a fixed duration lookup result.
type stubResolver struct {
	seconds int
	ok      bool
}

func (r stubResolver) Resolve(ctx context.Context, videoURL string) (int, bool) {
	return r.seconds, r.ok
}

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(); err == nil {
		t.Error("New() without a client should fail")
	}
}

// TestRunChunkedEndToEnd covers the full segmented path: a 400 second
// video with 180 second segments plans three windows, runs them on a
// pool of two workers, and renders three ordered blocks.
func TestRunChunkedEndToEnd(t *testing.T) {
	client := &stubClient{segments: true}
	a, err := New(
		WithClient(client),
		WithDurationResolver(stubResolver{seconds: 400, ok: true}),
		WithChunking(true),
		WithSegmentDuration(180),
		WithMaxWorkers(2),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := a.Run(context.Background(), "https://example.com/v", "describe the scene")

	if calls := client.segmentCalls.Load(); calls != 3 {
		t.Errorf("made %d segment calls, want 3", calls)
	}
	if calls := client.wholeCalls.Load(); calls != 0 {
		t.Errorf("made %d whole-video calls, want 0", calls)
	}

	p1 := strings.Index(report, "Segment 1: 00:00 - 03:00")
	p2 := strings.Index(report, "Segment 2: 03:00 - 06:00")
	p3 := strings.Index(report, "Segment 3: 06:00 - 06:40")
	if p1 < 0 || p2 < 0 || p3 < 0 {
		t.Fatalf("missing segment headers in report:\n%s", report)
	}
	if !(p1 < p2 && p2 < p3) {
		t.Errorf("segment blocks out of order in report:\n%s", report)
	}
	if strings.Contains(report, "Error:") {
		t.Errorf("unexpected failure in all-success run:\n%s", report)
	}
}

// TestRunFallsBackToWholeVideo covers every condition under which a
// run must degrade to a single unsegmented call.
func TestRunFallsBackToWholeVideo(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
		opts   []Option
	}{
		{
			name:   "ChunkingDisabled",
			client: &stubClient{segments: true},
			opts: []Option{
				WithDurationResolver(stubResolver{seconds: 400, ok: true}),
			},
		},
		{
			name:   "BackendWithoutSegmentSupport",
			client: &stubClient{segments: false},
			opts: []Option{
				WithDurationResolver(stubResolver{seconds: 400, ok: true}),
				WithChunking(true),
			},
		},
		{
			name:   "UnknownDuration",
			client: &stubClient{segments: true},
			opts: []Option{
				WithDurationResolver(stubResolver{ok: false}),
				WithChunking(true),
			},
		},
		{
			name:   "NoResolver",
			client: &stubClient{segments: true},
			opts:   []Option{WithChunking(true)},
		},
		{
			name:   "VideoShorterThanSegment",
			client: &stubClient{segments: true},
			opts: []Option{
				WithDurationResolver(stubResolver{seconds: 120, ok: true}),
				WithChunking(true),
				WithSegmentDuration(180),
			},
		},
		{
			name:   "ZeroDuration",
			client: &stubClient{segments: true},
			opts: []Option{
				WithDurationResolver(stubResolver{seconds: 0, ok: true}),
				WithChunking(true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(append([]Option{WithClient(tt.client)}, tt.opts...)...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			report := a.Run(context.Background(), "https://example.com/v", "describe")

			if calls := tt.client.wholeCalls.Load(); calls != 1 {
				t.Errorf("made %d whole-video calls, want 1", calls)
			}
			if calls := tt.client.segmentCalls.Load(); calls != 0 {
				t.Errorf("made %d segment calls, want 0", calls)
			}
			if !strings.Contains(report, "whole-video analysis") {
				t.Errorf("report missing whole-video outcome:\n%s", report)
			}
		})
	}
}

// A failed whole-video call still produces a completed report with the
// failure labeled, not an error.
func TestRunWholeVideoFailureSurfacesInReport(t *testing.T) {
	client := &failingWholeClient{}
	a, err := New(WithClient(client))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report := a.Run(context.Background(), "https://example.com/v", "describe")
	if !strings.Contains(report, "Error: backend unavailable") {
		t.Errorf("failure not surfaced in report:\n%s", report)
	}
}

type failingWholeClient struct{ stubClient }

func (c *failingWholeClient) AnalyzeWhole(ctx context.Context, videoURL, prompt string, params GenerationParams) Outcome {
	return FailureOutcome("backend unavailable")
}
