package vidanalyze

import (
	"context"
	"log"
)

// Run analyzes videoURL according to the configured mode and returns
// the rendered report. Chunked analysis is only attempted when it was
// requested, the backend supports segments, and the video's duration
// is known and exceeds the segment length; every other case falls back
// to a single whole-video call. Remote failures surface inside the
// report, never as errors.
func (a *Analyzer) Run(ctx context.Context, videoURL, prompt string) string {
	log.Printf("[%s] analyzing %s", a.runID, videoURL)

	reporter := Reporter{Styled: a.styled}

	duration, known := 0, false
	if a.resolver != nil {
		duration, known = a.resolver.Resolve(ctx, videoURL)
		if known {
			log.Printf("[%s] video duration: %s (%d seconds)", a.runID, formatClock(float64(duration)), duration)
		}
	}

	if a.chunking {
		switch {
		case !a.client.SupportsSegments():
			log.Printf("[%s] chunking not supported by %s; processing full video", a.runID, a.client.Capabilities())
		case !known:
			log.Printf("[%s] could not detect video duration; processing full video", a.runID)
		case duration <= a.segmentSeconds:
			log.Printf("[%s] video too short for chunking (%ds); processing full video", a.runID, duration)
		default:
			segments := PlanSegments(duration, a.segmentSeconds)
			log.Printf("[%s] chunking enabled: %d segments of %ds each, %d workers",
				a.runID, len(segments), a.segmentSeconds, a.maxWorkers)
			results := RunSegments(ctx, a.client, videoURL, prompt, segments, a.params, a.maxWorkers)
			return reporter.RenderReport(results)
		}
	}

	if known && duration > longVideoSeconds {
		log.Printf("[%s] long video (%ds); consider chunked analysis on the vertex-ai backend", a.runID, duration)
	}

	outcome := a.client.AnalyzeWhole(ctx, videoURL, prompt, a.params)
	return reporter.RenderWhole(outcome)
}
