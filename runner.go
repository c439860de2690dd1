package vidanalyze

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RunSegments analyzes each planned segment with one remote call,
// running at most maxConcurrency calls at a time. Segments are
// submitted in index order but may complete in any order; every
// segment produces exactly one entry in the returned map, keyed by its
// index, whether the call succeeded or failed. One segment's failure
// never cancels its siblings, and the call returns only after every
// segment has completed.
func RunSegments(ctx context.Context, client AnalysisClient, videoURL, prompt string, segments []Segment, params GenerationParams, maxConcurrency int) map[int]SegmentResult {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	results := make(map[int]SegmentResult, len(segments))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrency)
	for _, seg := range segments {
		g.Go(func() error {
			outcome := client.AnalyzeSegment(ctx, videoURL, prompt, seg, params)

			// Each index is written exactly once, by whichever worker
			// completed it; the mutex only guards the map itself.
			mu.Lock()
			results[seg.Index] = SegmentResult{Segment: seg, Outcome: outcome}
			mu.Unlock()

			if outcome.Failed() {
				log.Printf("segment %d failed: %s", seg.Index, outcome.Err)
			} else {
				log.Printf("segment %d complete", seg.Index)
			}
			return nil
		})
	}
	// Workers never return errors; failures are recorded as outcomes.
	_ = g.Wait()

	return results
}
