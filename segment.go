package vidanalyze

// PlanSegments partitions [0, totalSeconds) into consecutive windows
// of at most segmentSeconds each. The final window is shortened to end
// exactly at totalSeconds. A zero total duration yields no segments.
//
// The plan is deterministic: indices run 1..N in temporal order, every
// segment starts where the previous one ended, and the windows cover
// the full duration with no gaps or overlap.
func PlanSegments(totalSeconds, segmentSeconds int) []Segment {
	var segments []Segment
	start := 0
	for index := 1; start < totalSeconds; index++ {
		end := start + segmentSeconds
		if end > totalSeconds {
			end = totalSeconds
		}
		segments = append(segments, Segment{
			Start: float64(start),
			End:   float64(end),
			Index: index,
		})
		start = end
	}
	return segments
}
