package vidanalyze

import "fmt"

// Segment is one contiguous time window of the source video. Windows
// in a plan are gapless: each segment starts where the previous one
// ended, and indices are 1-based in temporal order.
type Segment struct {
	Start float64 // offset from the beginning of the video, in seconds
	End   float64 // exclusive end offset, in seconds
	Index int
}

// String renders the segment in the form "Segment 2: 03:00 - 06:00".
func (s Segment) String() string {
	return fmt.Sprintf("Segment %d: %s - %s", s.Index, formatClock(s.Start), formatClock(s.End))
}

// formatClock renders a second offset as MM:SS.
func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Outcome is the result of one remote analysis call: either the text
// the model produced, or the reason the call failed. Failures are
// values rather than errors so a failed segment can sit next to
// successful ones in the final report.
type Outcome struct {
	Text string
	Err  string
}

// SuccessOutcome wraps model output in a successful Outcome.
func SuccessOutcome(text string) Outcome { return Outcome{Text: text} }

// FailureOutcome records a failed call and the reason.
func FailureOutcome(reason string) Outcome { return Outcome{Err: reason} }

// Failed reports whether the call behind this outcome failed.
func (o Outcome) Failed() bool { return o.Err != "" }

// SegmentResult pairs a segment with the outcome of its analysis call.
type SegmentResult struct {
	Segment Segment
	Outcome Outcome
}

// GenerationParams holds the sampling configuration applied to every
// request in a run. TopK and TopP are only sent when non-nil.
type GenerationParams struct {
	Temperature     float32
	MaxOutputTokens int32
	TopK            *int32
	TopP            *float32
}
