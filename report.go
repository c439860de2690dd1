package vidanalyze

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	bannerWidth    = 70
	separatorWidth = 40
)

// Reporter renders analysis results as a textual report. Styling is
// optional so piped output stays plain.
type Reporter struct {
	Styled bool
}

// RenderReport renders per-segment results in ascending segment-index
// order, regardless of the order in which they completed. An empty
// result map renders an explicit marker instead of an empty report.
func (r Reporter) RenderReport(results map[int]SegmentResult) string {
	var b strings.Builder
	b.WriteString(r.banner("RESULTS (CHUNKED)"))

	if len(results) == 0 {
		b.WriteString("\nNo results.\n")
		return b.String()
	}

	indices := make([]int, 0, len(results))
	for i := range results {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	sep := strings.Repeat("-", separatorWidth)
	for _, i := range indices {
		res := results[i]
		b.WriteString("\n")
		b.WriteString(r.style(separatorStyle, sep))
		b.WriteString("\n")
		b.WriteString(r.style(segmentTitleStyle, res.Segment.String()))
		b.WriteString("\n")
		b.WriteString(r.style(separatorStyle, sep))
		b.WriteString("\n")
		b.WriteString(r.renderOutcome(res.Outcome))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderWhole renders the outcome of a single whole-video analysis.
func (r Reporter) RenderWhole(outcome Outcome) string {
	var b strings.Builder
	b.WriteString(r.banner("RESULTS"))
	b.WriteString("\n")
	b.WriteString(r.renderOutcome(outcome))
	b.WriteString("\n")
	return b.String()
}

func (r Reporter) renderOutcome(o Outcome) string {
	if o.Failed() {
		return r.style(failureStyle, "Error: "+o.Err)
	}
	return o.Text
}

func (r Reporter) banner(title string) string {
	line := strings.Repeat("=", bannerWidth)
	return r.style(separatorStyle, line) + "\n" +
		r.style(reportTitleStyle, title) + "\n" +
		r.style(separatorStyle, line) + "\n"
}

func (r Reporter) style(s lipgloss.Style, text string) string {
	if !r.Styled {
		return text
	}
	return s.Render(text)
}
