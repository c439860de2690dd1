package vidanalyze

import "github.com/charmbracelet/lipgloss"

// --- Config ---

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.5-pro"

// DefaultTemperature is the sampling temperature applied when the
// caller does not set one.
const DefaultTemperature = 0.2

// DefaultMaxOutputTokens bounds the model's response length by default.
const DefaultMaxOutputTokens = 2048

// DefaultSegmentSeconds is the segment length used for chunked
// analysis when none is specified.
const DefaultSegmentSeconds = 180

// DefaultMaxWorkers is the worker pool size for chunked analysis.
const DefaultMaxWorkers = 3

// longVideoSeconds is the duration past which an unsegmented run logs
// an advisory suggesting chunked analysis instead.
const longVideoSeconds = 600

// --- UI Styles ---
var (
	reportTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // Magenta
	segmentTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // Cyan
	failureStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")) // Red
	separatorStyle    = lipgloss.NewStyle().Faint(true)
)
