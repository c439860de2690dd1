package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/tmc/vidanalyze"
)

// NoContentText is the sentinel outcome text used when the service
// returns a response with no text fragments at all.
const NoContentText = "No response generated."

// AnalyzeWhole issues one request covering the entire video. Remote
// errors of any kind become a Failure outcome; they never propagate
// past this boundary.
func (c *Client) AnalyzeWhole(ctx context.Context, videoURL, prompt string, params vidanalyze.GenerationParams) vidanalyze.Outcome {
	parts := []*genai.Part{
		{FileData: c.fileData(videoURL)},
		{Text: prompt},
	}
	return c.generate(ctx, parts, params)
}

// AnalyzeSegment issues one request covering a single time window of
// the video. On the Gemini API backend this fails immediately without
// a network call; only Vertex AI accepts time-range annotations.
//
// The segment boundaries are carried twice: as a structured
// VideoMetadata annotation on the file part, and restated in the
// prompt so the model knows the intended window.
func (c *Client) AnalyzeSegment(ctx context.Context, videoURL, prompt string, seg vidanalyze.Segment, params vidanalyze.GenerationParams) vidanalyze.Outcome {
	if c.backend != BackendVertexAI {
		return vidanalyze.FailureOutcome("chunked analysis requires the vertex-ai backend")
	}

	start, end := int(seg.Start), int(seg.End)
	segPrompt := fmt.Sprintf("Analyze video from %ds to %ds. %s", start, end, prompt)
	parts := []*genai.Part{
		{
			FileData: c.fileData(videoURL),
			VideoMetadata: &genai.VideoMetadata{
				StartOffset: time.Duration(start) * time.Second,
				EndOffset:   time.Duration(end) * time.Second,
			},
		},
		{Text: segPrompt},
	}
	return c.generate(ctx, parts, params)
}

// fileData builds the video reference part. Vertex AI rejects file
// parts without an explicit media type; the Gemini API infers it.
func (c *Client) fileData(videoURL string) *genai.FileData {
	fd := &genai.FileData{FileURI: videoURL}
	if c.backend == BackendVertexAI {
		fd.MIMEType = "video/mp4"
	}
	return fd
}

func (c *Client) generate(ctx context.Context, parts []*genai.Part, params vidanalyze.GenerationParams) vidanalyze.Outcome {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, generationConfig(params))
	if err != nil {
		return vidanalyze.FailureOutcome(err.Error())
	}
	return vidanalyze.SuccessOutcome(extractText(resp))
}

func generationConfig(params vidanalyze.GenerationParams) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		MaxOutputTokens: params.MaxOutputTokens,
	}
	if params.TopK != nil {
		cfg.TopK = genai.Ptr(float32(*params.TopK))
	}
	if params.TopP != nil {
		cfg.TopP = genai.Ptr(*params.TopP)
	}
	return cfg
}

// extractText concatenates every non-empty text fragment across all
// candidates, trimmed and separated by blank lines.
func extractText(resp *genai.GenerateContentResponse) string {
	var texts []string
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			if t := strings.TrimSpace(part.Text); t != "" {
				texts = append(texts, t)
			}
		}
	}
	out := strings.TrimSpace(strings.Join(texts, "\n\n"))
	if out == "" {
		return NoContentText
	}
	return out
}
