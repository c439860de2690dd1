// Package api wraps Google's generative backends behind the analysis
// client surface. Two backend profiles are supported: the API-key
// authenticated Gemini API, and the project-scoped Vertex AI service.
// Only Vertex AI accepts per-segment time windows on a video reference.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"google.golang.org/genai"

	"github.com/tmc/vidanalyze"
)

// DefaultLocation is the Vertex AI region used when none is specified.
const DefaultLocation = "us-central1"

// Backend selects which Google service profile the client talks to.
type Backend int

const (
	// BackendGeminiAPI is the API-key authenticated Gemini API.
	// Free tier; whole-video analysis only.
	BackendGeminiAPI Backend = iota

	// BackendVertexAI is the project-scoped Vertex AI service.
	// Supports time-range annotations on video references.
	BackendVertexAI
)

func (b Backend) String() string {
	switch b {
	case BackendVertexAI:
		return "vertex-ai"
	default:
		return "google-ai"
	}
}

// ParseBackend maps a backend selector string to a Backend. It
// recognizes the same names the original command surface uses.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "google-ai":
		return BackendGeminiAPI, nil
	case "vertex-ai":
		return BackendVertexAI, nil
	}
	return 0, fmt.Errorf("invalid api type %q (use \"google-ai\" or \"vertex-ai\")", s)
}

// Config holds everything needed to construct a Client.
type Config struct {
	Backend   Backend
	APIKey    string // Gemini API; falls back to GOOGLE_API_KEY / GEMINI_API_KEY
	ProjectID string // Vertex AI; falls back to GOOGLE_CLOUD_PROJECT
	Location  string // Vertex AI; defaults to DefaultLocation
	Model     string // defaults to vidanalyze.DefaultModel

	// HTTPClient overrides the transport used by the underlying SDK.
	// Intended for tests.
	HTTPClient *http.Client
}

// Client implements vidanalyze.AnalysisClient on top of the genai SDK.
type Client struct {
	backend Backend
	model   string // fully qualified model identifier for the backend
	genai   *genai.Client
}

// New constructs a Client for the configured backend. Missing
// credentials (API key for Gemini API, project ID for Vertex AI) are
// construction errors; nothing is sent over the network here.
func New(ctx context.Context, cfg Config) (*Client, error) {
	model := cfg.Model
	if model == "" {
		model = vidanalyze.DefaultModel
	}

	switch cfg.Backend {
	case BackendGeminiAPI:
		key := cfg.APIKey
		if key == "" {
			key = os.Getenv("GOOGLE_API_KEY")
		}
		if key == "" {
			key = os.Getenv("GEMINI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("set GOOGLE_API_KEY (or GEMINI_API_KEY) for the google-ai backend")
		}
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     key,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: cfg.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		log.Printf("Using Gemini API backend (model %s)", model)
		// The Gemini API addresses models by resource name.
		return &Client{backend: cfg.Backend, model: "models/" + model, genai: gc}, nil

	case BackendVertexAI:
		project := cfg.ProjectID
		if project == "" {
			project = os.Getenv("GOOGLE_CLOUD_PROJECT")
		}
		if project == "" {
			return nil, fmt.Errorf("set a project ID (or GOOGLE_CLOUD_PROJECT) for the vertex-ai backend")
		}
		location := cfg.Location
		if location == "" {
			location = DefaultLocation
		}
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			Project:    project,
			Location:   location,
			Backend:    genai.BackendVertexAI,
			HTTPClient: cfg.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("create vertex client: %w", err)
		}
		log.Printf("Using Vertex AI backend (project %s, location %s, model %s)", project, location, model)
		return &Client{backend: cfg.Backend, model: model, genai: gc}, nil
	}

	return nil, fmt.Errorf("unknown backend selector %d", cfg.Backend)
}

// SupportsSegments reports whether this backend accepts per-segment
// time windows.
func (c *Client) SupportsSegments() bool {
	return c.backend == BackendVertexAI
}

// Capabilities describes the active backend profile.
func (c *Client) Capabilities() string {
	switch c.backend {
	case BackendVertexAI:
		return "Vertex AI (project-scoped, chunking available)"
	default:
		return "Gemini API (free tier, no chunking)"
	}
}
