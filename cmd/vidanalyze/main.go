// Command vidanalyze analyzes a remote video with Gemini, either in a
// single whole-video call or as parallel time segments on Vertex AI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/tmc/vidanalyze"
	"github.com/tmc/vidanalyze/api"
	"github.com/tmc/vidanalyze/metadata"
)

// setupLogging directs log output to a file for easier debugging, or
// discards it so stderr stays readable.
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file '%s': %v\n", path, err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(f)
	return f
}

func main() {
	// --- Command Line Flags ---
	apiFlag := flag.String("api", "google-ai", "Backend to use: 'google-ai' or 'vertex-ai'.")
	projectFlag := flag.String("project", "", "GCloud project ID (vertex-ai only).")
	locationFlag := flag.String("location", api.DefaultLocation, "GCloud location (vertex-ai only).")
	modelFlag := flag.String("model", vidanalyze.DefaultModel, "Gemini model ID to use.")
	apiKeyFlag := flag.String("api-key", "", "Gemini API Key (overrides GOOGLE_API_KEY env var).")

	// Generation parameters
	temperatureFlag := flag.Float64("temperature", vidanalyze.DefaultTemperature, "Temperature for text generation.")
	maxOutputTokensFlag := flag.Int("max-output-tokens", vidanalyze.DefaultMaxOutputTokens, "Maximum number of tokens to generate.")
	topKFlag := flag.Int("top-k", 0, "Top-k sampling (0 leaves it unset).")
	topPFlag := flag.Float64("top-p", 0, "Top-p sampling (0 leaves it unset).")

	// Chunking (vertex-ai only)
	chunkingFlag := flag.Bool("enable-chunking", false, "Analyze the video as parallel time segments (vertex-ai only).")
	segmentDurationFlag := flag.Int("segment-duration", vidanalyze.DefaultSegmentSeconds, "Segment duration in seconds.")
	maxWorkersFlag := flag.Int("max-workers", vidanalyze.DefaultMaxWorkers, "Max parallel workers for chunked analysis.")

	ytdlpFlag := flag.String("ytdlp", metadata.DefaultBinary, "Path to the yt-dlp binary used for duration detection.")
	debugLogFlag := flag.String("debug-log", "", "Write debug logs to this file.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <video-url> <prompt>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Analyze a remote video with Gemini (Gemini API or Vertex AI).\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  GOOGLE_API_KEY / GEMINI_API_KEY: API key for the google-ai backend.\n")
		fmt.Fprintf(os.Stderr, "  GOOGLE_CLOUD_PROJECT: Project ID for the vertex-ai backend.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s 'https://youtube.com/watch?v=ID' 'Summarize this video'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --api=vertex-ai --enable-chunking --segment-duration=180 \\\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "      'https://youtube.com/watch?v=ID' 'Find all goals scored'\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	videoURL, prompt := flag.Arg(0), flag.Arg(1)

	logFile := setupLogging(*debugLogFlag)
	if logFile != nil {
		defer logFile.Close()
		log.Println("--- Application Start ---")
		log.Printf("CLI Flags: api=%q model=%q chunking=%t segment-duration=%d max-workers=%d",
			*apiFlag, *modelFlag, *chunkingFlag, *segmentDurationFlag, *maxWorkersFlag)
	}

	backend, err := api.ParseBackend(*apiFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := api.New(ctx, api.Config{
		Backend:   backend,
		APIKey:    *apiKeyFlag,
		ProjectID: *projectFlag,
		Location:  *locationFlag,
		Model:     *modelFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	params := vidanalyze.GenerationParams{
		Temperature:     float32(*temperatureFlag),
		MaxOutputTokens: int32(*maxOutputTokensFlag),
	}
	if *topKFlag > 0 {
		k := int32(*topKFlag)
		params.TopK = &k
	}
	if *topPFlag > 0 {
		p := float32(*topPFlag)
		params.TopP = &p
	}

	analyzer, err := vidanalyze.New(
		vidanalyze.WithClient(client),
		vidanalyze.WithDurationResolver(metadata.New(*ytdlpFlag, nil)),
		vidanalyze.WithGenerationParams(params),
		vidanalyze.WithChunking(*chunkingFlag),
		vidanalyze.WithSegmentDuration(*segmentDurationFlag),
		vidanalyze.WithMaxWorkers(*maxWorkersFlag),
		vidanalyze.WithStyledOutput(term.IsTerminal(int(os.Stdout.Fd()))),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	banner := strings.Repeat("=", 70)
	fmt.Println(banner)
	fmt.Println("Video Analysis with Gemini")
	fmt.Println(banner)
	fmt.Printf("API: %s\n", backend)
	fmt.Printf("Model: %s\n", *modelFlag)
	fmt.Printf("URL: %s\n", videoURL)
	fmt.Printf("Prompt: %s\n", prompt)
	fmt.Fprintln(os.Stderr, client.Capabilities())

	start := time.Now()
	report := analyzer.Run(ctx, videoURL, prompt)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nCancelled by user.")
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(report)
	fmt.Fprintf(os.Stderr, "\nTotal time: %.1f seconds\n", time.Since(start).Seconds())
}
