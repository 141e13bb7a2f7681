package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/sublearn/sublearn/internal/subtitle"
)

// transcriptionResponse is the JSON shape returned by the transcription
// server for all supported models.
type transcriptionResponse struct {
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// HTTPEngine talks to a transcription server (whisper, canary or parakeet
// models behind the same API). The heavy model lives server-side; Initialize
// only verifies the server is reachable.
type HTTPEngine struct {
	name             Name
	baseURL          string
	model            string
	maxRetryAttempts uint
	logger           *slog.Logger

	initOnce   sync.Once
	initErr    error
	httpClient *resty.Client
	languages  []string
}

// NewHTTPEngine creates an engine client for the given model server.
func NewHTTPEngine(name Name, baseURL, model string, retryAttempts uint) *HTTPEngine {
	return &HTTPEngine{
		name:             name,
		baseURL:          baseURL,
		model:            model,
		maxRetryAttempts: retryAttempts,
		logger:           slog.Default(),
	}
}

// Initialize is idempotent: the client is built and the server's language
// list fetched exactly once, on first use.
func (e *HTTPEngine) Initialize(ctx context.Context) error {
	e.initOnce.Do(func() {
		client := resty.New()
		client.SetBaseURL(e.baseURL)
		client.SetHeader("Content-Type", "application/json")
		e.httpClient = client

		var languages []string
		res, err := client.R().
			SetContext(ctx).
			SetResult(&languages).
			Get("/languages")
		if err != nil {
			e.initErr = fmt.Errorf("fetch supported languages > %w", err)
			return
		}
		if res.StatusCode() != http.StatusOK {
			e.initErr = fmt.Errorf("fetch supported languages: status %d", res.StatusCode())
			return
		}
		e.languages = languages
		e.logger.Info("transcription engine initialized",
			"engine", string(e.name), "model", e.model, "languages", len(languages))
	})
	return e.initErr
}

// Transcribe uploads the audio file and returns parsed segments. Retryable
// failures (5xx, rate limits, transient network errors) are retried with
// backoff; anything else aborts immediately.
func (e *HTTPEngine) Transcribe(ctx context.Context, req Request) (Result, error) {
	if err := e.Initialize(ctx); err != nil {
		return Result{}, &EngineError{Engine: e.name, Err: err}
	}

	var response transcriptionResponse
	if err := retry.Do(
		func() error {
			res, err := e.httpClient.R().
				SetContext(ctx).
				SetFile("audio", req.AudioPath).
				SetFormData(map[string]string{
					"model":    e.model,
					"language": req.Language,
				}).
				SetResult(&response).
				Post("/transcribe")
			if err != nil {
				return err
			}
			if res.StatusCode() != http.StatusOK {
				statusErr := fmt.Errorf("transcription server status %d: %s", res.StatusCode(), res.String())
				if !isRetryableStatus(res.StatusCode()) {
					return retry.Unrecoverable(statusErr)
				}
				return statusErr
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(e.maxRetryAttempts+1),
	); err != nil {
		return Result{}, &EngineError{Engine: e.name, Err: err}
	}

	result := Result{Language: response.Language}
	for i, segment := range response.Segments {
		text := strings.TrimSpace(segment.Text)
		if text == "" {
			continue
		}
		result.Segments = append(result.Segments, subtitle.Segment{
			Index:     i + 1,
			StartTime: segment.Start,
			EndTime:   segment.End,
			Text:      text,
		})
	}
	return result, nil
}

// Cleanup releases the HTTP client.
func (e *HTTPEngine) Cleanup() error {
	if e.httpClient == nil {
		return nil
	}
	return e.httpClient.Close()
}

// SupportedLanguages returns the languages advertised by the server.
func (e *HTTPEngine) SupportedLanguages() []string {
	return e.languages
}

// IsLanguageSupported reports whether the server supports a language code. An
// empty advertised list means the engine auto-detects and accepts anything.
func (e *HTTPEngine) IsLanguageSupported(code string) bool {
	if len(e.languages) == 0 {
		return true
	}
	for _, language := range e.languages {
		if strings.EqualFold(language, code) {
			return true
		}
	}
	return false
}

func isRetryableStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}
