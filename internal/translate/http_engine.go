package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

type translationRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Model      string `json:"model"`
}

type translationResponse struct {
	TranslatedText string  `json:"translated_text"`
	Confidence     float64 `json:"confidence"`
	Model          string  `json:"model"`
}

// HTTPEngine talks to a translation server hosting OPUS or NLLB models.
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

// Initialize is idempotent. Model loading happens server-side; this only
// builds the client and fetches the supported language pairs.
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
		e.logger.Info("translation engine initialized",
			"engine", string(e.name), "model", e.model, "languages", len(languages))
	})
	return e.initErr
}

// Translate translates a single text. Transient server failures are retried
// with backoff.
func (e *HTTPEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (Result, error) {
	if err := e.Initialize(ctx); err != nil {
		return Result{}, &EngineError{Engine: e.name, Err: err}
	}

	var response translationResponse
	if err := retry.Do(
		func() error {
			res, err := e.httpClient.R().
				SetContext(ctx).
				SetBody(translationRequest{
					Text:       text,
					SourceLang: sourceLang,
					TargetLang: targetLang,
					Model:      e.model,
				}).
				SetResult(&response).
				Post("/translate")
			if err != nil {
				return err
			}
			if res.StatusCode() != http.StatusOK {
				statusErr := fmt.Errorf("translation server status %d: %s", res.StatusCode(), res.String())
				if res.StatusCode() < 500 && res.StatusCode() != http.StatusTooManyRequests {
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

	return Result{
		OriginalText:   text,
		TranslatedText: strings.TrimSpace(response.TranslatedText),
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Confidence:     response.Confidence,
		Metadata:       map[string]string{"model": response.Model},
	}, nil
}

// Cleanup releases the HTTP client.
func (e *HTTPEngine) Cleanup() error {
	if e.httpClient == nil {
		return nil
	}
	return e.httpClient.Close()
}

// SupportedLanguages returns the language codes advertised by the server.
func (e *HTTPEngine) SupportedLanguages() []string {
	return e.languages
}

// IsLanguageSupported reports whether a language code is advertised. An empty
// list means the server accepts any pair.
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
