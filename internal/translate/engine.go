// Package translate wraps pluggable machine-translation engines behind a
// common interface and a name-keyed registry with lazy, memoized
// initialization.
package translate

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=engine.go -destination=../mocks/translate/mock_engine.go -package=mock_translate

// Name identifies a registered translation engine.
type Name string

const (
	EngineOpus Name = "opus"
	EngineNLLB Name = "nllb"
)

// Result is one finished translation.
type Result struct {
	OriginalText   string            `json:"original_text"`
	TranslatedText string            `json:"translated_text"`
	SourceLanguage string            `json:"source_language"`
	TargetLanguage string            `json:"target_language"`
	Confidence     float64           `json:"confidence,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// Engine is the common interface for all translation engines. Initialize is
// lazy and idempotent.
type Engine interface {
	Initialize(ctx context.Context) error
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Result, error)
	Cleanup() error
	SupportedLanguages() []string
	IsLanguageSupported(code string) bool
}

// EngineError wraps a failure inside a translation engine.
type EngineError struct {
	Engine Name
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("translation engine %s: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
