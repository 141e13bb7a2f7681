// Package transcribe wraps pluggable speech-to-text engines behind a common
// interface and a name-keyed registry with lazy, memoized initialization.
package transcribe

import (
	"context"
	"fmt"

	"github.com/sublearn/sublearn/internal/subtitle"
)

//go:generate mockgen -source=engine.go -destination=../mocks/transcribe/mock_engine.go -package=mock_transcribe

// Name identifies a registered transcription engine.
type Name string

const (
	EngineWhisper  Name = "whisper"
	EngineCanary   Name = "canary"
	EngineParakeet Name = "parakeet"
)

// Request is the input for one transcription call.
type Request struct {
	AudioPath string
	Language  string
	Model     string
}

// Result is a finished transcription.
type Result struct {
	Segments []subtitle.Segment
	Language string
}

// Engine is the common interface for all transcription engines. Initialize is
// lazy and idempotent; heavy resources are loaded on first use only.
type Engine interface {
	Initialize(ctx context.Context) error
	Transcribe(ctx context.Context, req Request) (Result, error)
	Cleanup() error
	SupportedLanguages() []string
	IsLanguageSupported(code string) bool
}

// EngineError wraps a failure inside an engine so callers can branch on the
// failure class without string matching.
type EngineError struct {
	Engine Name
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("transcription engine %s: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
