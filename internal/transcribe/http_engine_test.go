package transcribe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chunk_audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake wav"), 0o644))
	return path
}

func newTranscriptionServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/languages", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]string{"de", "en", "es"})
	})
	mux.HandleFunc("/transcribe", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPEngine_Transcribe(t *testing.T) {
	ctx := context.Background()
	audioPath := writeAudioFixture(t)

	t.Run("parses segments and skips empty text", func(t *testing.T) {
		server := newTranscriptionServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "whisper-large", r.FormValue("model"))
			assert.Equal(t, "de", r.FormValue("language"))
			_, _, err := r.FormFile("audio")
			assert.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"language": "de",
				"segments": []map[string]any{
					{"start": 0.0, "end": 2.5, "text": " Das ist gut. "},
					{"start": 2.5, "end": 3.0, "text": "   "},
					{"start": 3.0, "end": 5.0, "text": "Verstehen Sie?"},
				},
			})
		})
		engine := NewHTTPEngine(EngineWhisper, server.URL, "whisper-large", 0)
		t.Cleanup(func() { _ = engine.Cleanup() })

		result, err := engine.Transcribe(ctx, Request{AudioPath: audioPath, Language: "de"})
		require.NoError(t, err)

		assert.Equal(t, "de", result.Language)
		require.Len(t, result.Segments, 2)
		assert.Equal(t, "Das ist gut.", result.Segments[0].Text)
		assert.Equal(t, 2.5, result.Segments[0].EndTime)
		assert.Equal(t, "Verstehen Sie?", result.Segments[1].Text)
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		attempts := 0
		server := newTranscriptionServer(t, func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"language": "de",
				"segments": []map[string]any{{"start": 0.0, "end": 1.0, "text": "hallo"}},
			})
		})
		engine := NewHTTPEngine(EngineWhisper, server.URL, "whisper-large", 2)
		t.Cleanup(func() { _ = engine.Cleanup() })

		result, err := engine.Transcribe(ctx, Request{AudioPath: audioPath, Language: "de"})
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		require.Len(t, result.Segments, 1)
	})

	t.Run("client errors abort without retrying", func(t *testing.T) {
		attempts := 0
		server := newTranscriptionServer(t, func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			http.Error(w, "unsupported audio format", http.StatusBadRequest)
		})
		engine := NewHTTPEngine(EngineWhisper, server.URL, "whisper-large", 3)
		t.Cleanup(func() { _ = engine.Cleanup() })

		_, err := engine.Transcribe(ctx, Request{AudioPath: audioPath, Language: "de"})
		var engineErr *EngineError
		require.ErrorAs(t, err, &engineErr)
		assert.Equal(t, 1, attempts)
	})

	t.Run("initialize failure surfaces on transcribe", func(t *testing.T) {
		engine := NewHTTPEngine(EngineWhisper, "http://127.0.0.1:1", "whisper-large", 0)
		t.Cleanup(func() { _ = engine.Cleanup() })

		_, err := engine.Transcribe(ctx, Request{AudioPath: audioPath, Language: "de"})
		var engineErr *EngineError
		require.ErrorAs(t, err, &engineErr)
	})
}

func TestHTTPEngine_IsLanguageSupported(t *testing.T) {
	ctx := context.Background()
	server := newTranscriptionServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	engine := NewHTTPEngine(EngineWhisper, server.URL, "whisper-large", 0)
	t.Cleanup(func() { _ = engine.Cleanup() })

	require.NoError(t, engine.Initialize(ctx))
	assert.Equal(t, []string{"de", "en", "es"}, engine.SupportedLanguages())
	assert.True(t, engine.IsLanguageSupported("DE"))
	assert.False(t, engine.IsLanguageSupported("fr"))

	// An engine with no advertised list accepts anything.
	empty := &HTTPEngine{}
	assert.True(t, empty.IsLanguageSupported("anything"))
}
