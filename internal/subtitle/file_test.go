package subtitle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	t.Run("parses a UTF-8 file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movie.srt")
		content := "1\n00:00:01,000 --> 00:00:02,000\nHällo wörld\n\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		segments, err := ParseFile(path)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, "Hällo wörld", segments[0].Text)
	})

	t.Run("decodes ISO-8859-1 fallback", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "legacy.srt")
		// "Fußgänger" in Latin-1: ß=0xDF, ä=0xE4. Invalid as UTF-8.
		content := append([]byte("1\n00:00:01,000 --> 00:00:02,000\nFu"), 0xDF, 'g', 0xE4)
		content = append(content, []byte("nger\n\n")...)
		require.NoError(t, os.WriteFile(path, content, 0644))

		segments, err := ParseFile(path)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, "Fußgänger", segments[0].Text)
	})

	t.Run("missing file returns a clear error", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(t.TempDir(), "nope.srt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subtitle file not found")
	})
}

func TestSaveSegments(t *testing.T) {
	t.Run("writes file and creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "out.srt")
		segments := []Segment{{StartTime: 1, EndTime: 2, Text: "Hello"}}

		require.NoError(t, SaveSegments(path, segments))

		parsed, err := ParseFile(path)
		require.NoError(t, err)
		require.Len(t, parsed, 1)
		assert.Equal(t, "Hello", parsed[0].Text)
	})

	t.Run("empty segment list writes an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.srt")

		require.NoError(t, SaveSegments(path, nil))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})
}
