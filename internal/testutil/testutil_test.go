package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "videos_root")
	assert.Contains(t, string(content), "lexicon_directory")

	dirs := []string{
		"videos", "work", "subtitles", "lexicon", "reports", "dictionaries", "data",
	}
	for _, d := range dirs {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestWriteLexicon(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lexicon")
	WriteLexicon(t, dir, map[string][]LexiconEntry{
		"a1": {{Lemma: "house", Translations: map[string]string{"de": "Haus"}}},
		"c1": {{Lemma: "ubiquitous"}},
	})

	content, err := os.ReadFile(filepath.Join(dir, "a1.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "lemma: house")
	assert.Contains(t, string(content), "Haus")

	_, err = os.Stat(filepath.Join(dir, "c1.yml"))
	assert.NoError(t, err)
}
