// Package testutil provides shared test helpers for creating config files
// and lexicon fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{
		"videos", "work", "subtitles", "lexicon", "reports", "dictionaries", "data",
	}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`media:
  videos_root: %s
  work_directory: %s
  subtitles_directory: %s
database:
  driver: sqlite3
  path: %s
vocabulary:
  lexicon_directory: %s
dictionary:
  cache_directory: %s
reports:
  output_directory: %s
`,
		filepath.Join(tmpDir, "videos"),
		filepath.Join(tmpDir, "work"),
		filepath.Join(tmpDir, "subtitles"),
		filepath.Join(tmpDir, "data", "sublearn.db"),
		filepath.Join(tmpDir, "lexicon"),
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// LexiconEntry is one word in a lexicon fixture.
type LexiconEntry struct {
	Lemma        string            `yaml:"lemma"`
	PartOfSpeech string            `yaml:"part_of_speech,omitempty"`
	Translations map[string]string `yaml:"translations,omitempty"`
}

// WriteLexicon writes CEFR wordlist files into dir, one file per level. Keys
// are lowercase level names ("a1" through "c2").
func WriteLexicon(t *testing.T, dir string, levels map[string][]LexiconEntry) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	for level, entries := range levels {
		content, err := yaml.Marshal(entries)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, level+".yml"), content, 0644))
	}
}

// WriteSRT writes an SRT fixture file and returns its path.
func WriteSRT(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
