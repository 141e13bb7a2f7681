package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		wantErr           bool
		wantErrorContains []string
		check             func(t *testing.T, got *Config)
	}{
		{
			name: "valid config file with custom values",
			configContent: `media:
  videos_root: /srv/videos
  work_directory: /tmp/chunks
  subtitles_directory: /srv/subtitles
database:
  driver: mysql
  host: db.internal
  port: 3307
  name: sublearn_prod
transcription:
  engine: canary
  url: http://transcribe:9090
  timeout: 10m
quiz:
  question_count: 8
  session_ttl: 30m
`,
			check: func(t *testing.T, got *Config) {
				assert.Equal(t, "/srv/videos", got.Media.VideosRoot)
				assert.Equal(t, "/tmp/chunks", got.Media.WorkDirectory)
				assert.Equal(t, "mysql", got.Database.Driver)
				assert.Equal(t, "db.internal", got.Database.Host)
				assert.Equal(t, 3307, got.Database.Port)
				assert.Equal(t, "canary", got.Transcription.Engine)
				assert.Equal(t, 10*time.Minute, got.Transcription.Timeout)
				assert.Equal(t, 8, got.Quiz.QuestionCount)
				assert.Equal(t, 30*time.Minute, got.Quiz.SessionTTL)
				// Untouched sections keep their defaults.
				assert.Equal(t, "opus", got.Translation.Engine)
				assert.Equal(t, "block", got.Vocabulary.UnknownWordPolicy)
			},
		},
		{
			name: "missing config file uses defaults",
			check: func(t *testing.T, got *Config) {
				assert.Equal(t, "videos", got.Media.VideosRoot)
				assert.Equal(t, "ffmpeg", got.Media.FFmpegPath)
				assert.Equal(t, "sqlite3", got.Database.Driver)
				assert.Equal(t, filepath.Join("data", "sublearn.db"), got.Database.Path)
				assert.Equal(t, "whisper", got.Transcription.Engine)
				assert.Equal(t, 5, got.Quiz.QuestionCount)
				assert.Equal(t, time.Hour, got.Quiz.SessionTTL)
				assert.Equal(t, ":8080", got.Server.Address)
				assert.Equal(t, 24*time.Hour, got.Auth.TokenTTL)
			},
		},
		{
			name: "invalid YAML format",
			configContent: `media:
  videos_root: /srv/videos
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
			},
		},
		{
			name: "unsupported database driver",
			configContent: `database:
  driver: postgres
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
			},
		},
		{
			name: "unsupported unknown word policy",
			configContent: `vocabulary:
  unknown_word_policy: ignore
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
			},
		},
		{
			name: "explicit config file path",
			configContent: `media:
  videos_root: explicit/videos
`,
			useExplicitPath: true,
			check: func(t *testing.T, got *Config) {
				assert.Equal(t, "explicit/videos", got.Media.VideosRoot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(tempDir))
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestLoadSecretsFromEnvironment(t *testing.T) {
	t.Setenv("RAPID_API_HOST", "wordsapiv1.p.rapidapi.com")
	t.Setenv("RAPID_API_KEY", "test-key")
	t.Setenv("SUBLEARN_JWT_SECRET", "test-secret")
	t.Setenv("SUBLEARN_DB_PASSWORD", "test-password")

	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	got, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "wordsapiv1.p.rapidapi.com", got.Dictionary.Host)
	assert.Equal(t, "test-key", got.Dictionary.Key)
	assert.Equal(t, "test-secret", got.Auth.JWTSecret)
	assert.Equal(t, "test-password", got.Database.Password)
}
