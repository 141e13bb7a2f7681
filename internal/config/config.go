// Package config loads application configuration from a YAML file and the
// environment. Secrets (database password, dictionary API key, JWT secret)
// are bound to environment variables only and never read from the file.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Media         MediaConfig         `mapstructure:"media"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Transcription EngineConfig        `mapstructure:"transcription"`
	Translation   EngineConfig        `mapstructure:"translation"`
	Dictionary    DictionaryConfig    `mapstructure:"dictionary"`
	Vocabulary    VocabularyConfig    `mapstructure:"vocabulary"`
	Quiz          QuizConfig          `mapstructure:"quiz"`
	Reports       ReportsConfig       `mapstructure:"reports"`
	Server        ServerConfig        `mapstructure:"server"`
	Auth          AuthConfig          `mapstructure:"auth"`
}

type MediaConfig struct {
	VideosRoot         string `mapstructure:"videos_root"`
	WorkDirectory      string `mapstructure:"work_directory"`
	SubtitlesDirectory string `mapstructure:"subtitles_directory"`
	FFmpegPath         string `mapstructure:"ffmpeg_path"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=mysql sqlite3"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	// Path is the database file location when the driver is sqlite3.
	Path string `mapstructure:"path"`
}

type EngineConfig struct {
	Engine  string        `mapstructure:"engine"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DictionaryConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

type VocabularyConfig struct {
	LexiconDirectory string `mapstructure:"lexicon_directory"`
	// UnknownWordPolicy is "block" or "pass" for words absent from the
	// lexicon.
	UnknownWordPolicy string `mapstructure:"unknown_word_policy" validate:"oneof=block pass"`
}

type QuizConfig struct {
	QuestionCount int           `mapstructure:"question_count" validate:"min=1"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
}

type ReportsConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sublearn")
	}

	v.SetDefault("media.videos_root", "videos")
	v.SetDefault("media.work_directory", filepath.Join("work", "chunks"))
	v.SetDefault("media.subtitles_directory", "subtitles")
	v.SetDefault("media.ffmpeg_path", "ffmpeg")
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "sublearn")
	v.SetDefault("database.user", "sublearn")
	v.SetDefault("database.path", filepath.Join("data", "sublearn.db"))
	v.SetDefault("transcription.engine", "whisper")
	v.SetDefault("transcription.url", "http://localhost:9090")
	v.SetDefault("transcription.timeout", 5*time.Minute)
	v.SetDefault("translation.engine", "opus")
	v.SetDefault("translation.url", "http://localhost:9091")
	v.SetDefault("translation.timeout", 2*time.Minute)
	v.SetDefault("dictionary.cache_directory", filepath.Join("dictionaries", "cache"))
	v.SetDefault("vocabulary.lexicon_directory", filepath.Join("assets", "lexicon"))
	v.SetDefault("vocabulary.unknown_word_policy", "block")
	v.SetDefault("quiz.question_count", 5)
	v.SetDefault("quiz.session_ttl", time.Hour)
	v.SetDefault("reports.output_directory", filepath.Join("outputs", "reports"))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	// Secrets come from the environment only, never the config file.
	if err := v.BindEnv("database.password", "SUBLEARN_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind SUBLEARN_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "SUBLEARN_JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind SUBLEARN_JWT_SECRET environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}
	if err := validate.Struct(c); err != nil {
		var messages []string
		for _, fieldErr := range extractFieldErrors(err) {
			messages = append(messages, fieldErr.Translate(trans))
		}
		if len(messages) > 0 {
			return fmt.Errorf("invalid configuration: %v", messages)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
