package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sublearn/sublearn/internal/config"
	"github.com/sublearn/sublearn/internal/database"
	"github.com/sublearn/sublearn/internal/pipeline"
	"github.com/sublearn/sublearn/internal/transcribe"
	"github.com/sublearn/sublearn/internal/translate"
	"github.com/sublearn/sublearn/internal/user"
	"github.com/sublearn/sublearn/internal/vocabulary"
)

const engineRetryAttempts = 3

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}
	return db, nil
}

func newEngineRegistries(cfg *config.Config) (*transcribe.Registry, *translate.Registry) {
	transcribers := transcribe.NewRegistry()
	transcribers.Register(transcribe.Name(cfg.Transcription.Engine), func() (transcribe.Engine, error) {
		return transcribe.NewHTTPEngine(
			transcribe.Name(cfg.Transcription.Engine),
			cfg.Transcription.URL,
			cfg.Transcription.Engine,
			engineRetryAttempts,
		), nil
	})

	translators := translate.NewRegistry()
	translators.Register(translate.Name(cfg.Translation.Engine), func() (translate.Engine, error) {
		return translate.NewHTTPEngine(
			translate.Name(cfg.Translation.Engine),
			cfg.Translation.URL,
			cfg.Translation.Engine,
			engineRetryAttempts,
		), nil
	})

	return transcribers, translators
}

func newVocabularyEngine(cfg *config.Config, users *user.Service) (*vocabulary.Engine, error) {
	lexicon, err := vocabulary.LoadLexicon(cfg.Vocabulary.LexiconDirectory)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.LoadLexicon(%s) > %w", cfg.Vocabulary.LexiconDirectory, err)
	}

	policy := vocabulary.BlockUnknownWords
	if cfg.Vocabulary.UnknownWordPolicy == "pass" {
		policy = vocabulary.PassUnknownWords
	}
	return vocabulary.NewEngine(lexicon, vocabulary.NewSuffixLemmatizer(lexicon), users, policy), nil
}

func newOrchestrator(
	cfg *config.Config,
	users *user.Service,
	transcribers *transcribe.Registry,
	translators *translate.Registry,
	filter *vocabulary.Engine,
	tracker *pipeline.Tracker,
) *pipeline.Orchestrator {
	return pipeline.NewOrchestrator(pipeline.Deps{
		VideosRoot:   cfg.Media.VideosRoot,
		WorkDir:      cfg.Media.WorkDirectory,
		SubtitlesDir: cfg.Media.SubtitlesDirectory,
		Users:        users,
		KnownWords:   users,
		Extractor:    pipeline.NewAudioExtractor(cfg.Media.FFmpegPath, cfg.Transcription.Timeout),
		Transcribers: transcribers,
		Translators:  translators,
		Filter:       filter,
		Tracker:      tracker,
	})
}
