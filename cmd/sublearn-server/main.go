package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"

	"github.com/sublearn/sublearn/internal/config"
	"github.com/sublearn/sublearn/internal/database"
	"github.com/sublearn/sublearn/internal/dictionary"
	"github.com/sublearn/sublearn/internal/pipeline"
	"github.com/sublearn/sublearn/internal/quiz"
	"github.com/sublearn/sublearn/internal/server"
	"github.com/sublearn/sublearn/internal/srs"
	"github.com/sublearn/sublearn/internal/transcribe"
	"github.com/sublearn/sublearn/internal/translate"
	"github.com/sublearn/sublearn/internal/user"
	"github.com/sublearn/sublearn/internal/vocabulary"
)

const (
	engineRetryAttempts = 3
	staleFileMaxAge     = 24 * time.Hour
	progressRecordTTL   = time.Hour
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("SUBLEARN_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("SUBLEARN_JWT_SECRET environment variable is required")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db, cfg.Database.Driver); err != nil {
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	users := user.NewService(db, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

	lexicon, err := vocabulary.LoadLexicon(cfg.Vocabulary.LexiconDirectory)
	if err != nil {
		return fmt.Errorf("vocabulary.LoadLexicon() > %w", err)
	}
	policy := vocabulary.BlockUnknownWords
	if cfg.Vocabulary.UnknownWordPolicy == "pass" {
		policy = vocabulary.PassUnknownWords
	}
	filter := vocabulary.NewEngine(lexicon, vocabulary.NewSuffixLemmatizer(lexicon), users, policy)

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
	defer func() {
		if err := transcribers.CleanupAll(); err != nil {
			logger.Warn("transcription engine cleanup failed", "error", err)
		}
		if err := translators.CleanupAll(); err != nil {
			logger.Warn("translation engine cleanup failed", "error", err)
		}
	}()

	tracker := pipeline.NewTracker()
	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
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

	var distractors quiz.DistractorSource
	if cfg.Dictionary.Host != "" && cfg.Dictionary.Key != "" {
		distractors = dictionary.NewClient(cfg.Dictionary.CacheDirectory, dictionary.Config{
			Host: cfg.Dictionary.Host,
			Key:  cfg.Dictionary.Key,
		})
	}
	sessions := quiz.NewMemoryStore(cfg.Quiz.SessionTTL)
	quizzes := quiz.NewGenerator(srs.NewDBRepository(db), sessions, distractors)

	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(1).Hour().Do(func() {
		removed, err := pipeline.NewCleaner(cfg.Media.WorkDirectory).Sweep(staleFileMaxAge)
		if err != nil {
			logger.Warn("work directory sweep failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Info("swept stale work files", "removed", removed)
		}
	}); err != nil {
		return fmt.Errorf("schedule work directory sweep > %w", err)
	}
	if _, err := scheduler.Every(10).Minutes().Do(func() {
		if evicted := sessions.Evict(time.Now()); evicted > 0 {
			logger.Info("evicted quiz sessions", "evicted", evicted)
		}
		if evicted := tracker.Evict(progressRecordTTL, time.Now()); evicted > 0 {
			logger.Info("evicted finished progress records", "evicted", evicted)
		}
	}); err != nil {
		return fmt.Errorf("schedule quiz session eviction > %w", err)
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	handler := server.NewHandler(server.HandlerConfig{
		Users:              users,
		Orchestrator:       orchestrator,
		Quizzes:            quizzes,
		DefaultTranscriber: transcribe.Name(cfg.Transcription.Engine),
		DefaultTranslator:  translate.Name(cfg.Translation.Engine),
		QuizQuestionCount:  cfg.Quiz.QuestionCount,
	})
	router := server.NewRouter(handler, users, cfg.Server.AllowedOrigins)

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "address", cfg.Server.Address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server > %w", err)
	}
}
