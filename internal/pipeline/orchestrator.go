package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sublearn/sublearn/internal/subtitle"
	"github.com/sublearn/sublearn/internal/transcribe"
	"github.com/sublearn/sublearn/internal/translate"
	"github.com/sublearn/sublearn/internal/user"
	"github.com/sublearn/sublearn/internal/vocabulary"
)

// Request describes one chunk-processing run.
type Request struct {
	Chunk               Chunk
	UserID              int64
	SessionToken        string
	TranscriptionEngine transcribe.Name
	TranslationEngine   translate.Name
}

// Deps wires the orchestrator's collaborators.
type Deps struct {
	VideosRoot   string
	WorkDir      string
	SubtitlesDir string
	Users        user.Directory
	KnownWords   vocabulary.KnownWordStore
	Extractor    *AudioExtractor
	Transcribers *transcribe.Registry
	Translators  *translate.Registry
	Filter       *vocabulary.Engine
	Tracker      *Tracker
}

// Orchestrator runs the per-chunk pipeline. All stages of one invocation run
// strictly sequentially; multiple invocations may run concurrently as long as
// each task id belongs to exactly one run.
type Orchestrator struct {
	deps    Deps
	cleaner *Cleaner
	logger  *slog.Logger
}

// NewOrchestrator creates a chunk-processing orchestrator.
func NewOrchestrator(deps Deps) *Orchestrator {
	return &Orchestrator{
		deps:    deps,
		cleaner: NewCleaner(deps.WorkDir),
		logger:  slog.Default(),
	}
}

// ProcessChunk runs the pipeline for one chunk. Any stage failure after
// progress initialization is recorded into the task's progress record and
// returned to the caller; temp-file cleanup always runs. Partially produced
// artifacts (a finished transcription, for instance) are left on disk for
// reuse by a retry.
func (o *Orchestrator) ProcessChunk(ctx context.Context, taskID string, req Request) (err error) {
	if err := req.Chunk.Validate(); err != nil {
		return fmt.Errorf("validate chunk > %w", err)
	}

	videoPath, err := o.resolveVideoPath(req.Chunk.VideoPath)
	if err != nil {
		return fmt.Errorf("resolve video path > %w", err)
	}

	tracker := o.deps.Tracker
	tracker.Init(taskID)

	var audioPath string
	defer func() {
		if err != nil {
			tracker.Fail(taskID, err)
		}
		o.cleaner.RemoveTempAudio(audioPath, videoPath)
		o.cleaner.RemoveStaleArtifacts(videoPath, taskID)
	}()

	tracker.Update(taskID, 10, "authenticating", "resolving user")
	usr, err := o.deps.Users.GetUser(ctx, req.UserID, req.SessionToken)
	if err != nil {
		return fmt.Errorf("resolve user > %w", err)
	}

	tracker.Update(taskID, 20, "loading_preferences", "loading language preferences")
	prefs, err := o.deps.Users.LoadPreferences(ctx, usr.ID)
	if err != nil {
		return fmt.Errorf("load preferences > %w", err)
	}
	userLevel, err := vocabulary.ParseLevel(prefs.Level)
	if err != nil {
		return fmt.Errorf("parse user level > %w", err)
	}

	tracker.Update(taskID, 30, "extracting_audio", "extracting chunk audio")
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	if err := os.MkdirAll(o.deps.WorkDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", o.deps.WorkDir, err)
	}
	audioPath = filepath.Join(o.deps.WorkDir, fmt.Sprintf("%s_%s_audio.wav", base, taskID))
	extractErr := o.deps.Extractor.Extract(ctx, videoPath, req.Chunk.StartTime, req.Chunk.EndTime, audioPath)
	switch {
	case extractErr == nil:
	case errors.Is(extractErr, ErrToolMissing):
		// Degraded mode: the whole video becomes the audio source.
		o.logger.Warn("audio extraction tool missing, using whole video",
			"task_id", taskID, "video", videoPath)
		audioPath = videoPath
	default:
		return fmt.Errorf("extract audio > %w", extractErr)
	}

	tracker.Update(taskID, 45, "transcribing", "transcribing chunk audio")
	segments, sourceSRT, err := o.transcribeChunk(ctx, taskID, req, base, videoPath, audioPath, prefs.TargetLanguage)
	if err != nil {
		return err
	}

	tracker.Update(taskID, 60, "filtering_vocabulary", "classifying vocabulary difficulty")
	result, err := o.deps.Filter.Filter(ctx, segments, usr.ID, userLevel, prefs.TargetLanguage, prefs.NativeLanguage)
	if err != nil {
		return fmt.Errorf("filter vocabulary > %w", err)
	}
	if err := o.recordEncounters(ctx, usr.ID, prefs.TargetLanguage, result); err != nil {
		return fmt.Errorf("record vocabulary progress > %w", err)
	}

	tracker.Update(taskID, 75, "generating_subtitles", "writing filtered subtitles")
	subtitlePath, err := o.writeFilteredSubtitles(taskID, base, sourceSRT, result)
	if err != nil {
		return err
	}

	tracker.Update(taskID, 90, "translating", "translating subtitles")
	translatedPath, err := o.translateChunk(ctx, taskID, req, base, segments, prefs)
	if err != nil {
		return err
	}
	if translatedPath != "" {
		subtitlePath = translatedPath
	}

	tracker.Complete(taskID, vocabulary.CandidatesFromResult(result), subtitlePath)
	o.logger.Info("chunk processing completed",
		"task_id", taskID,
		"video", videoPath,
		"segments", len(segments),
		"blockers", len(result.BlockerWords))
	return nil
}

// Progress returns the progress record for a task.
func (o *Orchestrator) Progress(taskID string) (Progress, bool) {
	return o.deps.Tracker.Get(taskID)
}

func (o *Orchestrator) resolveVideoPath(videoPath string) (string, error) {
	if videoPath == "" {
		return "", fmt.Errorf("empty video path")
	}
	if !filepath.IsAbs(videoPath) {
		videoPath = filepath.Join(o.deps.VideosRoot, videoPath)
	}
	return filepath.Clean(videoPath), nil
}

// transcribeChunk produces subtitle segments for the chunk audio. When audio
// extraction degraded to the whole video, an existing subtitle file is
// preferred over re-transcribing. Engine failures fall back to any existing
// SRT matched by filename heuristics; with no fallback the stage is fatal.
func (o *Orchestrator) transcribeChunk(
	ctx context.Context,
	taskID string,
	req Request,
	base, videoPath, audioPath, language string,
) ([]subtitle.Segment, string, error) {
	fallbackMode := audioPath == videoPath
	if fallbackMode {
		if segments, path, ok := o.loadFallbackSRT(videoPath, language); ok {
			o.logger.Info("using existing subtitles instead of transcribing",
				"task_id", taskID, "path", path)
			return segments, path, nil
		}
	}

	engine, err := o.deps.Transcribers.Get(ctx, req.TranscriptionEngine)
	if err == nil {
		var result transcribe.Result
		result, err = engine.Transcribe(ctx, transcribe.Request{
			AudioPath: audioPath,
			Language:  language,
		})
		if err == nil {
			srtPath := filepath.Join(o.deps.WorkDir, fmt.Sprintf("%s_%s.srt", base, taskID))
			if saveErr := subtitle.SaveSegments(srtPath, result.Segments); saveErr != nil {
				return nil, "", fmt.Errorf("save transcription > %w", saveErr)
			}
			return result.Segments, srtPath, nil
		}
	}

	o.logger.Warn("transcription failed, looking for existing subtitles",
		"task_id", taskID, "engine", string(req.TranscriptionEngine), "error", err)
	if segments, path, ok := o.loadFallbackSRT(videoPath, language); ok {
		return segments, path, nil
	}
	return nil, "", fmt.Errorf("transcribe chunk > %w", err)
}

func (o *Orchestrator) loadFallbackSRT(videoPath, language string) ([]subtitle.Segment, string, bool) {
	path, ok := FindFallbackSRT(videoPath, language)
	if !ok {
		return nil, "", false
	}
	segments, err := subtitle.ParseFile(path)
	if err != nil {
		o.logger.Warn("failed to parse fallback subtitles", "path", path, "error", err)
		return nil, "", false
	}
	return segments, path, true
}

// recordEncounters persists first-encounter rows for every blocker lemma so
// later curation and quiz generation can see them.
func (o *Orchestrator) recordEncounters(ctx context.Context, userID int64, language string, result vocabulary.FilterResult) error {
	if o.deps.KnownWords == nil {
		return nil
	}
	for _, blocker := range result.BlockerWords {
		if err := o.deps.KnownWords.RecordProgress(ctx, userID, blocker.Lemma, language, false, 0); err != nil {
			return fmt.Errorf("RecordProgress(%s) > %w", blocker.Lemma, err)
		}
	}
	return nil
}

// writeFilteredSubtitles renders the learner-facing SRT. An empty filter
// result falls back to the unmodified source path rather than failing.
func (o *Orchestrator) writeFilteredSubtitles(taskID, base, sourceSRT string, result vocabulary.FilterResult) (string, error) {
	if len(result.Subtitles) == 0 {
		return sourceSRT, nil
	}

	segments := make([]subtitle.Segment, 0, len(result.Subtitles))
	for _, annotated := range result.Subtitles {
		segments = append(segments, annotated.Segment)
	}

	path := filepath.Join(o.deps.SubtitlesDir, fmt.Sprintf("%s_%s_filtered.srt", base, taskID))
	if err := subtitle.SaveSegments(path, segments); err != nil {
		return "", fmt.Errorf("save filtered subtitles > %w", err)
	}
	return path, nil
}

// translateChunk builds dual-language subtitles for the user's native
// language.
func (o *Orchestrator) translateChunk(
	ctx context.Context,
	taskID string,
	req Request,
	base string,
	segments []subtitle.Segment,
	prefs user.Preferences,
) (string, error) {
	if len(segments) == 0 {
		return "", nil
	}

	engine, err := o.deps.Translators.Get(ctx, req.TranslationEngine)
	if err != nil {
		return "", fmt.Errorf("resolve translation engine > %w", err)
	}

	translated, err := translate.TranslateSegments(ctx, engine, segments, prefs.TargetLanguage, prefs.NativeLanguage)
	if err != nil {
		return "", fmt.Errorf("translate subtitles > %w", err)
	}

	path := filepath.Join(o.deps.SubtitlesDir, fmt.Sprintf("%s_%s_translated.srt", base, taskID))
	if err := subtitle.SaveSegments(path, translated); err != nil {
		return "", fmt.Errorf("save translated subtitles > %w", err)
	}
	return path, nil
}
