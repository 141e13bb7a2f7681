package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sublearn/sublearn/internal/subtitle"
)

//go:generate mockgen -source=engine.go -destination=../mocks/vocabulary/mock_store.go -package=mock_vocabulary

// KnownWordStore is the persisted per-user vocabulary knowledge collaborator.
type KnownWordStore interface {
	IsWordKnown(ctx context.Context, userID int64, lemma, language string) (bool, error)
	RecordProgress(ctx context.Context, userID int64, lemma, language string, isKnown bool, reviewDelta int) error
}

// UnknownWordPolicy decides how to treat words the lexicon does not classify.
type UnknownWordPolicy int

const (
	// BlockUnknownWords treats unclassified words as maximal difficulty.
	BlockUnknownWords UnknownWordPolicy = iota
	// PassUnknownWords lets unclassified words through as learning words.
	PassUnknownWords
)

// WordAnnotation is the per-token classification attached to a learning
// subtitle.
type WordAnnotation struct {
	Word    string `json:"word"`
	Lemma   string `json:"lemma"`
	Level   string `json:"level"`
	Blocker bool   `json:"blocker"`
	Known   bool   `json:"known"`
}

// LearningSubtitle is an original subtitle annotated per word. The original
// casing and punctuation of the subtitle text are preserved.
type LearningSubtitle struct {
	Segment subtitle.Segment `json:"segment"`
	Words   []WordAnnotation `json:"words"`
}

// BlockerWord is a vocabulary item above the user's level, annotated with
// where and how often it appeared.
type BlockerWord struct {
	Word         string   `json:"word"`
	Lemma        string   `json:"lemma"`
	Level        Level    `json:"-"`
	LevelName    string   `json:"level"`
	PartOfSpeech string   `json:"part_of_speech"`
	Translation  string   `json:"translation"`
	Frequency    int      `json:"frequency"`
	Contexts     []string `json:"contexts"`
}

// FilterResult partitions a transcript into blockers and learning material.
type FilterResult struct {
	BlockerWords []BlockerWord      `json:"blocker_words"`
	Subtitles    []LearningSubtitle `json:"subtitles"`
	UnknownWords []string           `json:"unknown_words"`
}

const maxContextSnippets = 3

// Engine classifies transcript words against a user's level and known-word
// set. Filtering is deterministic: the same transcript and known-word set
// always yield the same partition.
type Engine struct {
	lexicon    *Lexicon
	lemmatizer Lemmatizer
	known      KnownWordStore
	policy     UnknownWordPolicy
	logger     *slog.Logger
}

// NewEngine creates a filter engine. A nil lemmatizer falls back to the
// lexicon-guided suffix lemmatizer.
func NewEngine(lexicon *Lexicon, lemmatizer Lemmatizer, known KnownWordStore, policy UnknownWordPolicy) *Engine {
	if lemmatizer == nil {
		lemmatizer = NewSuffixLemmatizer(lexicon)
	}
	return &Engine{
		lexicon:    lexicon,
		lemmatizer: lemmatizer,
		known:      known,
		policy:     policy,
		logger:     slog.Default(),
	}
}

// Filter classifies every token of the given subtitles. A word blocks when its
// level is strictly above userLevel, or when the lexicon does not know it at
// all (subject to the unknown-word policy). Known words never block. An empty
// input yields an empty result.
//
// targetLanguage is the language being learned and keys the known-word
// lookups; nativeLanguage selects the translation shown for blockers.
func (e *Engine) Filter(
	ctx context.Context,
	segments []subtitle.Segment,
	userID int64,
	userLevel Level,
	targetLanguage, nativeLanguage string,
) (FilterResult, error) {
	result := FilterResult{}
	if len(segments) == 0 {
		return result, nil
	}

	blockers := make(map[string]*BlockerWord)
	unknownSeen := make(map[string]bool)
	knownCache := make(map[string]bool)

	for _, segment := range segments {
		annotated := LearningSubtitle{Segment: segment}

		for _, token := range strings.Fields(segment.DisplayText()) {
			lemma := e.lemmatizer.Lemmatize(token)
			if lemma == "" {
				continue
			}

			isKnown, err := e.isKnown(ctx, knownCache, userID, lemma, targetLanguage)
			if err != nil {
				return FilterResult{}, fmt.Errorf("known-word lookup(%s) > %w", lemma, err)
			}

			info, classified := e.lexicon.Lookup(lemma)
			level := LevelUnknown
			if classified {
				level = info.Level
			}

			blocking := !isKnown && level.Above(userLevel)
			if !classified {
				if !unknownSeen[lemma] {
					unknownSeen[lemma] = true
					result.UnknownWords = append(result.UnknownWords, lemma)
				}
				blocking = !isKnown && e.policy == BlockUnknownWords
			}

			annotated.Words = append(annotated.Words, WordAnnotation{
				Word:    token,
				Lemma:   lemma,
				Level:   level.String(),
				Blocker: blocking,
				Known:   isKnown,
			})

			if !blocking {
				continue
			}

			blocker, ok := blockers[lemma]
			if !ok {
				blocker = &BlockerWord{
					Word:         Normalize(token),
					Lemma:        lemma,
					Level:        level,
					LevelName:    level.String(),
					PartOfSpeech: info.PartOfSpeech,
					Translation:  info.Translation(nativeLanguage),
				}
				blockers[lemma] = blocker
			}
			blocker.Frequency++
			if len(blocker.Contexts) < maxContextSnippets {
				blocker.Contexts = append(blocker.Contexts, segment.DisplayText())
			}
		}

		result.Subtitles = append(result.Subtitles, annotated)
	}

	for _, blocker := range blockers {
		result.BlockerWords = append(result.BlockerWords, *blocker)
	}
	sort.Slice(result.BlockerWords, func(i, j int) bool {
		if result.BlockerWords[i].Frequency != result.BlockerWords[j].Frequency {
			return result.BlockerWords[i].Frequency > result.BlockerWords[j].Frequency
		}
		return result.BlockerWords[i].Lemma < result.BlockerWords[j].Lemma
	})
	sort.Strings(result.UnknownWords)

	e.logger.Debug("vocabulary filter finished",
		"segments", len(segments),
		"blockers", len(result.BlockerWords),
		"unknown", len(result.UnknownWords))
	return result, nil
}

func (e *Engine) isKnown(ctx context.Context, cache map[string]bool, userID int64, lemma, language string) (bool, error) {
	if known, ok := cache[lemma]; ok {
		return known, nil
	}
	if e.known == nil {
		cache[lemma] = false
		return false, nil
	}
	known, err := e.known.IsWordKnown(ctx, userID, lemma, language)
	if err != nil {
		return false, err
	}
	cache[lemma] = known
	return known, nil
}
