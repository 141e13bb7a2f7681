package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sublearn/sublearn/internal/srs"
)

//go:generate mockgen -source=generator.go -destination=../mocks/quiz/mock_distractors.go -package=mock_quiz

// DistractorSource supplies semantically related words for synonym and
// antonym questions. A nil source falls back to vocabulary distractors.
type DistractorSource interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
	Antonyms(ctx context.Context, word string) ([]string, error)
}

// ErrAlreadyAnswered rejects a second answer to the same question.
var ErrAlreadyAnswered = errors.New("question already answered")

// ErrQuestionNotFound is returned for an unknown question id.
var ErrQuestionNotFound = errors.New("question not found in session")

const optionCount = 4

// Generator builds quiz sessions from persisted review items and grades
// answers, feeding each grade back into the SM-2 scheduler.
type Generator struct {
	reviews     srs.Repository
	store       SessionStore
	distractors DistractorSource
	rng         *rand.Rand
	now         func() time.Time
	logger      *slog.Logger
}

// NewGenerator creates a quiz generator. distractors may be nil.
func NewGenerator(reviews srs.Repository, store SessionStore, distractors DistractorSource) *Generator {
	return &Generator{
		reviews:     reviews,
		store:       store,
		distractors: distractors,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
		logger:      slog.Default(),
	}
}

// GenerateSession selects up to numQuestions items, due items first in their
// scheduler order, padded with shuffled non-due items, and builds one
// randomly-typed question per item.
func (g *Generator) GenerateSession(
	ctx context.Context,
	userID int64,
	language string,
	numQuestions int,
	types []QuestionType,
) (*Session, error) {
	if numQuestions <= 0 {
		return nil, fmt.Errorf("numQuestions must be positive, got %d", numQuestions)
	}
	if len(types) == 0 {
		types = []QuestionType{QuestionMultipleChoice, QuestionFillBlank, QuestionSynonym}
	}

	now := g.now()
	due, err := g.reviews.FindDueByUser(ctx, userID, language, now)
	if err != nil {
		return nil, fmt.Errorf("reviews.FindDueByUser > %w", err)
	}

	selected := due
	if len(selected) > numQuestions {
		selected = selected[:numQuestions]
	} else if len(selected) < numQuestions {
		all, err := g.reviews.FindByUser(ctx, userID, language)
		if err != nil {
			return nil, fmt.Errorf("reviews.FindByUser > %w", err)
		}
		padding := g.shuffledPadding(all, selected, numQuestions-len(selected))
		selected = append(selected, padding...)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no vocabulary available for user %d in %s", userID, language)
	}

	session := &Session{
		ID:             uuid.New().String(),
		UserID:         userID,
		Language:       language,
		StartedAt:      now,
		TotalQuestions: len(selected),
		Answered:       make(map[string]bool),
	}
	for _, item := range selected {
		questionType := types[g.rng.Intn(len(types))]
		question, err := g.buildQuestion(ctx, item, questionType, selected)
		if err != nil {
			return nil, fmt.Errorf("buildQuestion(%s) > %w", item.Word, err)
		}
		session.Questions = append(session.Questions, question)
	}

	if err := g.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store.Create > %w", err)
	}

	g.logger.Info("quiz session created",
		"session_id", session.ID,
		"user_id", userID,
		"questions", len(session.Questions),
		"due", len(due))
	return session, nil
}

// Session returns a stored session by id.
func (g *Generator) Session(ctx context.Context, sessionID string) (*Session, error) {
	session, err := g.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("store.Get(%s) > %w", sessionID, err)
	}
	return session, nil
}

func (g *Generator) shuffledPadding(all, selected []srs.ReviewItem, limit int) []srs.ReviewItem {
	inSelected := make(map[string]bool, len(selected))
	for _, item := range selected {
		inSelected[item.Word] = true
	}

	var rest []srs.ReviewItem
	for _, item := range all {
		if !inSelected[item.Word] {
			rest = append(rest, item)
		}
	}
	g.rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	if len(rest) > limit {
		rest = rest[:limit]
	}
	return rest
}

func (g *Generator) buildQuestion(ctx context.Context, item srs.ReviewItem, questionType QuestionType, pool []srs.ReviewItem) (Question, error) {
	question := Question{
		ID:   uuid.New().String(),
		Type: questionType,
		Word: item.Word,
	}

	switch questionType {
	case QuestionMultipleChoice:
		question.Prompt = fmt.Sprintf("What does %q mean?", item.Word)
		question.CorrectAnswer = item.Translation
		question.Options = g.buildOptions(item.Translation, g.vocabularyDistractors(item, pool))
	case QuestionFillBlank:
		question.CorrectAnswer = item.Word
		question.Hint = item.Translation
		if item.Context != "" {
			question.Context = item.Context
			question.Prompt = maskWord(item.Context, item.Word)
		} else {
			question.Prompt = fmt.Sprintf("Type the word that means %q.", item.Translation)
		}
	case QuestionSynonym, QuestionAntonym:
		relation := "synonym"
		if questionType == QuestionAntonym {
			relation = "antonym"
		}
		question.Prompt = fmt.Sprintf("Which option is closest in meaning to %q?", item.Word)
		if questionType == QuestionAntonym {
			question.Prompt = fmt.Sprintf("Which option is opposite in meaning to %q?", item.Word)
		}
		question.CorrectAnswer = item.Translation
		related, err := g.relatedDistractors(ctx, item.Word, questionType)
		if err != nil {
			g.logger.Warn("distractor lookup failed, falling back to vocabulary",
				"word", item.Word, "relation", relation, "error", err)
		}
		if len(related) == 0 {
			related = g.vocabularyDistractors(item, pool)
		}
		question.Options = g.buildOptions(item.Translation, related)
	default:
		return Question{}, fmt.Errorf("unsupported question type %q", questionType)
	}

	return question, nil
}

func (g *Generator) relatedDistractors(ctx context.Context, word string, questionType QuestionType) ([]string, error) {
	if g.distractors == nil {
		return nil, nil
	}
	if questionType == QuestionAntonym {
		return g.distractors.Antonyms(ctx, word)
	}
	return g.distractors.Synonyms(ctx, word)
}

func (g *Generator) vocabularyDistractors(item srs.ReviewItem, pool []srs.ReviewItem) []string {
	var distractors []string
	for _, other := range pool {
		if other.Word == item.Word || other.Translation == "" {
			continue
		}
		if strings.EqualFold(other.Translation, item.Translation) {
			continue
		}
		distractors = append(distractors, other.Translation)
	}
	return distractors
}

// buildOptions assembles the correct answer plus up to optionCount-1 distinct
// distractors and shuffles the result.
func (g *Generator) buildOptions(correct string, distractors []string) []string {
	options := []string{correct}
	seen := map[string]bool{strings.ToLower(correct): true}

	g.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	for _, distractor := range distractors {
		if len(options) == optionCount {
			break
		}
		key := strings.ToLower(strings.TrimSpace(distractor))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, strings.TrimSpace(distractor))
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func maskWord(context, word string) string {
	masked := strings.ReplaceAll(context, word, "____")
	if masked == context {
		// The context may carry an inflected form; mask case-insensitively.
		lower := strings.ToLower(context)
		idx := strings.Index(lower, strings.ToLower(word))
		if idx >= 0 {
			masked = context[:idx] + "____" + context[idx+len(word):]
		}
	}
	return masked
}
