package quiz

import (
	"context"
	"fmt"

	"github.com/sublearn/sublearn/internal/srs"
)

// SubmitResult reports the outcome of grading one answer.
type SubmitResult struct {
	IsCorrect     bool      `json:"is_correct"`
	CorrectAnswer string    `json:"correct_answer"`
	Score         int       `json:"score"`
	Completed     bool      `json:"completed"`
	NextQuestion  *Question `json:"next_question,omitempty"`
}

// SubmitAnswer grades an answer, updates the session score, feeds the quality
// grade into the SM-2 scheduler for the question's word, and advances to the
// next unanswered question in original order. Re-answering an already-answered
// question is rejected.
func (g *Generator) SubmitAnswer(
	ctx context.Context,
	sessionID, questionID, answer string,
	quality int,
) (SubmitResult, error) {
	session, err := g.store.Get(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("store.Get(%s) > %w", sessionID, err)
	}

	question := session.FindQuestion(questionID)
	if question == nil {
		return SubmitResult{}, fmt.Errorf("session %s: %w: %s", sessionID, ErrQuestionNotFound, questionID)
	}
	if session.Answered[questionID] {
		return SubmitResult{}, fmt.Errorf("session %s question %s: %w", sessionID, questionID, ErrAlreadyAnswered)
	}

	isCorrect := question.IsCorrect(answer)
	session.Answered[questionID] = true
	if isCorrect {
		session.Score++
	}

	if err := g.recordReview(ctx, session, question, quality); err != nil {
		return SubmitResult{}, fmt.Errorf("recordReview(%s) > %w", question.Word, err)
	}

	next := session.NextUnanswered()
	if next == nil {
		completedAt := g.now()
		session.CompletedAt = &completedAt
	}
	if err := g.store.Save(ctx, session); err != nil {
		return SubmitResult{}, fmt.Errorf("store.Save > %w", err)
	}

	return SubmitResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Score:         session.Score,
		Completed:     session.Completed(),
		NextQuestion:  next,
	}, nil
}

// recordReview runs the SM-2 transition for the reviewed word and persists the
// superseding item.
func (g *Generator) recordReview(ctx context.Context, session *Session, question *Question, quality int) error {
	now := g.now()

	item, err := g.reviews.FindByUserAndWord(ctx, session.UserID, question.Word, session.Language)
	if err != nil {
		return fmt.Errorf("reviews.FindByUserAndWord > %w", err)
	}
	if item == nil {
		translation := question.CorrectAnswer
		if question.Type == QuestionFillBlank {
			// Fill-blank answers are the word itself; the translation rides
			// in the hint.
			translation = question.Hint
		}
		fresh := srs.NewReviewItem(session.UserID, question.Word, translation, session.Language, now)
		item = &fresh
	}

	updated, err := srs.ScoreReview(*item, quality, now)
	if err != nil {
		return fmt.Errorf("srs.ScoreReview > %w", err)
	}
	updated.ID = item.ID

	if err := g.reviews.Save(ctx, &updated); err != nil {
		return fmt.Errorf("reviews.Save > %w", err)
	}
	return nil
}
