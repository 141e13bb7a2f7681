// Package quiz generates vocabulary quiz sessions from spaced-repetition
// state and grades submitted answers.
package quiz

import (
	"strings"
	"time"
)

// QuestionType is the kind of quiz question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFillBlank      QuestionType = "fill_blank"
	QuestionSynonym        QuestionType = "synonym"
	QuestionAntonym        QuestionType = "antonym"
)

// Question is immutable after creation. Options is empty for free-text types.
type Question struct {
	ID            string       `json:"question_id"`
	Type          QuestionType `json:"question_type"`
	Word          string       `json:"word"`
	Prompt        string       `json:"prompt"`
	CorrectAnswer string       `json:"correct_answer"`
	Options       []string     `json:"options,omitempty"`
	Hint          string       `json:"hint,omitempty"`
	Context       string       `json:"context,omitempty"`
}

// IsCorrect grades an answer with case-insensitive, whitespace-trimmed string
// equality.
func (q Question) IsCorrect(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
}

// Session is one user's quiz run. TotalQuestions is fixed at construction.
type Session struct {
	ID             string     `json:"session_id"`
	UserID         int64      `json:"user_id"`
	Language       string     `json:"language"`
	Questions      []Question `json:"questions"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"total_questions"`

	// Answered tracks graded question ids. Guarded by the session store's
	// single-writer discipline.
	Answered map[string]bool `json:"answered"`
}

// Clone returns an independent copy of the session, so readers never share
// maps or slices with an in-flight answer submission.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Questions = make([]Question, len(s.Questions))
	copy(clone.Questions, s.Questions)
	for i, question := range s.Questions {
		if len(question.Options) > 0 {
			clone.Questions[i].Options = append([]string(nil), question.Options...)
		}
	}
	clone.Answered = make(map[string]bool, len(s.Answered))
	for id, answered := range s.Answered {
		clone.Answered[id] = answered
	}
	if s.CompletedAt != nil {
		completedAt := *s.CompletedAt
		clone.CompletedAt = &completedAt
	}
	return &clone
}

// Completed reports whether every question has been answered.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

// NextUnanswered returns the first unanswered question in original order, or
// nil when the session is done.
func (s *Session) NextUnanswered() *Question {
	for i := range s.Questions {
		if !s.Answered[s.Questions[i].ID] {
			return &s.Questions[i]
		}
	}
	return nil
}

// FindQuestion returns the question with the given id, or nil.
func (s *Session) FindQuestion(questionID string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return &s.Questions[i]
		}
	}
	return nil
}
