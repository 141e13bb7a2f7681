package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sublearn/sublearn/internal/quiz"
)

// qualities fed into the scheduler for each recall outcome.
const (
	qualityWrong = 1
	qualityHard  = 3
	qualityGood  = 4
	qualityEasy  = 5
)

// VocabularyQuizCLI runs one quiz session in the terminal.
type VocabularyQuizCLI struct {
	*InteractiveQuizCLI
	quizzes *quiz.Generator
	session *quiz.Session
}

// NewVocabularyQuizCLI generates a quiz session for the user and prepares the
// interactive loop.
func NewVocabularyQuizCLI(
	ctx context.Context,
	quizzes *quiz.Generator,
	userID int64,
	language string,
	numQuestions int,
	questionTypes []quiz.QuestionType,
) (*VocabularyQuizCLI, error) {
	session, err := quizzes.GenerateSession(ctx, userID, language, numQuestions, questionTypes)
	if err != nil {
		return nil, fmt.Errorf("quizzes.GenerateSession > %w", err)
	}

	return &VocabularyQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(),
		quizzes:            quizzes,
		session:            session,
	}, nil
}

func (r *VocabularyQuizCLI) Session(ctx context.Context) error {
	question := r.session.NextUnanswered()
	if question == nil {
		fmt.Fprintf(r.stdoutWriter, "\nQuiz finished! Score: %d/%d\n", r.session.Score, r.session.TotalQuestions)
		return errEnd
	}

	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintln(r.stdoutWriter, question.Prompt)
	if question.Context != "" {
		_, _ = r.italic.Fprintf(r.stdoutWriter, "  %s\n", question.Context)
	}
	for i, option := range question.Options {
		fmt.Fprintf(r.stdoutWriter, "  %d) %s\n", i+1, option)
	}
	_, _ = r.bold.Fprintf(r.stdoutWriter, "> ")

	answer, err := r.readLine()
	if err != nil {
		return err
	}
	answer = r.resolveOption(question, answer)

	quality := qualityWrong
	if question.IsCorrect(answer) {
		quality, err = r.askRecallQuality()
		if err != nil {
			return err
		}
	}

	result, err := r.quizzes.SubmitAnswer(ctx, r.session.ID, question.ID, answer, quality)
	if err != nil {
		return fmt.Errorf("quizzes.SubmitAnswer > %w", err)
	}

	if result.IsCorrect {
		_, _ = r.bold.Fprintln(r.stdoutWriter, "Correct!")
	} else {
		fmt.Fprintf(r.stdoutWriter, "Wrong. The answer was: ")
		_, _ = r.bold.Fprintln(r.stdoutWriter, result.CorrectAnswer)
	}

	refreshed, err := r.quizzes.Session(ctx, r.session.ID)
	if err != nil {
		return fmt.Errorf("quizzes.Session > %w", err)
	}
	r.session = refreshed
	return nil
}

// resolveOption maps a numeric choice to the option text for multiple-choice
// questions. Free-text answers pass through unchanged.
func (r *VocabularyQuizCLI) resolveOption(question *quiz.Question, answer string) string {
	if len(question.Options) == 0 {
		return answer
	}
	index := 0
	if _, err := fmt.Sscanf(strings.TrimSpace(answer), "%d", &index); err != nil {
		return answer
	}
	if index < 1 || index > len(question.Options) {
		return answer
	}
	return question.Options[index-1]
}

// askRecallQuality prompts for a self-rating after a correct answer. Empty
// or unrecognized input counts as "good".
func (r *VocabularyQuizCLI) askRecallQuality() (int, error) {
	fmt.Fprint(r.stdoutWriter, "How hard was it? (1=hard, 2=good, 3=easy) ")
	rating, err := r.readLine()
	if err != nil {
		return 0, err
	}
	switch rating {
	case "1":
		return qualityHard, nil
	case "3":
		return qualityEasy, nil
	default:
		return qualityGood, nil
	}
}
