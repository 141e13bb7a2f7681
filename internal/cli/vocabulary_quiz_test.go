package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_srs "github.com/sublearn/sublearn/internal/mocks/srs"
	"github.com/sublearn/sublearn/internal/quiz"
	"github.com/sublearn/sublearn/internal/srs"
)

func newTestQuizCLI(t *testing.T, input string, reviews srs.Repository) (*VocabularyQuizCLI, *bytes.Buffer) {
	t.Helper()

	generator := quiz.NewGenerator(reviews, quiz.NewMemoryStore(time.Hour), nil)
	session, err := generator.GenerateSession(
		context.Background(),
		1,
		"en",
		1,
		[]quiz.QuestionType{quiz.QuestionMultipleChoice},
	)
	require.NoError(t, err)

	var stdout bytes.Buffer
	return &VocabularyQuizCLI{
		InteractiveQuizCLI: &InteractiveQuizCLI{
			stdinReader:  bufio.NewReader(strings.NewReader(input)),
			stdoutWriter: &stdout,
			bold:         color.New(color.Bold),
			italic:       color.New(color.Italic),
		},
		quizzes: generator,
		session: session,
	}, &stdout
}

func TestVocabularyQuizCLI_Session(t *testing.T) {
	item := srs.ReviewItem{
		ID:          1,
		UserID:      1,
		Word:        "ephemeral",
		Translation: "lasting a very short time",
		Language:    "en",
	}

	t.Run("wrong answer shows the correct one and finishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := mock_srs.NewMockRepository(ctrl)
		reviews.EXPECT().FindDueByUser(gomock.Any(), int64(1), "en", gomock.Any()).
			Return([]srs.ReviewItem{item}, nil)
		reviews.EXPECT().FindByUserAndWord(gomock.Any(), int64(1), "ephemeral", "en").
			Return(&item, nil)
		reviews.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *srs.ReviewItem) error {
				assert.Equal(t, "ephemeral", saved.Word)
				assert.Equal(t, 0, saved.Repetitions)
				return nil
			})

		cli, stdout := newTestQuizCLI(t, "definitely wrong\n", reviews)

		err := cli.Session(context.Background())
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrong. The answer was: ")
		assert.Contains(t, stdout.String(), "lasting a very short time")

		err = cli.Session(context.Background())
		assert.True(t, errors.Is(err, errEnd))
		assert.Contains(t, stdout.String(), "Score: 0/1")
	})

	t.Run("numeric input selects the matching option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := mock_srs.NewMockRepository(ctrl)
		reviews.EXPECT().FindDueByUser(gomock.Any(), int64(1), "en", gomock.Any()).
			Return([]srs.ReviewItem{item}, nil)
		reviews.EXPECT().FindByUserAndWord(gomock.Any(), int64(1), "ephemeral", "en").
			Return(&item, nil)
		reviews.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		// With a single review item there are no distractors, so option 1 is
		// always the correct translation. The second line self-rates "easy".
		cli, stdout := newTestQuizCLI(t, "1\n3\n", reviews)

		err := cli.Session(context.Background())
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "How hard was it?")
		assert.Contains(t, stdout.String(), "Correct!")

		err = cli.Session(context.Background())
		assert.True(t, errors.Is(err, errEnd))
		assert.Contains(t, stdout.String(), "Score: 1/1")
	})
}
