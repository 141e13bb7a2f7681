package transcribe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_transcribe "github.com/sublearn/sublearn/internal/mocks/transcribe"
	"github.com/sublearn/sublearn/internal/transcribe"
)

func TestRegistry_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("instances are memoized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_transcribe.NewMockEngine(ctrl)
		engine.EXPECT().Initialize(ctx).Return(nil).Times(1)

		constructed := 0
		registry := transcribe.NewRegistry()
		registry.Register(transcribe.EngineWhisper, func() (transcribe.Engine, error) {
			constructed++
			return engine, nil
		})

		first, err := registry.Get(ctx, transcribe.EngineWhisper)
		require.NoError(t, err)
		second, err := registry.Get(ctx, transcribe.EngineWhisper)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, constructed)
	})

	t.Run("unknown name", func(t *testing.T) {
		registry := transcribe.NewRegistry()
		_, err := registry.Get(ctx, transcribe.EngineCanary)
		assert.ErrorContains(t, err, `unknown transcription engine "canary"`)
	})

	t.Run("constructor failure is not cached", func(t *testing.T) {
		registry := transcribe.NewRegistry()
		calls := 0
		registry.Register(transcribe.EngineWhisper, func() (transcribe.Engine, error) {
			calls++
			return nil, errors.New("model file missing")
		})

		_, err := registry.Get(ctx, transcribe.EngineWhisper)
		require.ErrorContains(t, err, "construct engine whisper")
		_, err = registry.Get(ctx, transcribe.EngineWhisper)
		require.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("initialize failure wraps as engine error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_transcribe.NewMockEngine(ctrl)
		engine.EXPECT().Initialize(ctx).Return(errors.New("server unreachable"))

		registry := transcribe.NewRegistry()
		registry.Register(transcribe.EngineWhisper, func() (transcribe.Engine, error) { return engine, nil })

		_, err := registry.Get(ctx, transcribe.EngineWhisper)
		var engineErr *transcribe.EngineError
		require.ErrorAs(t, err, &engineErr)
		assert.Equal(t, transcribe.EngineWhisper, engineErr.Engine)
	})
}

func TestRegistry_CleanupAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	healthy := mock_transcribe.NewMockEngine(ctrl)
	healthy.EXPECT().Initialize(ctx).Return(nil)
	healthy.EXPECT().Cleanup().Return(nil)

	failing := mock_transcribe.NewMockEngine(ctrl)
	failing.EXPECT().Initialize(ctx).Return(nil)
	failing.EXPECT().Cleanup().Return(errors.New("socket already closed"))

	registry := transcribe.NewRegistry()
	registry.Register(transcribe.EngineWhisper, func() (transcribe.Engine, error) { return healthy, nil })
	registry.Register(transcribe.EngineCanary, func() (transcribe.Engine, error) { return failing, nil })

	_, err := registry.Get(ctx, transcribe.EngineWhisper)
	require.NoError(t, err)
	_, err = registry.Get(ctx, transcribe.EngineCanary)
	require.NoError(t, err)

	err = registry.CleanupAll()
	assert.ErrorContains(t, err, "cleanup canary")

	// Instances are released; the next Get rebuilds.
	healthy.EXPECT().Initialize(ctx).Return(nil)
	_, err = registry.Get(ctx, transcribe.EngineWhisper)
	require.NoError(t, err)
}

func TestRegistry_Names(t *testing.T) {
	registry := transcribe.NewRegistry()
	registry.Register(transcribe.EngineWhisper, func() (transcribe.Engine, error) { return nil, nil })
	registry.Register(transcribe.EngineParakeet, func() (transcribe.Engine, error) { return nil, nil })

	assert.ElementsMatch(t, []transcribe.Name{transcribe.EngineWhisper, transcribe.EngineParakeet}, registry.Names())
}
