package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"time"
)

var (
	// ErrToolMissing means the external extraction tool is not installed.
	// Callers degrade to using the whole video file as the audio source.
	ErrToolMissing = errors.New("audio extraction tool not found")

	// ErrTimeout means extraction exceeded its deadline. The external
	// process is killed and the stage is fatal.
	ErrTimeout = errors.New("audio extraction timed out")
)

// AudioExtractor invokes ffmpeg to extract a mono 16kHz wav for a sub-range
// of a video file.
type AudioExtractor struct {
	ffmpegPath string
	timeout    time.Duration
	logger     *slog.Logger
}

// NewAudioExtractor creates an extractor. ffmpegPath defaults to "ffmpeg" on
// the PATH; timeout bounds each extraction call.
func NewAudioExtractor(ffmpegPath string, timeout time.Duration) *AudioExtractor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &AudioExtractor{
		ffmpegPath: ffmpegPath,
		timeout:    timeout,
		logger:     slog.Default(),
	}
}

// Extract writes the [startTime, endTime) audio sub-range of videoPath to
// outputPath. Tool-not-found and timeout are reported as their sentinel
// errors; any other failure carries the ffmpeg exit error.
func (e *AudioExtractor) Extract(ctx context.Context, videoPath string, startTime, endTime float64, outputPath string) error {
	if endTime <= startTime {
		return fmt.Errorf("invalid chunk range [%f, %f)", startTime, endTime)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// CommandContext kills the process when the deadline fires.
	cmd := exec.CommandContext(ctx, e.ffmpegPath,
		"-y",
		"-ss", fmt.Sprintf("%.3f", startTime),
		"-t", fmt.Sprintf("%.3f", endTime-startTime),
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		outputPath,
	)

	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	// LookPath misses report ErrNotFound; a missing explicit binary path
	// reports ErrNotExist.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrToolMissing, e.ffmpegPath)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
	}
	return fmt.Errorf("ffmpeg failed: %w: %s", err, string(output))
}
