package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Chunk is a bounded time-range of a source video, processed as one pipeline
// unit. The interval is half-open, in seconds. Chunks are ephemeral: created
// per processing request, never persisted.
type Chunk struct {
	VideoPath string
	StartTime float64
	EndTime   float64
}

// Validate checks the chunk's time interval.
func (c Chunk) Validate() error {
	if c.VideoPath == "" {
		return fmt.Errorf("chunk has no video path")
	}
	if c.StartTime < 0 {
		return fmt.Errorf("chunk start_time %f must be >= 0", c.StartTime)
	}
	if c.EndTime <= c.StartTime {
		return fmt.Errorf("chunk end_time %f must be after start_time %f", c.EndTime, c.StartTime)
	}
	return nil
}

// FindFallbackSRT looks for an existing subtitle file matching the video by
// filename heuristics, in preference order: exact name, language-suffixed
// (dot and underscore forms), then a "_subtitles" suffix.
func FindFallbackSRT(videoPath, language string) (string, bool) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))

	candidates := []string{base + ".srt"}
	if language != "" {
		candidates = append(candidates,
			base+"."+language+".srt",
			base+"_"+language+".srt",
		)
	}
	candidates = append(candidates, base+"_subtitles.srt")

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
