package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cleaner removes temporary chunk artifacts from the work directory.
type Cleaner struct {
	workDir string
	logger  *slog.Logger
}

// NewCleaner creates a cleaner for a work directory.
func NewCleaner(workDir string) *Cleaner {
	return &Cleaner{workDir: workDir, logger: slog.Default()}
}

// RemoveTempAudio deletes a temporary audio file unless it is the source
// video itself (the degraded-extraction case).
func (c *Cleaner) RemoveTempAudio(audioPath, videoPath string) {
	if audioPath == "" || audioPath == videoPath {
		return
	}
	if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to remove temp audio", "path", audioPath, "error", err)
	}
}

// RemoveStaleArtifacts deletes work-dir files from prior runs of the same
// video, identified by the video's base-name prefix, keeping the current
// task's files.
func (c *Cleaner) RemoveStaleArtifacts(videoPath, keepTaskID string) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	entries, err := os.ReadDir(c.workDir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("failed to list work dir", "dir", c.workDir, "error", err)
		}
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, base+"_") {
			continue
		}
		if keepTaskID != "" && strings.Contains(name, keepTaskID) {
			continue
		}
		path := filepath.Join(c.workDir, name)
		if err := os.Remove(path); err != nil {
			c.logger.Warn("failed to remove stale artifact", "path", path, "error", err)
			continue
		}
		c.logger.Debug("removed stale chunk artifact", "path", path)
	}
}

// Sweep deletes any work-dir file older than maxAge and returns how many
// files were removed. It is meant to run on a schedule.
func (c *Cleaner) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(c.workDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("os.ReadDir(%s) > %w", c.workDir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(c.workDir, entry.Name())
		if err := os.Remove(path); err != nil {
			c.logger.Warn("failed to sweep artifact", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		c.logger.Info("swept stale chunk artifacts", "removed", removed, "max_age", maxAge)
	}
	return removed, nil
}
