// Package pipeline orchestrates per-chunk video processing: audio extraction,
// transcription, vocabulary filtering, subtitle generation and translation,
// with progress bookkeeping and cleanup at every stage.
package pipeline

import (
	"sync"
	"time"

	"github.com/sublearn/sublearn/internal/vocabulary"
)

// Status is the lifecycle state of one processing task.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Progress is the externally visible record of one task. The status and
// message fields are the sole failure channel for polling clients.
type Progress struct {
	Status       Status                 `json:"status"`
	Progress     float64                `json:"progress"`
	CurrentStep  string                 `json:"current_step"`
	Message      string                 `json:"message"`
	Vocabulary   []vocabulary.Candidate `json:"vocabulary,omitempty"`
	SubtitlePath string                 `json:"subtitle_path,omitempty"`
}

// Tracker is a concurrent progress map keyed by task id. Each task id is
// written by exactly one orchestrator run at a time; readers may poll
// concurrently. Cross-task collisions on the same id are a caller error.
type Tracker struct {
	mu       sync.RWMutex
	records  map[string]Progress
	finished map[string]time.Time
}

// NewTracker creates an empty progress tracker.
func NewTracker() *Tracker {
	return &Tracker{
		records:  make(map[string]Progress),
		finished: make(map[string]time.Time),
	}
}

// Init creates or overwrites the record for a task.
func (t *Tracker) Init(taskID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.finished, taskID)
	t.records[taskID] = Progress{
		Status:      StatusProcessing,
		Progress:    0,
		CurrentStep: "initializing",
		Message:     "processing started",
	}
}

// Update advances a task's progress and step description.
func (t *Tracker) Update(taskID string, percent float64, step, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	record := t.records[taskID]
	record.Status = StatusProcessing
	record.Progress = percent
	record.CurrentStep = step
	record.Message = message
	t.records[taskID] = record
}

// Fail records a task failure. Partial vocabulary or subtitle output is never
// presented on a failed record.
func (t *Tracker) Fail(taskID string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	record := t.records[taskID]
	record.Status = StatusError
	record.Message = err.Error()
	record.Vocabulary = nil
	record.SubtitlePath = ""
	t.records[taskID] = record
	t.finished[taskID] = time.Now()
}

// Complete marks a task finished and attaches its outputs.
func (t *Tracker) Complete(taskID string, candidates []vocabulary.Candidate, subtitlePath string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records[taskID] = Progress{
		Status:       StatusCompleted,
		Progress:     100,
		CurrentStep:  "completed",
		Message:      "processing finished",
		Vocabulary:   candidates,
		SubtitlePath: subtitlePath,
	}
	t.finished[taskID] = time.Now()
}

// Get returns a snapshot of a task's record.
func (t *Tracker) Get(taskID string) (Progress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	record, ok := t.records[taskID]
	return record, ok
}

// Evict drops completed and failed records whose terminal state is older than
// maxAge, returning how many were dropped. Records still processing are never
// evicted. It is meant to run on a schedule.
func (t *Tracker) Evict(maxAge time.Duration, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for taskID, finishedAt := range t.finished {
		if now.Sub(finishedAt) > maxAge {
			delete(t.records, taskID)
			delete(t.finished, taskID)
			evicted++
		}
	}
	return evicted
}
