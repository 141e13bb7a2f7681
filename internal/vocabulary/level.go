// Package vocabulary classifies transcript words against a learner's CEFR
// level and known-word set, and builds vocabulary candidates in the strict
// shape consumed by downstream validators.
package vocabulary

import (
	"fmt"
	"strings"
)

// Level is a CEFR difficulty band. Levels are ordered: A1 < A2 < B1 < B2 <
// C1 < C2. LevelUnknown sorts above C2 so that unclassified words always
// block.
type Level int

const (
	LevelA1 Level = iota + 1
	LevelA2
	LevelB1
	LevelB2
	LevelC1
	LevelC2
	LevelUnknown
)

var levelNames = map[Level]string{
	LevelA1:      "A1",
	LevelA2:      "A2",
	LevelB1:      "B1",
	LevelB2:      "B2",
	LevelC1:      "C1",
	LevelC2:      "C2",
	LevelUnknown: "unknown",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Above reports whether l is strictly harder than other.
func (l Level) Above(other Level) bool {
	return l > other
}

// ParseLevel parses a CEFR band name, case-insensitively.
func ParseLevel(text string) (Level, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	for level, name := range levelNames {
		if level == LevelUnknown {
			continue
		}
		if name == normalized {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown CEFR level: %q", text)
}
