package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ParseFile reads and parses an SRT file. Files that are not valid UTF-8 are
// re-decoded as ISO-8859-1, which covers most legacy subtitle files in the
// wild.
func ParseFile(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("subtitle file not found: %s", path)
		}
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	if !utf8.Valid(data) {
		decoded, decodeErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode %s as ISO-8859-1 > %w", path, decodeErr)
		}
		data = decoded
	}

	return ParseContent(string(data)), nil
}

// SaveSegments renders segments to an SRT file, creating parent directories as
// needed. A zero-byte result is treated as a write failure and retried once.
func SaveSegments(path string, segments []Segment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}

	content := []byte(SegmentsToSRT(segments))
	if len(content) == 0 {
		// An empty transcript is a valid result, not a failed write.
		if err := os.WriteFile(path, content, 0644); err != nil {
			return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
		return nil
	}
	for attempt := 0; attempt < 2; attempt++ {
		if err := os.WriteFile(path, content, 0644); err != nil {
			return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("os.Stat(%s) > %w", path, err)
		}
		if info.Size() > 0 {
			return nil
		}
	}
	return fmt.Errorf("wrote empty subtitle file: %s", path)
}
