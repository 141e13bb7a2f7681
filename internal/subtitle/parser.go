package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTimestamp converts an SRT timestamp of the form "HH:MM:SS,mmm" into
// seconds. Any other shape is a format error, never a silent default.
func ParseTimestamp(text string) (float64, error) {
	text = strings.TrimSpace(text)

	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q: expected HH:MM:SS,mmm", text)
	}

	secParts := strings.Split(parts[2], ",")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q: missing millisecond separator", text)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in timestamp %q: %w", text, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in timestamp %q: %w", text, err)
	}
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in timestamp %q: %w", text, err)
	}
	millis, err := strconv.Atoi(secParts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds in timestamp %q: %w", text, err)
	}
	if hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return 0, fmt.Errorf("invalid timestamp %q: negative component", text)
	}

	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000.0, nil
}

// FormatTimestamp is the inverse of ParseTimestamp. It rounds to the nearest
// millisecond and zero-pads every component.
func FormatTimestamp(seconds float64) string {
	totalMs := int64(math.Round(seconds * 1000))
	if totalMs < 0 {
		totalMs = 0
	}

	hours := totalMs / 3600000
	totalMs %= 3600000
	minutes := totalMs / 60000
	totalMs %= 60000
	secs := totalMs / 1000
	millis := totalMs % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// ParseContent parses SRT text into segments. Parsing is lenient at the block
// level: a block with fewer than 3 non-empty lines, a non-integer index line,
// or an unparsable timestamp line is skipped rather than failing the whole
// file. Segments are renumbered sequentially from 1.
func ParseContent(content string) []Segment {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var segments []Segment
	for _, block := range strings.Split(content, "\n\n") {
		segment, ok := parseBlock(block)
		if !ok {
			continue
		}
		segment.Index = len(segments) + 1
		segments = append(segments, segment)
	}
	return segments
}

func parseBlock(block string) (Segment, bool) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 3 {
		return Segment{}, false
	}

	if _, err := strconv.Atoi(lines[0]); err != nil {
		return Segment{}, false
	}

	start, end, err := parseTimingLine(lines[1])
	if err != nil {
		return Segment{}, false
	}

	segment := Segment{StartTime: start, EndTime: end}
	text := strings.Join(lines[2:], "\n")
	if original, translation, ok := splitDualLanguage(text); ok {
		segment.OriginalText = original
		segment.Translation = translation
	} else {
		segment.Text = text
	}
	return segment, true
}

func parseTimingLine(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ParseTimestamp(start) > %w", err)
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ParseTimestamp(end) > %w", err)
	}
	return start, end, nil
}

// splitDualLanguage splits "original | translation" text. The separator must
// appear within a single text line.
func splitDualLanguage(text string) (string, string, bool) {
	if strings.Contains(text, "\n") {
		return "", "", false
	}
	original, translation, found := strings.Cut(text, " | ")
	if !found {
		return "", "", false
	}
	original = strings.TrimSpace(original)
	translation = strings.TrimSpace(translation)
	if original == "" || translation == "" {
		return "", "", false
	}
	return original, translation, true
}

// SegmentsToSRT renders segments as SRT text with 1-based sequential indexes.
// The block structure is emitted even when a segment has no text at all.
func SegmentsToSRT(segments []Segment) string {
	var sb strings.Builder
	for i, segment := range segments {
		text := segment.DisplayText()
		if segment.OriginalText != "" && segment.Translation != "" {
			text = segment.OriginalText + " | " + segment.Translation
		}

		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")
		sb.WriteString(FormatTimestamp(segment.StartTime))
		sb.WriteString(" --> ")
		sb.WriteString(FormatTimestamp(segment.EndTime))
		sb.WriteString("\n")
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
