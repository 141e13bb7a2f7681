// Package subtitle parses and renders SRT subtitle files, including the
// dual-language "original | translation" text convention.
package subtitle

// Segment is a single subtitle block. A Segment is never mutated after
// parsing; filtered or translated variants are built as new slices.
type Segment struct {
	Index        int     `json:"index"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Text         string  `json:"text"`
	OriginalText string  `json:"original_text,omitempty"`
	Translation  string  `json:"translation,omitempty"`
}

// DisplayText returns the text rendered into an SRT block: Text when present,
// otherwise OriginalText, otherwise empty.
func (s Segment) DisplayText() string {
	if s.Text != "" {
		return s.Text
	}
	return s.OriginalText
}
