package translate

import (
	"context"
	"fmt"

	"github.com/sublearn/sublearn/internal/subtitle"
)

// TranslateSegments builds a new dual-language segment list from source
// subtitles. The input segments are never mutated; each output segment
// carries the original text and its translation for side-by-side display.
func TranslateSegments(
	ctx context.Context,
	engine Engine,
	segments []subtitle.Segment,
	sourceLang, targetLang string,
) ([]subtitle.Segment, error) {
	translated := make([]subtitle.Segment, 0, len(segments))
	for _, segment := range segments {
		text := segment.DisplayText()
		if text == "" {
			translated = append(translated, segment)
			continue
		}

		result, err := engine.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			return nil, fmt.Errorf("translate segment %d > %w", segment.Index, err)
		}

		translated = append(translated, subtitle.Segment{
			Index:        segment.Index,
			StartTime:    segment.StartTime,
			EndTime:      segment.EndTime,
			OriginalText: text,
			Translation:  result.TranslatedText,
		})
	}
	return translated, nil
}
