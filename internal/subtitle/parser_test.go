package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "zero", input: "00:00:00,000", want: 0},
		{name: "typical subtitle time", input: "00:01:23,456", want: 83.456},
		{name: "hours carry", input: "01:02:03,004", want: 3723.004},
		{name: "surrounding whitespace", input: "  00:00:01,500 ", want: 1.5},
		{name: "missing milliseconds", input: "00:01:23", wantErr: true},
		{name: "dot instead of comma", input: "00:01:23.456", wantErr: true},
		{name: "two components", input: "01:23,456", wantErr: true},
		{name: "non-numeric minutes", input: "00:xx:23,456", wantErr: true},
		{name: "negative component", input: "00:-1:23,456", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "00:00:00,000"},
		{name: "rounds to nearest millisecond", input: 83.4564, want: "00:01:23,456"},
		{name: "rounds up", input: 83.4567, want: "00:01:23,457"},
		{name: "over an hour", input: 3723.004, want: "01:02:03,004"},
		{name: "negative clamps to zero", input: -5, want: "00:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.input))
		})
	}
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0, 0.001, 1.5, 59.999, 61.01, 3599.5, 3600, 86399.999} {
		formatted := FormatTimestamp(seconds)
		parsed, err := ParseTimestamp(formatted)
		require.NoError(t, err)
		assert.InDelta(t, seconds, parsed, 0.0005, "round trip of %f via %s", seconds, formatted)
	}
}

func TestParseContent(t *testing.T) {
	t.Run("parses well-formed blocks", func(t *testing.T) {
		content := "1\n00:00:01,000 --> 00:00:03,000\nHello there.\n\n" +
			"2\n00:00:04,000 --> 00:00:06,500\nSecond line\nwith continuation\n"

		segments := ParseContent(content)
		require.Len(t, segments, 2)

		assert.Equal(t, 1, segments[0].Index)
		assert.InDelta(t, 1.0, segments[0].StartTime, 1e-9)
		assert.InDelta(t, 3.0, segments[0].EndTime, 1e-9)
		assert.Equal(t, "Hello there.", segments[0].Text)

		assert.Equal(t, 2, segments[1].Index)
		assert.Equal(t, "Second line\nwith continuation", segments[1].Text)
	})

	t.Run("normalizes CRLF line endings", func(t *testing.T) {
		content := "1\r\n00:00:01,000 --> 00:00:02,000\r\nWindows file\r\n\r\n"

		segments := ParseContent(content)
		require.Len(t, segments, 1)
		assert.Equal(t, "Windows file", segments[0].Text)
	})

	t.Run("skips malformed blocks and renumbers", func(t *testing.T) {
		content := "1\n00:00:01,000 --> 00:00:02,000\nGood one\n\n" +
			"not-a-number\n00:00:03,000 --> 00:00:04,000\nBad index\n\n" +
			"3\nnot a timing line\nBad timing\n\n" +
			"4\n00:00:05,000 --> 00:00:06,000\nGood two\n\n" +
			"5\n00:00:07,000 --> 00:00:08,000\n\n"

		segments := ParseContent(content)
		require.Len(t, segments, 2)
		assert.Equal(t, 1, segments[0].Index)
		assert.Equal(t, "Good one", segments[0].Text)
		assert.Equal(t, 2, segments[1].Index)
		assert.Equal(t, "Good two", segments[1].Text)
	})

	t.Run("splits dual-language text", func(t *testing.T) {
		content := "1\n00:00:01,000 --> 00:00:02,000\nGuten Tag | Good day\n\n"

		segments := ParseContent(content)
		require.Len(t, segments, 1)
		assert.Equal(t, "Guten Tag", segments[0].OriginalText)
		assert.Equal(t, "Good day", segments[0].Translation)
		assert.Empty(t, segments[0].Text)
	})

	t.Run("pipe across lines is not dual language", func(t *testing.T) {
		content := "1\n00:00:01,000 --> 00:00:02,000\nfirst line\nsecond | part\n\n"

		segments := ParseContent(content)
		require.Len(t, segments, 1)
		assert.Equal(t, "first line\nsecond | part", segments[0].Text)
		assert.Empty(t, segments[0].OriginalText)
	})

	t.Run("empty content yields no segments", func(t *testing.T) {
		assert.Empty(t, ParseContent(""))
	})
}

func TestSegmentsToSRT(t *testing.T) {
	t.Run("renders and renumbers", func(t *testing.T) {
		segments := []Segment{
			{Index: 7, StartTime: 1, EndTime: 2.5, Text: "First"},
			{Index: 9, StartTime: 3, EndTime: 4, Text: "Second"},
		}

		want := "1\n00:00:01,000 --> 00:00:02,500\nFirst\n\n" +
			"2\n00:00:03,000 --> 00:00:04,000\nSecond\n\n"
		assert.Equal(t, want, SegmentsToSRT(segments))
	})

	t.Run("renders dual-language segments with pipe", func(t *testing.T) {
		segments := []Segment{
			{StartTime: 1, EndTime: 2, OriginalText: "Hallo", Translation: "Hello"},
		}

		assert.Contains(t, SegmentsToSRT(segments), "Hallo | Hello")
	})

	t.Run("keeps block structure for empty text", func(t *testing.T) {
		segments := []Segment{{StartTime: 0, EndTime: 1}}

		assert.Equal(t, "1\n00:00:00,000 --> 00:00:01,000\n\n\n", SegmentsToSRT(segments))
	})
}

func TestParseContentRoundTrip(t *testing.T) {
	segments := []Segment{
		{StartTime: 1.25, EndTime: 3.75, Text: "Plain text"},
		{StartTime: 4, EndTime: 6, OriginalText: "Original", Translation: "Translated"},
	}

	parsed := ParseContent(SegmentsToSRT(segments))
	require.Len(t, parsed, 2)
	assert.Equal(t, "Plain text", parsed[0].Text)
	assert.InDelta(t, 1.25, parsed[0].StartTime, 1e-9)
	assert.Equal(t, "Original", parsed[1].OriginalText)
	assert.Equal(t, "Translated", parsed[1].Translation)
}
