package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatViews(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "N/A"},
		{-1, "N/A"},
		{999, "999"},
		{1500, "1.5K"},
		{2_300_000, "2.3M"},
		{1_000_000_000, "1.0B"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatViews(tc.in), "count=%d", tc.in)
	}
}

func TestFormatISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT5M9S", "5:09"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"", ""},
		{"garbage", ""},
		{"1H2M", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatISODuration(tc.in), "iso=%q", tc.in)
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0:07", FormatSeconds(7))
	assert.Equal(t, "12:34", FormatSeconds(12*60+34))
	assert.Equal(t, "1:00:01", FormatSeconds(3601))
	assert.Equal(t, "", FormatSeconds(-5))
}

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", "dQw4w9WgXcQ"},
		{"https://example.com/article", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractVideoID(tc.url), "url=%q", tc.url)
	}
}

func TestClampMaxResults(t *testing.T) {
	assert.Equal(t, 1, ClampMaxResults(0))
	assert.Equal(t, 1, ClampMaxResults(-3))
	assert.Equal(t, 3, ClampMaxResults(3))
	assert.Equal(t, 5, ClampMaxResults(9))
}
