package probe

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(entries []entry, err error) *Resolver {
	r := New(log.New(io.Discard, "", 0))
	r.extract = func(_ context.Context, _ string, _ int) ([]entry, error) {
		return entries, err
	}
	return r
}

func TestExtractionFailureGivesEmpty(t *testing.T) {
	r := newTestResolver(nil, errors.New("yt-dlp exited 1"))

	got := r.Resolve(context.Background(), "go", 3)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankedByViewsAndTruncated(t *testing.T) {
	r := newTestResolver([]entry{
		{id: "aaaaaaaaaaa", title: "low", viewCount: 100, duration: 69},
		{id: "bbbbbbbbbbb", title: "high", viewCount: 5_000_000, duration: 3723},
		{id: "ccccccccccc", title: "mid", viewCount: 40_000},
	}, nil)

	got := r.Resolve(context.Background(), "go", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].Title)
	assert.Equal(t, "5.0M", got[0].Views)
	assert.Equal(t, "1:02:03", got[0].Duration)
	assert.Equal(t, "mid", got[1].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=bbbbbbbbbbb", got[0].URL)
}

func TestThumbnailPreference(t *testing.T) {
	r := newTestResolver([]entry{
		{id: "aaaaaaaaaaa", title: "a", thumbnails: []string{
			"https://i.ytimg.com/vi/aaaaaaaaaaa/default.jpg",
			"https://i.ytimg.com/vi/aaaaaaaaaaa/hqdefault.jpg",
			"https://i.ytimg.com/vi/aaaaaaaaaaa/maxresdefault.jpg",
		}},
	}, nil)

	got := r.Resolve(context.Background(), "go", 1)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Thumbnail, "hqdefault")
}

func TestThumbnailSynthesizedWhenAbsent(t *testing.T) {
	r := newTestResolver([]entry{{id: "aaaaaaaaaaa", title: "a"}}, nil)

	got := r.Resolve(context.Background(), "go", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "https://i.ytimg.com/vi/aaaaaaaaaaa/hqdefault.jpg", got[0].Thumbnail)
}
