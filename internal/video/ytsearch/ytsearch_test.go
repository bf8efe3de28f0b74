package ytsearch

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	yts "github.com/raitonoberu/ytsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(result *yts.SearchResult, err error) *Resolver {
	r := New(log.New(io.Discard, "", 0))
	r.search = func(_ string) (*yts.SearchResult, error) {
		return result, err
	}
	return r
}

func TestSearchFailureGivesEmpty(t *testing.T) {
	r := newTestResolver(nil, errors.New("blocked"))

	got := r.Resolve(context.Background(), "go", 3)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNilResultGivesEmpty(t *testing.T) {
	r := newTestResolver(nil, nil)

	got := r.Resolve(context.Background(), "go", 3)
	assert.Empty(t, got)
}

func TestMappingSkipsBrokenItems(t *testing.T) {
	r := newTestResolver(&yts.SearchResult{Videos: []*yts.VideoItem{
		nil,
		{ID: "", Title: "no id"},
		{ID: "aaaaaaaaaaa", Title: "ok", ViewCount: 1500, Duration: 309},
	}}, nil)

	got := r.Resolve(context.Background(), "go", 3)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=aaaaaaaaaaa", got[0].URL)
	assert.Equal(t, "1.5K", got[0].Views)
	assert.Equal(t, "5:09", got[0].Duration)
	assert.Equal(t, "https://i.ytimg.com/vi/aaaaaaaaaaa/hqdefault.jpg", got[0].Thumbnail)
}

func TestTruncatedToMax(t *testing.T) {
	items := make([]*yts.VideoItem, 0, 6)
	for _, id := range []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc", "ddddddddddd"} {
		items = append(items, &yts.VideoItem{ID: id, Title: id})
	}
	r := newTestResolver(&yts.SearchResult{Videos: items}, nil)

	got := r.Resolve(context.Background(), "go", 2)
	assert.Len(t, got, 2)
}
