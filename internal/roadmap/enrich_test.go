package roadmap

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

type stubDocs struct {
	mu      sync.Mutex
	queries []string
	perDoc  int
	delay   func(topic string) time.Duration
}

func (s *stubDocs) Resolve(_ context.Context, topic string, maxResults int) []domain.DocResource {
	if s.delay != nil {
		time.Sleep(s.delay(topic))
	}
	s.mu.Lock()
	s.queries = append(s.queries, topic)
	s.mu.Unlock()

	n := s.perDoc
	if n > maxResults {
		n = maxResults
	}
	out := make([]domain.DocResource, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.DocResource{Title: fmt.Sprintf("%s doc %d", topic, i), URL: "https://docs.example/" + topic})
	}
	return out
}

type stubVideos struct {
	mu      sync.Mutex
	queries []string
	perVid  int
	delay   func(topic string) time.Duration
}

func (s *stubVideos) Resolve(_ context.Context, topic string, maxResults int) []domain.VideoResource {
	if s.delay != nil {
		time.Sleep(s.delay(topic))
	}
	s.mu.Lock()
	s.queries = append(s.queries, topic)
	s.mu.Unlock()

	n := s.perVid
	if n > maxResults {
		n = maxResults
	}
	out := make([]domain.VideoResource, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.VideoResource{Title: fmt.Sprintf("%s video %d", topic, i), Views: "N/A"})
	}
	return out
}

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func topicsN(n int) []domain.Topic {
	out := make([]domain.Topic, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Topic{Order: i, Name: fmt.Sprintf("topic-%d", i), Description: "d"})
	}
	return out
}

func TestEnrichAllOneToOne(t *testing.T) {
	docs := &stubDocs{perDoc: 2}
	videos := &stubVideos{perVid: 3}
	e := NewEnricher(docs, videos, 2, 3, discard())

	got := e.EnrichAll(context.Background(), topicsN(4))
	require.Len(t, got, 4)
	for i, et := range got {
		assert.Equal(t, i+1, et.ID)
		assert.Equal(t, i+1, et.Order)
		assert.Len(t, et.Documentation, 2)
		assert.Len(t, et.Videos, 3)
	}
}

func TestEnrichAllQueryTemplates(t *testing.T) {
	docs := &stubDocs{}
	videos := &stubVideos{}
	e := NewEnricher(docs, videos, 2, 3, discard())

	e.EnrichAll(context.Background(), []domain.Topic{{Order: 1, Name: "goroutines"}})
	require.Len(t, docs.queries, 1)
	require.Len(t, videos.queries, 1)
	assert.Equal(t, "goroutines", docs.queries[0])
	assert.Equal(t, "goroutines tutorial", videos.queries[0])
}

func TestEnrichAllPreservesOrderUnderReorderedCompletion(t *testing.T) {
	// первые темы завершаются последними
	delay := func(topic string) time.Duration {
		switch topic {
		case "topic-1", "topic-1 tutorial":
			return 60 * time.Millisecond
		case "topic-2", "topic-2 tutorial":
			return 30 * time.Millisecond
		default:
			return 0
		}
	}
	docs := &stubDocs{perDoc: 1, delay: delay}
	videos := &stubVideos{perVid: 1, delay: delay}
	e := NewEnricher(docs, videos, 2, 3, discard())

	got := e.EnrichAll(context.Background(), topicsN(5))
	require.Len(t, got, 5)
	for i, et := range got {
		assert.Equal(t, fmt.Sprintf("topic-%d", i+1), et.Name, "index %d", i)
	}
}

func TestEnrichAllEmptyInput(t *testing.T) {
	e := NewEnricher(&stubDocs{}, &stubVideos{}, 2, 3, discard())

	got := e.EnrichAll(context.Background(), nil)
	assert.Empty(t, got)
}
