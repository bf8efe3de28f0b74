package roadmap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanketnagare/fpaidcourses/internal/cache"
	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

type stubScraper struct {
	mu     sync.Mutex
	course domain.ScrapedCourse
	err    error
	calls  int
}

func (s *stubScraper) Scrape(url string) (domain.ScrapedCourse, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return domain.ScrapedCourse{}, s.err
	}
	c := s.course
	c.URL = url
	return c, nil
}

type stubExtractor struct {
	mu     sync.Mutex
	topics []domain.Topic
	err    error
	calls  int
}

func (s *stubExtractor) Extract(_ context.Context, _, _ string) ([]domain.Topic, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.topics, s.err
}

func newTestService(scraper *stubScraper, extractor *stubExtractor, docs *stubDocs, videos *stubVideos) *Service {
	enricher := NewEnricher(docs, videos, 2, 3, discard())
	roadmaps := cache.New(time.Hour, discard())
	courses := cache.New(time.Hour, discard())
	return NewService(scraper, extractor, enricher, roadmaps, courses, discard())
}

func TestGenerateEndToEnd(t *testing.T) {
	scraper := &stubScraper{course: domain.ScrapedCourse{Title: "Go Bootcamp", Platform: "Udemy", Markdown: "# Go Bootcamp"}}
	extractor := &stubExtractor{topics: topicsN(6)}
	docs := &stubDocs{perDoc: 2}
	videos := &stubVideos{perVid: 3}
	svc := newTestService(scraper, extractor, docs, videos)

	got, err := svc.Generate(context.Background(), "https://www.udemy.com/course/go/")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Success)
	assert.Equal(t, "Go Bootcamp", got.Course.Title)
	assert.Equal(t, "Udemy", got.Course.Platform)
	assert.Equal(t, 6, got.Course.TotalTopics)
	assert.False(t, got.GeneratedAt.IsZero())

	require.Len(t, got.Roadmap, 6)
	for i, et := range got.Roadmap {
		assert.Equal(t, i+1, et.Order, "topic order must match extraction order")
		assert.Len(t, et.Documentation, 2)
		assert.Len(t, et.Videos, 3)
	}
}

func TestGenerateCacheHitSkipsPipeline(t *testing.T) {
	scraper := &stubScraper{course: domain.ScrapedCourse{Title: "T", Platform: "Coursera", Markdown: "# T"}}
	extractor := &stubExtractor{topics: topicsN(3)}
	svc := newTestService(scraper, extractor, &stubDocs{perDoc: 1}, &stubVideos{perVid: 1})

	url := "https://www.coursera.org/learn/x"
	first, err := svc.Generate(context.Background(), url)
	require.NoError(t, err)

	second, err := svc.Generate(context.Background(), url)
	require.NoError(t, err)

	// тот же объект, и ни один коллаборатор не дёрнулся второй раз
	assert.Same(t, first, second)
	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, 1, extractor.calls)
}

func TestGenerateScrapeFailureIsFatal(t *testing.T) {
	scraper := &stubScraper{err: fmt.Errorf("%w: 403", domain.ErrScrapeFailed)}
	extractor := &stubExtractor{topics: topicsN(2)}
	svc := newTestService(scraper, extractor, &stubDocs{}, &stubVideos{})

	_, err := svc.Generate(context.Background(), "https://example.com/c")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScrapeFailed)
	assert.Equal(t, 0, extractor.calls)
}

func TestGenerateExtractFailureIsFatal(t *testing.T) {
	scraper := &stubScraper{course: domain.ScrapedCourse{Title: "T", Markdown: "# T"}}
	extractor := &stubExtractor{err: fmt.Errorf("%w: quota", domain.ErrExtractFailed)}
	svc := newTestService(scraper, extractor, &stubDocs{}, &stubVideos{})

	_, err := svc.Generate(context.Background(), "https://example.com/c")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractFailed)
}

func TestGenerateFailureIsNotCached(t *testing.T) {
	scraper := &stubScraper{err: errors.New("boom")}
	extractor := &stubExtractor{topics: topicsN(2)}
	svc := newTestService(scraper, extractor, &stubDocs{perDoc: 1}, &stubVideos{perVid: 1})

	_, err := svc.Generate(context.Background(), "https://example.com/c")
	require.Error(t, err)

	// после починки апстрима тот же URL обслуживается заново
	scraper.mu.Lock()
	scraper.err = nil
	scraper.course = domain.ScrapedCourse{Title: "Fixed", Markdown: "# Fixed"}
	scraper.mu.Unlock()

	got, err := svc.Generate(context.Background(), "https://example.com/c")
	require.NoError(t, err)
	assert.Equal(t, "Fixed", got.Course.Title)
}

func TestGenerateCourseScrapeCached(t *testing.T) {
	scraper := &stubScraper{course: domain.ScrapedCourse{Title: "T", Markdown: "# T"}}
	extractor := &stubExtractor{topics: topicsN(2)}
	svc := newTestService(scraper, extractor, &stubDocs{}, &stubVideos{})

	url := "https://example.com/c"
	_, err := svc.Generate(context.Background(), url)
	require.NoError(t, err)

	// выкидываем готовый roadmap, но сырой скрейп остаётся в своём кеше
	svc.roadmaps.Clear()

	_, err = svc.Generate(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, 2, extractor.calls)
}

func TestGenerateConcurrentRequestsCollapse(t *testing.T) {
	delay := func(string) time.Duration { return 20 * time.Millisecond }
	scraper := &stubScraper{course: domain.ScrapedCourse{Title: "T", Markdown: "# T"}}
	extractor := &stubExtractor{topics: topicsN(2)}
	svc := newTestService(scraper, extractor, &stubDocs{perDoc: 1, delay: delay}, &stubVideos{perVid: 1, delay: delay})

	url := "https://example.com/c"
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Generate(context.Background(), url)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, 1, extractor.calls)
}
