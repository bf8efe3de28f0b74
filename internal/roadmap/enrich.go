package roadmap

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// DocResolver — резолвер документации; по контракту не возвращает
// ошибок, при сбоях отдаёт пустой список.
type DocResolver interface {
	Resolve(ctx context.Context, topic string, maxResults int) []domain.DocResource
}

// VideoResolver — то же для видео (одна из трёх стратегий).
type VideoResolver interface {
	Resolve(ctx context.Context, topic string, maxResults int) []domain.VideoResource
}

// Enricher разворачивает список тем в конкурентные пары
// (документация, видео) и собирает результат, сохраняя порядок входа.
type Enricher struct {
	docs      DocResolver
	videos    VideoResolver
	maxDocs   int
	maxVideos int
	log       *log.Logger
}

func NewEnricher(docs DocResolver, videos VideoResolver, maxDocs, maxVideos int, logger *log.Logger) *Enricher {
	return &Enricher{docs: docs, videos: videos, maxDocs: maxDocs, maxVideos: maxVideos, log: logger}
}

// EnrichAll — fan-out/fan-in: горутина на тему, внутри — параллельные
// вызовы обоих резолверов. Join индексированный: results[i] всегда
// соответствует topics[i], какой бы ни был порядок завершения.
// Сбои уже поглощены резолверами, поэтому ветки ошибок здесь нет —
// только отмена родительского контекста.
func (e *Enricher) EnrichAll(ctx context.Context, topics []domain.Topic) []domain.EnrichedTopic {
	results := make([]domain.EnrichedTopic, len(topics))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range topics {
		g.Go(func() error {
			var (
				videos []domain.VideoResource
				docs   []domain.DocResource
				wg     sync.WaitGroup
			)
			wg.Add(2)
			go func() {
				defer wg.Done()
				videos = e.videos.Resolve(ctx, t.Name+" tutorial", e.maxVideos)
			}()
			go func() {
				defer wg.Done()
				docs = e.docs.Resolve(ctx, t.Name, e.maxDocs)
			}()
			wg.Wait()

			e.log.Printf("topic %d %q: %d videos, %d docs", t.Order, t.Name, len(videos), len(docs))
			results[i] = domain.EnrichedTopic{
				ID:             i + 1,
				Order:          t.Order,
				Name:           t.Name,
				Description:    t.Description,
				EstimatedHours: t.EstimatedHours,
				Videos:         videos,
				Documentation:  docs,
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
