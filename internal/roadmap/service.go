// Package roadmap — верхний оркестратор пайплайна: кеш → скрейп →
// извлечение тем → конкурентное обогащение → кеш.
package roadmap

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// Scraper — коллаборатор скрейпа; его сбой фатален для запроса.
type Scraper interface {
	Scrape(url string) (domain.ScrapedCourse, error)
}

// TopicExtractor — коллаборатор извлечения тем; сбой фатален.
type TopicExtractor interface {
	Extract(ctx context.Context, markdown, courseTitle string) ([]domain.Topic, error)
}

type Service struct {
	scraper   Scraper
	extractor TopicExtractor
	enricher  *Enricher

	roadmaps domain.Cache // готовые результаты по URL курса
	courses  domain.Cache // сырые ответы скрейпера

	sf  singleflight.Group
	log *log.Logger

	// подменяется в тестах
	now func() time.Time
}

func NewService(scraper Scraper, extractor TopicExtractor, enricher *Enricher,
	roadmaps, courses domain.Cache, logger *log.Logger) *Service {
	return &Service{
		scraper:   scraper,
		extractor: extractor,
		enricher:  enricher,
		roadmaps:  roadmaps,
		courses:   courses,
		log:       logger,
		now:       time.Now,
	}
}

// Generate строит roadmap по URL курса. Попадание в кеш возвращает
// тот же объект без какой-либо работы; singleflight схлопывает
// конкурентные запросы одного URL в одну генерацию.
func (s *Service) Generate(ctx context.Context, url string) (*domain.RoadmapResult, error) {
	if cached, ok := s.roadmaps.Get(domain.CacheKeyRoadmap(url)); ok {
		return cached.(*domain.RoadmapResult), nil
	}

	v, err, _ := s.sf.Do(url, func() (any, error) {
		// пока мы ждали свой слот, сосед мог уже всё сделать
		if cached, ok := s.roadmaps.Get(domain.CacheKeyRoadmap(url)); ok {
			return cached, nil
		}
		return s.generate(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.RoadmapResult), nil
}

func (s *Service) generate(ctx context.Context, url string) (*domain.RoadmapResult, error) {
	course, err := s.scrapeCourse(url)
	if err != nil {
		return nil, err
	}

	topics, err := s.extractor.Extract(ctx, course.Markdown, course.Title)
	if err != nil {
		return nil, fmt.Errorf("extract topics: %w", err)
	}
	s.log.Printf("extracted %d topics for %q", len(topics), course.Title)

	enriched := s.enricher.EnrichAll(ctx, topics)
	if err := ctx.Err(); err != nil {
		// запрос отменили — результат никому не нужен, не кешируем
		return nil, err
	}

	result := &domain.RoadmapResult{
		Success: true,
		Course: domain.CourseInfo{
			Title:       course.Title,
			Platform:    course.Platform,
			OriginalURL: url,
			TotalTopics: len(enriched),
		},
		Roadmap:     enriched,
		GeneratedAt: s.now().UTC(),
	}

	s.roadmaps.Set(domain.CacheKeyRoadmap(url), result)
	return result, nil
}

// scrapeCourse — скрейп с кешем сырых ответов: Firecrawl биллится
// по запросам, одинаковые URL в пределах TTL не скрейпим повторно.
func (s *Service) scrapeCourse(url string) (domain.ScrapedCourse, error) {
	key := domain.CacheKeyScrape(url)
	if cached, ok := s.courses.Get(key); ok {
		return cached.(domain.ScrapedCourse), nil
	}

	course, err := s.scraper.Scrape(url)
	if err != nil {
		return domain.ScrapedCourse{}, fmt.Errorf("scrape course: %w", err)
	}

	s.courses.Set(key, course)
	return course, nil
}
