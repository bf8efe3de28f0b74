// Package hybrid — стратегия A: дешёвое обнаружение кандидатов через
// общий поисковый бэкенд + обогащение одним батч-запросом к
// авторитетному API метаданных. Экономит квоту поиска YouTube.
package hybrid

import (
	"context"
	"log"
	"sort"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
	"github.com/sanketnagare/fpaidcourses/internal/search"
	"github.com/sanketnagare/fpaidcourses/internal/video"
)

// VideoMeta — авторитетные метаданные одного видео.
type VideoMeta struct {
	ID          string
	Title       string
	Channel     string
	Thumbnail   string
	ViewCount   int64
	ISODuration string
}

// MetadataBackend — авторитетный бэкенд метаданных (YouTube Data API).
// Один вызов на батч, не больше batchLimit идентификаторов.
type MetadataBackend interface {
	BatchGet(ctx context.Context, ids []string) ([]VideoMeta, error)
}

// Лимит идентификаторов на один вызов videos.list.
const batchLimit = 50

const discoveryFetch = 10

type Resolver struct {
	backend search.Backend
	meta    MetadataBackend
	log     *log.Logger
}

func New(backend search.Backend, meta MetadataBackend, logger *log.Logger) *Resolver {
	return &Resolver{backend: backend, meta: meta, log: logger}
}

// Resolve: обнаружение → обогащение → ранжирование по просмотрам.
// Сбой обогащения деградирует до сырых результатов обнаружения,
// сбой обнаружения — до пустого списка. Ошибок наружу нет.
func (r *Resolver) Resolve(ctx context.Context, topic string, maxResults int) []domain.VideoResource {
	maxResults = video.ClampMaxResults(maxResults)

	// 1. Обнаружение: site-scoped запрос, кандидатов больше, чем нужно
	raw, err := r.backend.Search(ctx, "site:youtube.com "+topic, discoveryFetch)
	if err != nil {
		r.log.Printf("lvl=warn op=video.discovery msg=%q err=%v", "search failed, no candidates", err)
		return []domain.VideoResource{}
	}

	ids := make([]string, 0, len(raw))
	byID := make(map[string]search.Result, len(raw))
	for _, res := range raw {
		id := video.ExtractVideoID(res.URL)
		if id == "" {
			continue
		}
		if _, seen := byID[id]; seen {
			continue
		}
		ids = append(ids, id)
		byID[id] = res
	}
	if len(ids) == 0 {
		return []domain.VideoResource{}
	}
	if len(ids) > batchLimit {
		ids = ids[:batchLimit]
	}

	// 2. Обогащение: один батч-вызов авторитетного API
	metas, err := r.meta.BatchGet(ctx, ids)
	if err != nil {
		r.log.Printf("lvl=warn op=video.enrich msg=%q err=%v", "enrichment failed, returning raw discovery", err)
		return r.fallback(ids, byID, maxResults)
	}

	type candidate struct {
		res       domain.VideoResource
		viewCount int64
	}

	candidates := make([]candidate, 0, len(metas))
	for _, m := range metas {
		disc := byID[m.ID]

		// авторитетные данные важнее, но пропуски закрываем данными обнаружения
		title := m.Title
		if title == "" {
			title = disc.Title
		}
		channel := m.Channel
		if channel == "" {
			channel = disc.Source
		}
		thumb := m.Thumbnail
		if thumb == "" {
			thumb = disc.ImageURL
		}
		if thumb == "" {
			thumb = video.DefaultThumbnail(m.ID)
		}

		candidates = append(candidates, candidate{
			res: domain.VideoResource{
				Title:     title,
				URL:       video.WatchURL(m.ID),
				Thumbnail: thumb,
				Views:     video.FormatViews(m.ViewCount),
				Channel:   channel,
				Duration:  video.FormatISODuration(m.ISODuration),
			},
			viewCount: m.ViewCount,
		})
	}

	// 3. Ранжирование: просмотры по убыванию, топ maxResults
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].viewCount > candidates[j].viewCount
	})
	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	out := make([]domain.VideoResource, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.res)
	}
	return out
}

// fallback — неранжированные и необогащённые кандидаты обнаружения.
func (r *Resolver) fallback(ids []string, byID map[string]search.Result, maxResults int) []domain.VideoResource {
	if len(ids) > maxResults {
		ids = ids[:maxResults]
	}
	out := make([]domain.VideoResource, 0, len(ids))
	for _, id := range ids {
		res := byID[id]
		title := res.Title
		if title == "" {
			title = "Untitled"
		}
		channel := res.Source
		if channel == "" {
			channel = "YouTube"
		}
		thumb := res.ImageURL
		if thumb == "" {
			thumb = video.DefaultThumbnail(id)
		}
		out = append(out, domain.VideoResource{
			Title:     title,
			URL:       res.URL,
			Thumbnail: thumb,
			Views:     "N/A",
			Channel:   channel,
			Duration:  res.Duration,
		})
	}
	return out
}
