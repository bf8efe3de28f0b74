// Package ytsearch — стратегия B: прямой запрос к поисковой выдаче
// видеоплатформы через библиотеку-индекс, без авторитетного ключа.
package ytsearch

import (
	"context"
	"log"

	yts "github.com/raitonoberu/ytsearch"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
	"github.com/sanketnagare/fpaidcourses/internal/video"
)

type Resolver struct {
	log *log.Logger

	// подменяется в тестах
	search func(query string) (*yts.SearchResult, error)
}

func New(logger *log.Logger) *Resolver {
	return &Resolver{
		log: logger,
		search: func(query string) (*yts.SearchResult, error) {
			return yts.VideoSearch(query).Next()
		},
	}
}

// Resolve маппит выдачу индекса напрямую в ресурсы. Один кривой
// результат пропускается, батч не прерывается; ошибок наружу нет.
func (r *Resolver) Resolve(ctx context.Context, topic string, maxResults int) []domain.VideoResource {
	maxResults = video.ClampMaxResults(maxResults)

	if err := ctx.Err(); err != nil {
		return []domain.VideoResource{}
	}

	result, err := r.search(topic)
	if err != nil {
		r.log.Printf("lvl=warn op=video.index msg=%q err=%v", "search failed, degrading to empty", err)
		return []domain.VideoResource{}
	}
	if result == nil {
		return []domain.VideoResource{}
	}

	out := make([]domain.VideoResource, 0, maxResults)
	for _, item := range result.Videos {
		if len(out) == maxResults {
			break
		}
		if item == nil || item.ID == "" || item.Title == "" {
			continue
		}

		thumb := ""
		if n := len(item.Thumbnails); n > 0 {
			// последняя — самая крупная
			thumb = item.Thumbnails[n-1].URL
		}
		if thumb == "" {
			thumb = video.DefaultThumbnail(item.ID)
		}

		channel := item.Channel.Title

		out = append(out, domain.VideoResource{
			Title:     item.Title,
			URL:       video.WatchURL(item.ID),
			Thumbnail: thumb,
			Views:     video.FormatViews(int64(item.ViewCount)),
			Channel:   channel,
			Duration:  video.FormatSeconds(item.Duration),
		})
	}
	return out
}
