// Package probe — стратегия C: поиск и извлечение метаданных через
// универсальный экстрактор (yt-dlp), только info, без скачивания.
// Работает вообще без ключей; самый медленный, зато самый живучий.
package probe

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/wader/goutubedl"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
	"github.com/sanketnagare/fpaidcourses/internal/video"
)

// entry — нормализованная запись экстрактора; битые поля уже отсеяны.
type entry struct {
	id         string
	title      string
	channel    string
	duration   int
	viewCount  int64
	thumbnails []string
}

type Resolver struct {
	log *log.Logger

	// подменяется в тестах
	extract func(ctx context.Context, query string, n int) ([]entry, error)
}

func New(logger *log.Logger) *Resolver {
	return &Resolver{log: logger, extract: ytdlpExtract}
}

// Resolve запрашивает "search and extract N" и ранжирует батч по
// просмотрам. Одна битая запись не валит батч; ошибок наружу нет.
func (r *Resolver) Resolve(ctx context.Context, topic string, maxResults int) []domain.VideoResource {
	maxResults = video.ClampMaxResults(maxResults)

	// просим с запасом: часть записей отсеется
	entries, err := r.extract(ctx, topic, maxResults+2)
	if err != nil {
		r.log.Printf("lvl=warn op=video.probe msg=%q err=%v", "extraction failed, degrading to empty", err)
		return []domain.VideoResource{}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].viewCount > entries[j].viewCount })
	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}

	out := make([]domain.VideoResource, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.VideoResource{
			Title:     e.title,
			URL:       video.WatchURL(e.id),
			Thumbnail: pickThumbnail(e.id, e.thumbnails),
			Views:     video.FormatViews(e.viewCount),
			Channel:   e.channel,
			Duration:  video.FormatSeconds(e.duration),
		})
	}
	return out
}

// pickThumbnail предпочитает средние/высокие варианты по имени файла,
// иначе синтезирует дефолтную превьюшку из идентификатора.
func pickThumbnail(id string, urls []string) string {
	for _, u := range urls {
		if strings.Contains(u, "hqdefault") || strings.Contains(u, "mqdefault") {
			return u
		}
	}
	if len(urls) > 0 && urls[len(urls)-1] != "" {
		return urls[len(urls)-1]
	}
	return video.DefaultThumbnail(id)
}

// ytdlpExtract — реальный вызов yt-dlp: провайдерный "ytsearchN:" запрос,
// изоляция ошибок на уровне записи (битую пропускаем, батч живёт).
func ytdlpExtract(ctx context.Context, query string, n int) ([]entry, error) {
	result, err := goutubedl.New(ctx, fmt.Sprintf("ytsearch%d:%s", n, query), goutubedl.Options{
		Type: goutubedl.TypePlaylist,
	})
	if err != nil {
		return nil, fmt.Errorf("yt-dlp extract: %w", err)
	}

	entries := make([]entry, 0, len(result.Info.Entries))
	for _, info := range result.Info.Entries {
		if info.ID == "" || info.Title == "" {
			continue
		}
		e := entry{
			id:        info.ID,
			title:     info.Title,
			channel:   info.Channel,
			duration:  int(info.Duration),
			viewCount: int64(info.ViewCount),
		}
		if e.channel == "" {
			e.channel = info.Uploader
		}
		for _, t := range info.Thumbnails {
			if t.URL != "" {
				e.thumbnails = append(e.thumbnails, t.URL)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
