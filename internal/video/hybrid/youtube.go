package hybrid

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// YouTubeClient — адаптер к YouTube Data API v3 (videos.list).
type YouTubeClient struct {
	svc    *youtube.Service
	logger *log.Logger
}

// NewYouTubeClient требует ключ сразу, до каких-либо сетевых вызовов:
// отсутствие credential — ошибка конфигурации, а не рантайм-деградация.
func NewYouTubeClient(ctx context.Context, apiKey string, logger *log.Logger) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: YOUTUBE_API_KEY", domain.ErrMissingConfig)
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init youtube service: %w", err)
	}
	return &YouTubeClient{svc: svc, logger: logger}, nil
}

// BatchGet забирает метаданные всех идентификаторов одним вызовом.
func (c *YouTubeClient) BatchGet(ctx context.Context, ids []string) ([]VideoMeta, error) {
	if len(ids) > batchLimit {
		ids = ids[:batchLimit]
	}

	resp, err := c.svc.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		c.logger.Printf("videos.list failed: %v", err)
		return nil, fmt.Errorf("videos.list: %w", err)
	}

	out := make([]VideoMeta, 0, len(resp.Items))
	for _, item := range resp.Items {
		m := VideoMeta{ID: item.Id}
		if item.Snippet != nil {
			m.Title = item.Snippet.Title
			m.Channel = item.Snippet.ChannelTitle
			m.Thumbnail = bestThumbnail(item.Snippet.Thumbnails)
		}
		if item.ContentDetails != nil {
			m.ISODuration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			m.ViewCount = int64(item.Statistics.ViewCount)
		}
		out = append(out, m)
	}
	c.logger.Printf("videos.list: %d/%d items", len(out), len(ids))
	return out, nil
}

func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
