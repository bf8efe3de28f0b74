// Package video — контракт резолвера видео и общие хелперы форматирования.
// Три взаимозаменяемых стратегии живут в подпакетах hybrid, ytsearch, probe;
// выбор стратегии — решение деплоя (internal/app), не рантайма.
package video

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// Resolver — общий контракт всех стратегий: никогда не возвращает
// ошибку, при сбоях деградирует до пустого/неранжированного списка.
type Resolver interface {
	Resolve(ctx context.Context, topic string, maxResults int) []domain.VideoResource
}

// ClampMaxResults приводит maxResults к допустимому диапазону [1,5].
func ClampMaxResults(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// Порядок важен: стандартный watch-URL, короткая ссылка, embed.
// Первый совпавший шаблон выигрывает.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID достаёт идентификатор видео из URL; пустая строка,
// если ни один шаблон не подошёл.
func ExtractVideoID(url string) string {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// WatchURL — каноническая ссылка на просмотр по идентификатору.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// DefaultThumbnail — синтезированная превьюшка, когда апстрим её не отдал.
func DefaultThumbnail(id string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id)
}

// FormatViews форматирует счётчик просмотров для показа: 999, 1.5K,
// 2.3M, 1.0B; ноль/отсутствие — "N/A".
func FormatViews(count int64) string {
	switch {
	case count <= 0:
		return "N/A"
	case count >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(count)/1_000_000_000)
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return strconv.FormatInt(count, 10)
	}
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatISODuration переводит ISO-8601 (PT1H2M3S) в H:MM:SS, без часов —
// M:SS. Кривой или пустой вход даёт пустую строку.
func FormatISODuration(iso string) string {
	m := isoDurationRe.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}
	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])
	return FormatSeconds(hours*3600 + minutes*60 + seconds)
}

// FormatSeconds форматирует длительность в секундах теми же правилами.
func FormatSeconds(total int) string {
	if total < 0 {
		return ""
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
