// Package firecrawl — адаптер к Firecrawl: скрейп страницы курса
// в markdown с определением платформы и заголовка.
package firecrawl

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/mendableai/firecrawl-go"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// Паттерны платформ платных курсов.
var platformPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"Udemy", regexp.MustCompile(`udemy\.com`)},
	{"Coursera", regexp.MustCompile(`coursera\.org`)},
	{"Skillshare", regexp.MustCompile(`skillshare\.com`)},
	{"Pluralsight", regexp.MustCompile(`pluralsight\.com`)},
	{"Linkedin", regexp.MustCompile(`linkedin\.com/learning`)},
	{"Edx", regexp.MustCompile(`edx\.org`)},
	{"Udacity", regexp.MustCompile(`udacity\.com`)},
}

var titleSuffixes = []string{" | Udemy", " - Coursera", " | Skillshare"}

type Scraper struct {
	app    *firecrawl.FirecrawlApp
	logger *log.Logger
}

// New требует ключ сразу: без него — ошибка конфигурации, не деградация.
func New(apiKey string, logger *log.Logger) (*Scraper, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: FIRECRAWL_API_KEY", domain.ErrMissingConfig)
	}
	app, err := firecrawl.NewFirecrawlApp(apiKey, "")
	if err != nil {
		return nil, fmt.Errorf("init firecrawl: %w", err)
	}
	return &Scraper{app: app, logger: logger}, nil
}

// Scrape забирает страницу курса. Сбой здесь фатален для запроса:
// без контента курса пайплайну нечего делать.
func (s *Scraper) Scrape(url string) (domain.ScrapedCourse, error) {
	platform := DetectPlatform(url)

	onlyMain := true
	doc, err := s.app.ScrapeURL(url, &firecrawl.ScrapeParams{
		Formats:         []string{"markdown"},
		OnlyMainContent: &onlyMain,
	})
	if err != nil {
		s.logger.Printf("scrape %q failed: %v", url, err)
		return domain.ScrapedCourse{}, fmt.Errorf("%w: %v", domain.ErrScrapeFailed, err)
	}

	metaTitle := ""
	if doc.Metadata != nil && doc.Metadata.Title != nil {
		metaTitle = *doc.Metadata.Title
	}

	course := domain.ScrapedCourse{
		Title:    ExtractTitle(doc.Markdown, metaTitle),
		Platform: platform,
		Markdown: doc.Markdown,
		URL:      url,
	}
	s.logger.Printf("scrape %q ok: platform=%s content=%d bytes", url, platform, len(course.Markdown))
	return course, nil
}

// DetectPlatform определяет площадку по URL.
func DetectPlatform(url string) string {
	urlLower := strings.ToLower(url)
	for _, p := range platformPatterns {
		if p.pattern.MatchString(urlLower) {
			return p.name
		}
	}
	return "Unknown"
}

// ExtractTitle: сперва метаданные (с чисткой суффиксов площадок),
// потом первый заголовок markdown, иначе заглушка.
func ExtractTitle(markdown, metaTitle string) string {
	if metaTitle != "" {
		title := metaTitle
		for _, suffix := range titleSuffixes {
			title = strings.ReplaceAll(title, suffix, "")
		}
		return strings.TrimSpace(title)
	}

	lines := strings.Split(markdown, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	return "Untitled Course"
}
