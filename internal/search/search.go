// Package search — поиск бесплатной документации по теме через
// общий веб-поисковый бэкенд.
package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

// Backend — общий поисковый бэкенд (Serper). Оплачивается по запросам,
// поэтому num — жёсткий лимит, больше не запрашиваем.
type Backend interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
}

// Result — сырой результат поиска.
type Result struct {
	Title    string
	URL      string
	Snippet  string
	ImageURL string
	Source   string
	Duration string
}

// Домены с приоритетом: официальная документация и бесплатные
// обучающие площадки.
var priorityDomains = []string{
	"docs.",
	"developer.",
	"learn.",
	"tutorial",
	"guide",
	"mozilla.org",
	"w3schools.com",
	"realpython.com",
	"freecodecamp.org",
	"geeksforgeeks.org",
	"tutorialspoint.com",
}

// Отсекаемые домены: видео ищем отдельно, платные площадки —
// самореферентный шум.
var blockedDomains = []string{
	"youtube.com",
	"udemy.com",
	"coursera.org",
	"skillshare.com",
	"linkedin.com/learning",
	"amazon.com",
	"ebay.com",
}

const maxSnippetLen = 200

// rawFetch — сколько сырых результатов просим, чтобы пережить фильтрацию.
const rawFetch = 10

type DocResolver struct {
	backend Backend
	log     *log.Logger
}

func NewDocResolver(backend Backend, logger *log.Logger) *DocResolver {
	return &DocResolver{backend: backend, log: logger}
}

// Resolve ищет документацию по теме. При сбое апстрима не возвращает
// ошибку — логирует и отдаёт пустой список (запрос в целом не страдает).
func (r *DocResolver) Resolve(ctx context.Context, topic string, maxResults int) []domain.DocResource {
	query := topic + " tutorial documentation guide"

	raw, err := r.backend.Search(ctx, query, rawFetch)
	if err != nil {
		r.log.Printf("lvl=warn op=search.docs msg=%q err=%v", "backend failed, degrading to empty", err)
		return []domain.DocResource{}
	}

	type scored struct {
		doc      domain.DocResource
		priority int
	}

	docs := make([]scored, 0, len(raw))
	for _, res := range raw {
		if res.URL == "" || res.Title == "" {
			continue
		}
		urlLower := strings.ToLower(res.URL)
		if blocked(urlLower) {
			continue
		}

		priority := 0
		for _, d := range priorityDomains {
			if strings.Contains(urlLower, d) {
				priority++
			}
		}

		snippet := res.Snippet
		if len(snippet) > maxSnippetLen {
			snippet = snippet[:maxSnippetLen]
		}

		docs = append(docs, scored{
			doc:      domain.DocResource{Title: res.Title, URL: res.URL, Snippet: snippet},
			priority: priority,
		})
	}

	// стабильная сортировка: при равном приоритете сохраняем порядок поисковика
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].priority > docs[j].priority })

	if len(docs) > maxResults {
		docs = docs[:maxResults]
	}

	out := make([]domain.DocResource, 0, len(docs))
	for _, s := range docs {
		out = append(out, s.doc)
	}
	return out
}

func blocked(urlLower string) bool {
	for _, d := range blockedDomains {
		if strings.Contains(urlLower, d) {
			return true
		}
	}
	return false
}
