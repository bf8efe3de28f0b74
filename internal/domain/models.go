package domain

import (
	"time"
)

// Тема курса — результат извлечения из учебной программы.
// Неизменяема после создания; Order начинается с 1.
type Topic struct {
	Order          int      `json:"order"`
	Name           string   `json:"topic"`
	Description    string   `json:"description"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
}

// Видео-ресурс. Views и Duration уже отформатированы для показа;
// сырые счётчики наружу не отдаём.
type VideoResource struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Views     string `json:"views"`
	Channel   string `json:"channel"`
	Duration  string `json:"duration,omitempty"`
}

// Ссылка на документацию/туториал.
type DocResource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Тема, дополненная найденными ресурсами. Порядок videos/docs —
// ранжирование резолвера, не порядок обнаружения.
type EnrichedTopic struct {
	ID             int             `json:"id"`
	Order          int             `json:"order"`
	Name           string          `json:"topic"`
	Description    string          `json:"description"`
	EstimatedHours *float64        `json:"estimatedHours,omitempty"`
	Videos         []VideoResource `json:"videos"`
	Documentation  []DocResource   `json:"documentation"`
}

// Метаданные исходного (платного) курса.
type CourseInfo struct {
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	OriginalURL string `json:"originalUrl"`
	TotalTopics int    `json:"totalTopics"`
}

// Итог всего пайплайна. После сборки не меняется: повторный запрос
// того же URL в пределах TTL возвращает этот же объект из кеша.
type RoadmapResult struct {
	Success     bool            `json:"success"`
	Course      CourseInfo      `json:"course"`
	Roadmap     []EnrichedTopic `json:"roadmap"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// Результат скрейпа страницы курса.
type ScrapedCourse struct {
	Title    string
	Platform string
	Markdown string
	URL      string
}
