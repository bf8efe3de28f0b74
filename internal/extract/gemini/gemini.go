// Package gemini — извлечение структурированного списка тем из
// markdown-контента курса через Gemini (structured JSON output).
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sanketnagare/fpaidcourses/internal/domain"
)

const model = "gemini-2.5-flash-lite"

// Контент режем, чтобы не упереться в лимит токенов.
const maxContentLen = 15000

const extractionPrompt = `You are an expert at analyzing online course curricula.
Given the markdown content of a course page, extract the main topics/modules that the course covers.

Rules:
- Extract 5-15 topics maximum (combine very small topics, split very large ones)
- Order topics logically (prerequisites before advanced topics)
- Keep topic names beginner-friendly and concise (3-8 words)
- If the content seems incomplete or unclear, make reasonable inferences based on the course title
- Provide brief but informative descriptions (1-2 sentences each)
- Estimate realistic learning hours for each topic
- Respond with JSON: {"topics":[{"topic":"...","description":"...","estimatedHours":2.5}]}

Course content to analyze:
`

type Extractor struct {
	client *genai.Client
	logger *log.Logger
}

// New требует ключ сразу, до каких-либо сетевых вызовов.
func New(ctx context.Context, apiKey string, logger *log.Logger) (*Extractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY", domain.ErrMissingConfig)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &Extractor{client: client, logger: logger}, nil
}

func (e *Extractor) Close() {
	if e.client != nil {
		_ = e.client.Close()
	}
}

// Extract возвращает упорядоченный список тем. Сбой самого вызова API
// фатален для запроса; непарсибельный ответ закрывается
// детерминированным fallback-списком.
func (e *Extractor) Extract(ctx context.Context, markdown, courseTitle string) ([]domain.Topic, error) {
	prompt := extractionPrompt
	if courseTitle != "" {
		prompt += "\nCourse Title: " + courseTitle + "\n\n"
	}
	if len(markdown) > maxContentLen {
		markdown = markdown[:maxContentLen]
	}
	prompt += markdown

	m := e.client.GenerativeModel(model)
	m.SetTemperature(0.3)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		e.logger.Printf("generate content failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractFailed, err)
	}

	topics := ParseTopics(responseText(resp))
	if len(topics) == 0 {
		e.logger.Printf("unparseable response, using fallback topics")
		return FallbackTopics(), nil
	}
	e.logger.Printf("extracted %d topics", len(topics))
	return topics, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

type topicItem struct {
	Topic          string   `json:"topic"`
	Description    string   `json:"description"`
	EstimatedHours *float64 `json:"estimatedHours"`
}

type topicList struct {
	Topics []topicItem `json:"topics"`
}

// ParseTopics принимает либо {"topics":[...]}, либо голый массив.
// Нераспознанный вход даёт пустой список (не ошибку).
func ParseTopics(raw string) []domain.Topic {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var list topicList
	if err := json.Unmarshal([]byte(raw), &list); err != nil || len(list.Topics) == 0 {
		var bare []topicItem
		if err := json.Unmarshal([]byte(raw), &bare); err != nil {
			return nil
		}
		list.Topics = bare
	}

	topics := make([]domain.Topic, 0, len(list.Topics))
	for _, item := range list.Topics {
		if item.Topic == "" {
			continue
		}
		topics = append(topics, domain.Topic{
			Order:          len(topics) + 1,
			Name:           item.Topic,
			Description:    item.Description,
			EstimatedHours: item.EstimatedHours,
		})
	}
	return topics
}

// FallbackTopics — детерминированный список, когда извлечение
// невозможно: лучше общая дорожная карта, чем пустой ответ.
func FallbackTopics() []domain.Topic {
	hours := func(h float64) *float64 { return &h }
	return []domain.Topic{
		{Order: 1, Name: "Introduction & Setup", Description: "Getting started with the fundamentals", EstimatedHours: hours(1)},
		{Order: 2, Name: "Core Concepts", Description: "Understanding the main principles", EstimatedHours: hours(3)},
		{Order: 3, Name: "Practical Application", Description: "Hands-on practice and projects", EstimatedHours: hours(4)},
	}
}
