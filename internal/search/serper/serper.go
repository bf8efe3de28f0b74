// Package serper — адаптер к Serper.dev (Google Search API).
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sanketnagare/fpaidcourses/internal/search"
)

const apiURL = "https://google.serper.dev/search"

type Client struct {
	apiKey string
	http   *http.Client
	logger *log.Logger
}

func New(apiKey string, logger *log.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type organicItem struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	ImageURL string `json:"imageUrl"`
	Source   string `json:"source"`
	Duration string `json:"duration"`
}

type searchResponse struct {
	Organic []organicItem `json:"organic"`
}

// Search выполняет один запрос к Serper; ровно num результатов,
// сверх лимита не добираем (каждый вызов биллится).
func (c *Client) Search(ctx context.Context, query string, num int) ([]search.Result, error) {
	body, err := json.Marshal(searchRequest{Q: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("search %q failed: %v", query, err)
		return nil, fmt.Errorf("serper request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("search %q: status %d", query, resp.StatusCode)
		return nil, fmt.Errorf("serper status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([]search.Result, 0, len(parsed.Organic))
	for _, item := range parsed.Organic {
		out = append(out, search.Result{
			Title:    item.Title,
			URL:      item.Link,
			Snippet:  item.Snippet,
			ImageURL: item.ImageURL,
			Source:   item.Source,
			Duration: item.Duration,
		})
	}
	c.logger.Printf("search %q: %d results", query, len(out))
	return out, nil
}
