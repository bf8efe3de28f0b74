package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в transport/web/v1)
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrNotFound         = errors.New("not_found")          // 404
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrMissingConfig    = errors.New("missing_config")     // 503: нет обязательного ключа API
	ErrScrapeFailed     = errors.New("scrape_failed")      // 502: скрейпер не смог отдать страницу
	ErrExtractFailed    = errors.New("extract_failed")     // 502: извлечение тем провалилось
	ErrUnexpected       = errors.New("unexpected")         // 500
)

// Коды для конверта ответа
const (
	ErrCodeBadParams        = 400
	ErrCodeNotFound         = 404
	ErrCodeMethodNotAllowed = 405
	ErrCodeUnexpected       = 500
	ErrCodeUpstreamFailed   = 502
	ErrCodeMissingConfig    = 503
)
