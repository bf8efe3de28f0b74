package domain

// Ключи кеша — единое место, чтобы не расползались по коду.
// Неймспейсы двух инстансов не пересекаются: roadmap кеширует готовый
// результат по URL курса, scrape — сырой ответ скрейпера.
func CacheKeyRoadmap(url string) string { return "roadmap:" + url }
func CacheKeyScrape(url string) string  { return "scrape:" + url }

// Простой k/v интерфейс с TTL на уровне инстанса.
// Реализация — internal/cache (in-process).
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, val any)
	Clear()
	Sweep() int
	Len() int
}
