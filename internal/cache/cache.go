// Package cache — in-process TTL-кеш для дорогих ответов апстримов.
// Ключи хэшируются (fingerprint), протухшие записи удаляются лениво
// при чтении; Sweep — явная уборка, для корректности не обязателен.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"sync"
	"time"
)

type entry struct {
	value    any
	storedAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	logger  *log.Logger

	// подменяется в тестах
	now func() time.Time
}

func New(ttl time.Duration, logger *log.Logger) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// fingerprint — стабильный хэш ключа; сам ключ в памяти не храним.
func fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Get возвращает значение, если оно есть и не протухло.
// Протухшую запись удаляет на месте (lazy expiry).
func (c *Cache) Get(key string) (any, bool) {
	h := fingerprint(key)

	c.mu.RLock()
	e, ok := c.entries[h]
	c.mu.RUnlock()

	if !ok {
		c.logger.Printf("GET %q: miss", key)
		return nil, false
	}

	if c.now().Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		// запись могли перезаписать, пока мы брали write-lock
		if cur, ok := c.entries[h]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, h)
		}
		c.mu.Unlock()
		c.logger.Printf("GET %q: expired", key)
		return nil, false
	}

	c.logger.Printf("GET %q: hit", key)
	return e.value, true
}

// Set всегда перезаписывает запись со свежей меткой времени.
func (c *Cache) Set(key string, val any) {
	h := fingerprint(key)
	c.mu.Lock()
	c.entries[h] = entry{value: val, storedAt: c.now()}
	c.mu.Unlock()
	c.logger.Printf("SET %q ok (ttl=%s)", key, c.ttl)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	c.logger.Printf("CLEAR: dropped=%d", n)
}

// Sweep удаляет все протухшие записи и возвращает их число.
// Нужен только чтобы ограничить рост памяти при редких чтениях.
func (c *Cache) Sweep() int {
	now := c.now()
	c.mu.Lock()
	removed := 0
	for h, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, h)
			removed++
		}
	}
	c.mu.Unlock()
	c.logger.Printf("SWEEP: removed=%d", removed)
	return removed
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
