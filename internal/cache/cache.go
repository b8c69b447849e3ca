// Package cache guarda leituras de views do painel e as invalida após mutações
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/pkg/metrics"
)

// Invalidator recebe o sinal de que uma view deixou de ser válida
type Invalidator interface {
	Invalidate(view string)
}

// ViewCache é um LRU com TTL cujas chaves são prefixadas pela view. Cada view
// tem uma geração que avança a cada invalidação.
type ViewCache struct {
	lru *expirable.LRU[string, any]

	mu          sync.Mutex
	generations map[string]uint64
}

func NewViewCache(size int, ttl time.Duration) *ViewCache {
	if size <= 0 {
		size = 128
	}

	return &ViewCache{
		lru:         expirable.NewLRU[string, any](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

// Key monta a chave de uma leitura dentro de uma view
func Key(view string, params ...string) string {
	if len(params) == 0 {
		return view
	}
	return view + "?" + strings.Join(params, "&")
}

func (c *ViewCache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Generation devolve a geração atual da view, lida antes de consultar o banco
func (c *ViewCache) Generation(view string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[view]
}

// SetIfCurrent grava a leitura só se a view não foi invalidada desde generation
func (c *ViewCache) SetIfCurrent(view string, generation uint64, key string, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[view] != generation {
		return false
	}

	c.lru.Add(key, value)
	return true
}

// Get retorna o valor tipado da chave, se existir e não tiver expirado
func Get[T any](c *ViewCache, key string) (T, bool) {
	var zero T

	value, ok := c.lru.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// Invalidate remove todas as leituras da view
func (c *ViewCache) Invalidate(view string) {
	c.mu.Lock()
	c.generations[view]++

	removed := 0
	for _, key := range c.lru.Keys() {
		if key == view || strings.HasPrefix(key, view+"?") {
			if c.lru.Remove(key) {
				removed++
			}
		}
	}

	c.mu.Unlock()

	metrics.RecordCacheInvalidation(view)

	logrus.WithFields(logrus.Fields{
		"view":    view,
		"removed": removed,
	}).Debug("Cache da view invalidado")
}

func (c *ViewCache) Len() int {
	return c.lru.Len()
}
