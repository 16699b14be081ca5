package cache

import (
	"sync"

	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Promoted  int64
	Rotations int64
}

// GenerationalCache approximates an LRU cache with two maps. New keys go into the current
// generation; once more than maxSize keys were inserted the current generation replaces the
// previous one and a fresh generation starts. Up to 2*maxSize entries are retained.
type GenerationalCache[V any] struct {
	mu       sync.Mutex
	maxSize  int
	size     int
	current  map[string]V
	previous map[string]V
	name     string // For logging/debugging
	metrics  CacheMetrics
	logger   *zap.Logger
	onRotate func(evicted int)
}

// Option configures a GenerationalCache.
type Option[V any] func(*GenerationalCache[V])

// WithLogger sets the logger used for debug output.
func WithLogger[V any](logger *zap.Logger) Option[V] {
	return func(c *GenerationalCache[V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRotateHook registers fn to be called, under the cache lock, on every generation flip
// with the number of entries dropped from the old previous generation.
func WithRotateHook[V any](fn func(evicted int)) Option[V] {
	return func(c *GenerationalCache[V]) { c.onRotate = fn }
}

// NewGenerationalCache creates a cache holding maxSize keys per generation.
// A maxSize of zero or less returns a disabled cache that never stores anything.
func NewGenerationalCache[V any](maxSize int, name string, opts ...Option[V]) *GenerationalCache[V] {
	c := &GenerationalCache[V]{
		maxSize: maxSize,
		name:    name,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if maxSize > 0 {
		c.current = make(map[string]V)
		c.previous = make(map[string]V)
	}
	return c
}

// Enabled reports whether the cache stores values at all.
func (c *GenerationalCache[V]) Enabled() bool {
	return c != nil && c.maxSize > 0
}

// Get looks key up in the current generation and then in the previous one.
// A hit in the previous generation is promoted into the current one.
func (c *GenerationalCache[V]) Get(key string) (V, bool) {
	var zero V
	if !c.Enabled() {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.current[key]; ok {
		c.metrics.Hits++
		return v, true
	}
	if v, ok := c.previous[key]; ok {
		c.metrics.Hits++
		c.metrics.Promoted++
		c.insert(key, v)
		return v, true
	}
	c.metrics.Misses++
	return zero, false
}

// Set stores value under key. Overwriting a key of the current generation is not counted.
func (c *GenerationalCache[V]) Set(key string, value V) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics.Sets++
	if _, ok := c.current[key]; ok {
		c.current[key] = value
		return
	}
	c.insert(key, value)
}

// insert adds a new key to the current generation and rotates when it overflows.
// Callers hold c.mu.
func (c *GenerationalCache[V]) insert(key string, value V) {
	c.current[key] = value
	c.size++
	if c.size <= c.maxSize {
		return
	}

	evicted := len(c.previous)
	c.previous = c.current
	c.current = make(map[string]V)
	c.size = 0
	c.metrics.Rotations++

	c.logger.Debug("Cache generation rotated",
		zap.String("cache", c.name),
		zap.Int("evicted_items", evicted),
		zap.Int("retained_items", len(c.previous)),
	)
	if c.onRotate != nil {
		c.onRotate(evicted)
	}
}

// Clear drops both generations.
func (c *GenerationalCache[V]) Clear() {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = make(map[string]V)
	c.previous = make(map[string]V)
	c.size = 0
	c.logger.Info("Cache cleared",
		zap.String("cache", c.name),
	)
}

// GetMetrics returns current cache metrics
func (c *GenerationalCache[V]) GetMetrics() CacheMetrics {
	if c == nil {
		return CacheMetrics{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// Size returns the number of entries held across both generations.
func (c *GenerationalCache[V]) Size() int {
	if !c.Enabled() {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.current) + len(c.previous)
}
