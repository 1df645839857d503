package text

import (
	"math"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// DefaultCacheLimit is the entry count at which a MetricsCache starts over.
const DefaultCacheLimit = 4096

// MetricsCache memoizes text sizes per string and wrap width for one face.
// It is safe for concurrent use; concurrent misses on the same key lay the
// text out once.
type MetricsCache struct {
	face  *Face
	limit int

	mu      sync.RWMutex
	entries map[string]graphics.Size
	group   singleflight.Group

	hits, misses int
}

// NewMetricsCache returns a cache over face holding at most limit entries.
// A non-positive limit means DefaultCacheLimit.
func NewMetricsCache(face *Face, limit int) *MetricsCache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &MetricsCache{
		face:    face,
		limit:   limit,
		entries: make(map[string]graphics.Size),
	}
}

var (
	sharedCache     *MetricsCache
	sharedCacheOnce sync.Once
)

// Shared returns the process-wide cache over DefaultFace.
func Shared() *MetricsCache {
	sharedCacheOnce.Do(func() {
		sharedCache = NewMetricsCache(DefaultFace(), DefaultCacheLimit)
	})
	return sharedCache
}

// Face returns the face the cache measures with.
func (c *MetricsCache) Face() *Face { return c.face }

// Size returns the size of s wrapped at maxWidth (see LayoutText).
func (c *MetricsCache) Size(s string, maxWidth float64) graphics.Size {
	if maxWidth <= 0 || math.IsInf(maxWidth, 0) || math.IsNaN(maxWidth) {
		maxWidth = 0
	}
	key := strconv.FormatFloat(maxWidth, 'g', -1, 64) + "\x00" + s

	c.mu.RLock()
	size, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return size
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		size := LayoutText(s, c.face, maxWidth).Size
		c.mu.Lock()
		if len(c.entries) >= c.limit {
			clear(c.entries)
		}
		c.entries[key] = size
		c.misses++
		c.mu.Unlock()
		return size, nil
	})
	return v.(graphics.Size)
}

// Stats returns the hit and miss counts.
func (c *MetricsCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Len returns the number of cached entries.
func (c *MetricsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every entry.
func (c *MetricsCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.hits, c.misses = 0, 0
}
