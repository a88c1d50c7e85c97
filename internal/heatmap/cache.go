package heatmap

import (
	"container/list"
	"encoding/binary"
	"maps"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/jengzang/bodymap-backend-go/internal/models"
)

// DefaultCacheSize is the number of heatmaps kept when no size is configured
const DefaultCacheSize = 64

// Cache memoizes Compute on the content of its input.
// Two record lists with the same region ids and severities in the same order
// share an entry regardless of slice identity, so a caller that mutates its
// slice in place never gets a stale heatmap.
type Cache struct {
	mu      sync.Mutex
	size    int
	order   *list.List // front is most recently used
	entries map[uint64]*list.Element
}

type cacheItem struct {
	key     uint64
	heatmap map[string]models.HeatmapEntry
}

// NewCache creates a cache holding at most size heatmaps
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		size:    size,
		order:   list.New(),
		entries: make(map[uint64]*list.Element, size),
	}
}

// Compute returns the heatmap for records and whether it came from the cache.
// The returned map is a copy the caller may modify.
func (c *Cache) Compute(records []models.SymptomRecord) (map[string]models.HeatmapEntry, bool) {
	key := ContentKey(records)

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		hm := maps.Clone(el.Value.(*cacheItem).heatmap)
		c.mu.Unlock()
		return hm, true
	}
	c.mu.Unlock()

	hm := Compute(records)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.entries[key] = c.order.PushFront(&cacheItem{key: key, heatmap: maps.Clone(hm)})
		for c.order.Len() > c.size {
			oldest := c.order.Back()
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheItem).key)
		}
	}
	return hm, false
}

// Len returns the number of cached heatmaps
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// ContentKey hashes the fields Compute reads: region id and severity of each
// record, in order.
func ContentKey(records []models.SymptomRecord) uint64 {
	d := xxhash.New()
	var buf [17]byte
	for _, r := range records {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(len(r.RegionID)))
		buf[8] = 0
		binary.LittleEndian.PutUint64(buf[9:], 0)
		if r.Severity != nil {
			buf[8] = 1
			binary.LittleEndian.PutUint64(buf[9:], uint64(int64(*r.Severity)))
		}
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(r.RegionID)
	}
	return d.Sum64()
}
