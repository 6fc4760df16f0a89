package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// A Cache holds objects that are expensive to compute, keyed by a 64-bit
// hash. It is safe for concurrent use. Movegen uses it to remember the
// legal moves of positions it has already searched.
type Cache[V any] struct {
	sync.Mutex
	objects  map[uint64]V
	capacity int
}

type LoadFunc[V any] func(key uint64) (V, error)

// New creates a cache that holds at most capacity objects. When full it
// is emptied before the next object goes in. A capacity of 0 or less
// means unbounded.
func New[V any](capacity int) *Cache[V] {
	return &Cache[V]{objects: make(map[uint64]V), capacity: capacity}
}

func (c *Cache[V]) load(key uint64, loadFunc LoadFunc[V]) (V, error) {
	log.Debug().Uint64("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return obj, err
	}
	if c.capacity > 0 && len(c.objects) >= c.capacity {
		log.Debug().Int("size", len(c.objects)).Msg("cache full, clearing")
		clear(c.objects)
	}
	c.objects[key] = obj
	return obj, nil
}

// Get returns the object for key, calling loadFunc to build it if it is
// not cached. Errors are returned and not cached.
func (c *Cache[V]) Get(key uint64, loadFunc LoadFunc[V]) (V, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Uint64("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	return c.load(key, loadFunc)
}

func (c *Cache[V]) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}
