package builder

import (
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	geotrellis "github.com/flywave/go-geotrellis"
)

type entry struct {
	file       string
	request    *geotrellis.Request
	lastUpdate time.Time
}

func (e *entry) isStale() (bool, error) {
	info, err := os.Stat(e.file)
	if err != nil {
		return true, err
	}
	return info.ModTime().After(e.lastUpdate), nil
}

// Cache keeps parsed and validated requests and reparses a file only when
// it changed since the last parse. Entries are keyed by the path as given.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for file := range c.entries {
		delete(c.entries, file)
	}
}

// Request returns the request stored in file.
func (c *Cache) Request(file string) (*geotrellis.Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[file]; ok {
		stale, err := e.isStale()
		if err != nil {
			delete(c.entries, file)
			return nil, err
		}
		if stale {
			if err := c.load(e); err != nil {
				return nil, err
			}
		}
		return e.request, nil
	}

	e := &entry{file: file}
	if err := c.load(e); err != nil {
		return nil, err
	}
	c.entries[file] = e
	return e.request, nil
}

func (c *Cache) load(e *entry) error {
	started := c.now()
	r, err := LoadRequest(e.file)
	if err != nil {
		return err
	}
	log.Debugf("reload request %s from %s", r.Name, e.file)
	e.request = r
	e.lastUpdate = started
	return nil
}
