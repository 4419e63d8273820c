// Package assets handles asynchronous asset loading and caching.
//
// Files are read on background goroutines, but completion callbacks are
// queued and only run when the frame loop calls Dispatch, so callbacks may
// mutate entity state without locking.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/logger"
)

// ErrNotFound is returned when no source holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Requester is the asset-load contract entities depend on.
type Requester interface {
	Load(uri string, onComplete func([]byte), onError func(error))
}

type completion struct {
	uri        string
	data       []byte
	err        error
	onComplete func([]byte)
	onError    func(error)
}

// Loader reads assets from a stack of file systems.
type Loader struct {
	sources []fs.FS
	cache   *Cache
	mu      sync.RWMutex

	sem     chan struct{}
	wg      sync.WaitGroup
	qmu     sync.Mutex
	queue   []completion
	pending int
}

// NewLoader creates a loader that reads at most workers files at once.
func NewLoader(workers int, sources ...fs.FS) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{
		sources: sources,
		cache:   NewCache(),
		sem:     make(chan struct{}, workers),
	}
}

// AddSource adds a file system to the loader.
// Sources are searched in reverse order (last added = highest priority).
func (l *Loader) AddSource(src fs.FS) {
	l.mu.Lock()
	l.sources = append(l.sources, src)
	l.mu.Unlock()
}

// Read loads a file synchronously.
func (l *Loader) Read(uri string) ([]byte, error) {
	if data, ok := l.cache.Get(uri); ok {
		return data, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(l.sources[i], uri)
		if err == nil {
			l.cache.Set(uri, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", uri, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, uri)
}

// Load reads uri in the background. Exactly one of the callbacks runs,
// from a later Dispatch call. Either callback may be nil.
func (l *Loader) Load(uri string, onComplete func([]byte), onError func(error)) {
	l.qmu.Lock()
	l.pending++
	l.qmu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.sem <- struct{}{}
		data, err := l.Read(uri)
		<-l.sem

		l.qmu.Lock()
		l.queue = append(l.queue, completion{
			uri:        uri,
			data:       data,
			err:        err,
			onComplete: onComplete,
			onError:    onError,
		})
		l.qmu.Unlock()
	}()
}

// Dispatch runs the callbacks of every finished load on the calling
// goroutine and returns how many ran.
func (l *Loader) Dispatch() int {
	l.qmu.Lock()
	ready := l.queue
	l.queue = nil
	l.pending -= len(ready)
	l.qmu.Unlock()

	for _, c := range ready {
		if c.err != nil {
			logger.Debug("asset load failed", zap.String("uri", c.uri), zap.Error(c.err))
			if c.onError != nil {
				c.onError(c.err)
			}
			continue
		}
		logger.Debug("asset loaded", zap.String("uri", c.uri), zap.Int("bytes", len(c.data)))
		if c.onComplete != nil {
			c.onComplete(c.data)
		}
	}
	return len(ready)
}

// Pending returns the number of loads whose callbacks have not run yet.
func (l *Loader) Pending() int {
	l.qmu.Lock()
	defer l.qmu.Unlock()
	return l.pending
}

// Wait blocks until every issued read has finished. Callbacks still need
// a Dispatch.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close waits for in-flight reads and drops the cache.
// Undispatched callbacks are discarded.
func (l *Loader) Close() {
	l.wg.Wait()

	l.qmu.Lock()
	l.queue = nil
	l.pending = 0
	l.qmu.Unlock()

	l.cache.Clear()
}

// Cache returns the loader's file cache.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
