package syntax

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"
)

const keySep = "\x00"

// Cache holds compiled rule patterns keyed by (language, rule name).
// Entries never expire; they are dropped only by Purge or Flush.
// A Cache is safe for concurrent use and compiles each key at most once
// between purges.
type Cache struct {
	entries      *gocache.Cache
	missMu       sync.Mutex
	compilations atomic.Int64
}

// NewCache creates an empty compile cache.
func NewCache() *Cache {
	return &Cache{
		entries: gocache.New(gocache.NoExpiration, 0),
	}
}

func cacheKey(lang Language, name string) string {
	return string(lang) + keySep + name
}

// Compiled returns the compiled pattern of rule within lang, compiling and
// storing it on first use.
func (c *Cache) Compiled(lang Language, rule Rule) (*regexp.Regexp, error) {
	key := cacheKey(lang, rule.Name)
	if re, ok := c.get(key); ok {
		return re, nil
	}

	c.missMu.Lock()
	defer c.missMu.Unlock()

	// Another caller may have filled the entry while we waited.
	if re, ok := c.get(key); ok {
		return re, nil
	}

	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %s/%s: %w", lang, rule.Name, err)
	}
	c.entries.Set(key, re, gocache.NoExpiration)
	c.compilations.Add(1)
	return re, nil
}

func (c *Cache) get(key string) (*regexp.Regexp, bool) {
	value, found := c.entries.Get(key)
	if !found {
		return nil, false
	}
	re, ok := value.(*regexp.Regexp)
	return re, ok
}

// Purge drops every entry belonging to lang and returns how many were removed.
func (c *Cache) Purge(lang Language) int {
	prefix := string(lang) + keySep
	removed := 0
	for key := range c.entries.Items() {
		if strings.HasPrefix(key, prefix) {
			c.entries.Delete(key)
			removed++
		}
	}
	return removed
}

// Flush drops all entries.
func (c *Cache) Flush() {
	c.entries.Flush()
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}

// Compilations returns how many patterns this cache has compiled in total.
func (c *Cache) Compilations() int64 {
	return c.compilations.Load()
}
