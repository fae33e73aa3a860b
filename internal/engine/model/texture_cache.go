package model

import (
	"go.uber.org/zap"

	"github.com/Faultbox/galleon/internal/logger"
)

type cacheEntry struct {
	id  uint32
	err error
}

// TextureCache loads each texture path at most once. Failed paths are
// remembered too, so a broken file is decoded and reported only once.
type TextureCache struct {
	loader  TextureLoader
	entries map[string]cacheEntry
}

// NewTextureCache creates a cache that loads through loader. A nil loader
// makes every lookup miss without touching the filesystem.
func NewTextureCache(loader TextureLoader) *TextureCache {
	return &TextureCache{
		loader:  loader,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the texture for path bound to role, loading it on first use.
// The role only labels the returned value; the cache key is the path.
func (c *TextureCache) Get(path string, role TextureRole) (Texture, bool) {
	if c == nil || c.loader == nil {
		return Texture{}, false
	}

	entry, ok := c.entries[path]
	if !ok {
		id, err := c.loader.Load(path)
		entry = cacheEntry{id: id, err: err}
		c.entries[path] = entry
		if err != nil {
			logger.Warn("texture load failed, slot skipped",
				zap.String("path", path),
				zap.String("role", string(role)),
				zap.Error(err))
		}
	}
	if entry.err != nil {
		return Texture{}, false
	}
	return Texture{ID: entry.id, Role: role, Path: path}, true
}

// Len returns the number of distinct paths seen, failures included.
func (c *TextureCache) Len() int {
	return len(c.entries)
}

// Release frees every loaded texture and empties the cache.
func (c *TextureCache) Release() {
	if c == nil {
		return
	}
	for _, entry := range c.entries {
		if entry.err == nil && c.loader != nil {
			c.loader.Release(entry.id)
		}
	}
	clear(c.entries)
}
