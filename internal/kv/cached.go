package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Backend = (*Cached)(nil)

// Cached is a read-through cache in front of a slower backend (redis, postgres).
// Misses are not cached, so a key written by another process shows up
// after at most ttlSeconds.
type Cached struct {
	next       Backend
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCached(next Backend, cacheSizeMegabytes, ttlSeconds int) *Cached {
	megabyte := 1024 * 1024
	return &Cached{
		next:       next,
		cache:      freecache.NewCache(cacheSizeMegabytes * megabyte),
		ttlSeconds: ttlSeconds,
	}
}

func (c *Cached) Get(ctx context.Context, key string) (string, error) {
	if v, err := c.cache.Get([]byte(key)); err == nil {
		return string(v), nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Debugf("kv cache get [%s]: %s", key, err)
	}

	v, err := c.next.Get(ctx, key)
	if err != nil {
		return "", err
	}
	c.put(key, v)
	return v, nil
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		c.cache.Del([]byte(key))
		return err
	}
	c.put(key, value)
	return nil
}

func (c *Cached) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		c.cache.Del([]byte(k))
	}
	if err := c.next.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("cached delete: %w", err)
	}
	return nil
}

// HitRate is the share of Get calls served from memory.
func (c *Cached) HitRate() float64 {
	return c.cache.HitRate()
}

func (c *Cached) Close() error {
	c.cache.Clear()
	return c.next.Close()
}

func (c *Cached) put(key, value string) {
	if err := c.cache.Set([]byte(key), []byte(value), c.ttlSeconds); err != nil {
		// value larger than 1/1024 of the cache; just serve it uncached
		log.Debugf("kv cache set [%s]: %s", key, err)
	}
}
