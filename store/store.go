// Package store holds the local in-memory collections, one per entity type.
// Every component mutates entities through an injected *Collection rather
// than through shared globals; the sync bridge is the only caller allowed to
// replace a collection wholesale.
package store

import (
	"sort"
	"sync"
)

// Collection is a mutex-guarded map of entities keyed by id.
type Collection[T any] struct {
	mu   sync.RWMutex
	m    map[string]T
	keyF func(T) string
}

// NewCollection creates an empty collection. key extracts an entity's id.
func NewCollection[T any](key func(T) string) *Collection[T] {
	return &Collection[T]{
		m:    make(map[string]T),
		keyF: key,
	}
}

// Get returns the entity with the given id, if present.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[id]
	return v, ok
}

// Put inserts or overwrites the entity under its own id.
func (c *Collection[T]) Put(v T) {
	c.mu.Lock()
	c.m[c.keyF(v)] = v
	c.mu.Unlock()
}

// Delete removes the entity with the given id and reports whether it existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.m[id]
	delete(c.m, id)
	return ok
}

// List returns every entity ordered by id, so repeated renders are stable.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.m[k])
	}
	return out
}

// ReplaceAll discards the current contents and installs the given entities.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.mu.Lock()
	c.m = make(map[string]T, len(items))
	for _, v := range items {
		c.m[c.keyF(v)] = v
	}
	c.mu.Unlock()
}

// Len returns the number of entities held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
