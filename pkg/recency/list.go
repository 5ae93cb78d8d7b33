// Package recency implements a bounded, deduplicated, order-preserving
// persisted list. It backs both the recently-viewed and favorites
// collections: newest entries sit at the front, recording an existing
// identity moves it to the front, and the oldest entry falls off the
// back once the capacity is exceeded.
package recency

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/store"
)

// Persisted store keys. Each holds one JSON array.
const (
	KeyRecentlyViewed = "recently-viewed"
	KeyFavorites      = "favorites"
)

// List is a size-capped persisted list of T keyed by Identity. Only
// explicit Record calls affect order; reads never do.
type List[T any] struct {
	key      string
	capacity int
	identity func(T) string
	store    store.Interface
}

// New builds a List over s stored under key. capacity must be positive
// and identity must map each entry to a stable id.
func New[T any](s store.Interface, key string, capacity int, identity func(T) string) *List[T] {
	return &List[T]{key: key, capacity: capacity, identity: identity, store: s}
}

// RecentlyViewed is the cache of recipe detail views.
func RecentlyViewed(s store.Interface, capacity int) *List[recipe.CacheEntry] {
	return New(s, KeyRecentlyViewed, capacity, func(e recipe.CacheEntry) string { return e.ID })
}

// Favorites is the cache of recipes the user starred.
func Favorites(s store.Interface, capacity int) *List[recipe.CacheEntry] {
	return New(s, KeyFavorites, capacity, func(e recipe.CacheEntry) string { return e.ID })
}

// Record inserts entry at the front, removing any existing entry with
// the same identity first, then truncates to capacity and persists.
// Recording a duplicate is defined behavior: move-to-front.
func (l *List[T]) Record(entry T) error {
	current, err := l.load()
	if err != nil {
		return err
	}

	id := l.identity(entry)
	next := make([]T, 0, len(current)+1)
	next = append(next, entry)
	for _, e := range current {
		if l.identity(e) == id {
			continue
		}
		next = append(next, e)
	}
	if len(next) > l.capacity {
		next = next[:l.capacity]
	}

	return l.save(next)
}

// Remove deletes the entry with the given identity if present and
// reports whether anything changed.
func (l *List[T]) Remove(id string) (bool, error) {
	current, err := l.load()
	if err != nil {
		return false, err
	}
	next := make([]T, 0, len(current))
	for _, e := range current {
		if l.identity(e) == id {
			continue
		}
		next = append(next, e)
	}
	if len(next) == len(current) {
		return false, nil
	}
	return true, l.save(next)
}

// All returns a snapshot of the list, most-recent-first, length at most
// the capacity. It is a decoded copy, never a live view.
func (l *List[T]) All() ([]T, error) {
	return l.load()
}

// Clear empties and persists the list. Idempotent.
func (l *List[T]) Clear() error {
	return l.save([]T{})
}

// Watch notifies whenever this list's key changes in the store, so
// consumers re-read on mutation instead of polling.
func (l *List[T]) Watch(ctx context.Context) (<-chan struct{}, error) {
	events, err := l.store.Watch(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for ev := range events {
			if ev.Key != l.key {
				continue
			}
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out, nil
}

func (l *List[T]) load() ([]T, error) {
	data, ok, err := l.store.Get(l.key)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}
	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("recency: decode %q: %w", l.key, err)
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

func (l *List[T]) save(entries []T) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("recency: encode %q: %w", l.key, err)
	}
	return l.store.Set(l.key, data)
}
