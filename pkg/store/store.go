// Package store provides the persisted key-value blob store backing the
// recency and favorites lists. Values are opaque JSON documents owned
// entirely by the caller; Set overwrites, Clear removes, and every
// failure surfaces as a *StorageError so callers can treat it as "value
// unavailable" rather than "value is empty".
package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Interface is the persistence contract injected into every component
// that needs durable state.
type Interface interface {
	// Get returns the stored value for key. Absence is (nil, false, nil),
	// never an error.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the value for key. All-or-nothing from the
	// caller's perspective.
	Set(key string, value []byte) error
	// Clear removes key. Clearing an absent key is a no-op.
	Clear(key string) error
	// Watch streams change notifications until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// StorageError wraps any failure of the underlying storage.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Load creates an Interface backed by diskv under the configured base
// path, one file per key.
func Load(cfg Config) (Interface, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, &StorageError{Op: "init", Key: basePath, Err: err}
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) ([]byte, bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &StorageError{Op: "get", Key: key, Err: err}
	}
	return val, true, nil
}

func (p *persistence) Set(key string, value []byte) error {
	if err := p.d.Write(key, value); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (p *persistence) Clear(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return &StorageError{Op: "clear", Key: key, Err: err}
	}
	return nil
}
