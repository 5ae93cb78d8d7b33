package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Interface.Watch when a stored key changes. It is
// the notify-on-write replacement for polling re-reads: consumers
// re-load a key only when an Event names it.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid missing notifications; the
// channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &StorageError{Op: "watch", Key: p.basePath, Err: err}
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, &StorageError{Op: "watch", Key: p.basePath, Err: err}
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			_ = watcher.Close()
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer lags; it will re-read on the
				// next notification it does receive.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					continue
				}
				throttle.Enqueue(Event{Key: filepath.Base(evt.Name)}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid writes to the same key so one burst of
// filesystem activity produces one notification per key.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
