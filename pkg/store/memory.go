package store

import (
	"context"
	"sync"
)

// Memory is a map-backed Interface. It exists so every component can be
// exercised without touching disk, and doubles as the fault-injection
// point for storage-failure tests via FailWith.
type Memory struct {
	mu       sync.Mutex
	values   map[string][]byte
	failWith error
	subs     map[int]chan Event
	nextSub  int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
		subs:   make(map[int]chan Event),
	}
}

// FailWith makes every subsequent operation fail with err wrapped in a
// *StorageError. Pass nil to heal the store.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, false, &StorageError{Op: "get", Key: key, Err: m.failWith}
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	if m.failWith != nil {
		err := m.failWith
		m.mu.Unlock()
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	m.notifyLocked(key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(key string) error {
	m.mu.Lock()
	if m.failWith != nil {
		err := m.failWith
		m.mu.Unlock()
		return &StorageError{Op: "clear", Key: key, Err: err}
	}
	if _, ok := m.values[key]; ok {
		delete(m.values, key)
		m.notifyLocked(key)
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan Event, 16)
	m.subs[id] = ch
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, id)
		close(ch)
		m.mu.Unlock()
	}()

	return ch, nil
}

func (m *Memory) notifyLocked(key string) {
	for _, ch := range m.subs {
		select {
		case ch <- Event{Key: key}:
		default:
		}
	}
}
