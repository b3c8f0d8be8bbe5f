package lock

import (
	"context"
	"sync"
)

// Locker serializes work per key. The returned release func must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

type keyedSlot struct {
	ch   chan struct{}
	refs int
}

// LocalLocker is an in-process keyed mutex for single replica deployments
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*keyedSlot
}

var _ Locker = &LocalLocker{}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]*keyedSlot)}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = &keyedSlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, slot)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.ch
			l.unref(key, slot)
		})
	}, nil
}

func (l *LocalLocker) unref(key string, slot *keyedSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}

// held reports how many keys currently have waiters or holders
func (l *LocalLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
