package exclusion

import "sync"

// Strategy controls how read-modify-write sequences on a single order
// are serialized. The default passthrough performs no exclusion at all,
// which keeps the double-charge race reproducible; the keyed mutex is
// the opt-in safe variant.
type Strategy interface {
	Do(key string, fn func())
	Name() string
}

// Passthrough runs the critical section without any locking.
type Passthrough struct{}

func (Passthrough) Do(_ string, fn func()) { fn() }

func (Passthrough) Name() string { return "passthrough" }

// KeyedMutex serializes critical sections per key.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex creates the per-key locking strategy.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyedMutex) Do(key string, fn func()) {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	fn()
}

func (k *KeyedMutex) Name() string { return "keyed-mutex" }
