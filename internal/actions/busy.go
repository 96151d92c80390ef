package actions

import "sync"

// Busy tracks actions in flight so a target cannot be submitted twice.
type Busy struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewBusy() *Busy {
	return &Busy{inFlight: make(map[string]struct{})}
}

// Acquire marks key as busy. It returns false if it already was.
func (b *Busy) Acquire(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.inFlight[key]; ok {
		return false
	}
	b.inFlight[key] = struct{}{}
	return true
}

func (b *Busy) Release(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, key)
}

func (b *Busy) IsBusy(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.inFlight[key]
	return ok
}
