package storage

import "sync"

// MemoryBackend keeps the snapshot in memory only. Used by tests and by
// ephemeral deployments that accept losing state on restart.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryBackend builds an in-memory snapshot backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns the last saved image, nil when nothing was saved.
func (b *MemoryBackend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data, nil
}

// Save replaces the image.
func (b *MemoryBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error { return nil }
