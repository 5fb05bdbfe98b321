package crypto

import (
	"context"
	"fmt"
	"sync"
)

// MemoryKeyProvider keeps per-user symmetric keys in process memory. Keys
// appear when the vault is unlocked and vanish on Forget, so a locked vault
// resolves nothing.
type MemoryKeyProvider struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

// NewMemoryKeyProvider constructs an empty in-memory [KeyProvider].
func NewMemoryKeyProvider() *MemoryKeyProvider {
	return &MemoryKeyProvider{keys: make(map[string][]byte)}
}

// Store registers the symmetric key for userID, replacing any previous one.
func (p *MemoryKeyProvider) Store(userID string, key []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys[userID] = key
}

// Forget removes the key for userID. Subsequent resolutions fail with
// ErrKeyUnavailable until Store is called again.
func (p *MemoryKeyProvider) Forget(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.keys, userID)
}

// ResolveKey implements [KeyProvider].
func (p *MemoryKeyProvider) ResolveKey(_ context.Context, userID string, _ string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	key, ok := p.keys[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no key for user %s", ErrKeyUnavailable, userID)
	}
	return key, nil
}
