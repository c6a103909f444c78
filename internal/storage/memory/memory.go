// Package memory provides an in-process storage adapter for tests and
// ephemeral runs. State does not survive a restart.
package memory

import (
	"context"
	"sync"

	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// Adapter implements storage.Adapter on a mutex-guarded map.
type Adapter struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory adapter.
func New() *Adapter {
	return &Adapter{data: make(map[string][]byte)}
}

// Load returns the stored blob for the key, or a not-found error.
func (a *Adapter) Load(_ context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	value, ok := a.data[key]
	if !ok {
		return nil, apperrors.NotFound("state", key)
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save stores a copy of the blob under the key.
func (a *Adapter) Save(_ context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	a.data[key] = stored
	return nil
}
