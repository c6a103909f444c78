package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// mapAdapter is a minimal in-package adapter so the codec tests do not
// depend on the concrete backends.
type mapAdapter struct {
	mu      sync.Mutex
	data    map[string][]byte
	saveErr error
}

func newMapAdapter() *mapAdapter {
	return &mapAdapter{data: make(map[string][]byte)}
}

func (m *mapAdapter) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, apperrors.NotFound("state", key)
	}
	return v, nil
}

func (m *mapAdapter) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = value
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadJSON_Absent(t *testing.T) {
	a := newMapAdapter()

	var v payload
	ok := LoadJSON(context.Background(), a, KeyCart, &v, testLogger())

	assert.False(t, ok)
	assert.Equal(t, payload{}, v)
}

func TestSaveLoadJSON_RoundTrip(t *testing.T) {
	a := newMapAdapter()
	ctx := context.Background()

	SaveJSON(ctx, a, KeyCart, payload{Name: "Air Max", Count: 3}, testLogger())

	var v payload
	ok := LoadJSON(ctx, a, KeyCart, &v, testLogger())

	require.True(t, ok)
	assert.Equal(t, payload{Name: "Air Max", Count: 3}, v)
}

func TestLoadJSON_CorruptBlobTreatedAsAbsent(t *testing.T) {
	a := newMapAdapter()
	a.data[KeyFavorites] = []byte("{{{not json")

	var v payload
	ok := LoadJSON(context.Background(), a, KeyFavorites, &v, testLogger())

	assert.False(t, ok)
	assert.Equal(t, payload{}, v)
}

func TestSaveJSON_WriteFaultSwallowed(t *testing.T) {
	a := newMapAdapter()
	a.saveErr = errors.New("quota exceeded")

	// Must not panic or surface the fault.
	SaveJSON(context.Background(), a, KeyCart, payload{Name: "x"}, testLogger())

	assert.Empty(t, a.data)
}
