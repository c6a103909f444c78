package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvanh/storefront/internal/storage"
	apperrors "github.com/trvanh/storefront/pkg/errors"
)

func setupAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := New(t.TempDir())
	require.NoError(t, err)
	return a
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := New(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoad_Missing(t *testing.T) {
	a := setupAdapter(t)

	_, err := a.Load(context.Background(), storage.KeyFavorites)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	a := setupAdapter(t)
	ctx := context.Background()

	blob := []byte(`[{"product_id":"prod-1"}]`)
	require.NoError(t, a.Save(ctx, storage.KeyFavorites, blob))

	got, err := a.Load(ctx, storage.KeyFavorites)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestSave_Overwrites(t *testing.T) {
	a := setupAdapter(t)
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, storage.KeyCart, []byte("old")))
	require.NoError(t, a.Save(ctx, storage.KeyCart, []byte("new")))

	got, err := a.Load(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestSave_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	a, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, a.Save(context.Background(), storage.KeyCart, []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "storefront_cart.json", entries[0].Name())
}

func TestSave_SurvivesNewAdapter(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, storage.KeyCart, []byte("persisted")))

	// A fresh adapter over the same directory sees the prior state.
	b, err := New(dir)
	require.NoError(t, err)

	got, err := b.Load(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func TestPing(t *testing.T) {
	a := setupAdapter(t)
	assert.NoError(t, a.Ping(context.Background()))
}
