// Package file provides a file-per-key storage adapter, the durable local
// store used by default for a single-machine storefront client.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// Adapter implements storage.Adapter on a directory of files, one per key.
type Adapter struct {
	dir string
}

// New creates a file-backed adapter rooted at dir, creating the directory
// if needed.
func New(dir string) (*Adapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Adapter{dir: dir}, nil
}

// Load reads the blob stored for the key. A missing file is reported as
// not found.
func (a *Adapter) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(a.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound("state", key)
		}
		return nil, fmt.Errorf("read state file for %s: %w", key, err)
	}
	return data, nil
}

// Save writes the blob for the key atomically: the value goes to a temp file
// first and is renamed into place, so a crash mid-write never leaves a
// truncated blob behind.
func (a *Adapter) Save(_ context.Context, key string, value []byte) error {
	target := a.path(key)

	tmp, err := os.CreateTemp(a.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write state file for %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close state file for %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename state file for %s: %w", key, err)
	}
	return nil
}

// Ping verifies the data directory is still writable, for readiness probes.
func (a *Adapter) Ping(_ context.Context) error {
	info, err := os.Stat(a.dir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", a.dir)
	}
	return nil
}

// path maps a storage key to a file name. Colons are not portable across
// file systems, so they are replaced.
func (a *Adapter) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(a.dir, name)
}
