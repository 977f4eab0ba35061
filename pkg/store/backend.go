package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/logging"
	"github.com/arthur-debert/tagtmpl/pkg/paths"
)

// Backend stores raw values by key
type Backend interface {
	// Read returns the stored bytes; ok is false when the key is absent.
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists stored keys in sorted order.
	Keys() ([]string, error)
}

const fileExt = ".yaml"

type fileBackend struct {
	dir string
}

// NewFileBackend stores one YAML file per key under dir. An empty dir uses
// the store directory from paths.
func NewFileBackend(dir string) (Backend, error) {
	if dir == "" {
		p, err := paths.New()
		if err != nil {
			return nil, err
		}
		dir = p.StoreDir()
	}
	dir = paths.ExpandHome(dir)

	logger := logging.GetLogger("store.file")
	logger.Debug().Str("dir", dir).Msg("Using file store")
	return &fileBackend{dir: dir}, nil
}

func (b *fileBackend) path(key string) string {
	return filepath.Join(b.dir, key+fileExt)
}

func (b *fileBackend) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrStoreRead, "failed to read key %s", key).
			WithDetail("key", key)
	}
	return data, true, nil
}

func (b *fileBackend) Write(key string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to create store directory %s", b.dir)
	}

	// write then rename so readers never see a partial file
	tmp, err := os.CreateTemp(b.dir, "."+key+"-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write key %s", key).WithDetail("key", key)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write key %s", key).WithDetail("key", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write key %s", key).WithDetail("key", key)
	}
	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write key %s", key).WithDetail("key", key)
	}
	return nil
}

func (b *fileBackend) Delete(key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to delete key %s", key).WithDetail("key", key)
	}
	return nil
}

func (b *fileBackend) Keys() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "failed to list store %s", b.dir)
	}

	keys := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

type memoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend returns a Backend that lives for the process only
func NewMemoryBackend() Backend {
	return &memoryBackend{data: map[string][]byte{}}
}

func (b *memoryBackend) Read(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (b *memoryBackend) Write(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), data...)
	return nil
}

func (b *memoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *memoryBackend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
