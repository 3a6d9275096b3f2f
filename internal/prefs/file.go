package prefs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	perrors "github.com/zhubert/manus/internal/errors"
)

// FileStore keeps preferences in a JSON document. Writes go to a temp file
// that is renamed over the original.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, perrors.StoreReadFailed(key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, perrors.StoreReadFailed(key, err)
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	return s.update(ctx, key, func(values map[string]string) {
		values[key] = value
	})
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	return s.update(ctx, key, func(values map[string]string) {
		delete(values, key)
	})
}

func (s *FileStore) update(ctx context.Context, key string, fn func(map[string]string)) error {
	if err := ctx.Err(); err != nil {
		return perrors.StoreWriteFailed(key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return perrors.StoreWriteFailed(key, err)
	}
	fn(values)
	if err := s.save(values); err != nil {
		return perrors.StoreWriteFailed(key, err)
	}
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	values := map[string]string{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
