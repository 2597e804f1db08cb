// Package flatstore is the local flat tier: a string key/value map persisted
// as a single JSON file, bounded by a byte quota.
//
// All operations are synchronous. A FileStore with an empty path keeps its
// data in memory only. A backing file that does not parse is treated as
// empty: the first Get reports common.ErrCorruptData and the next write
// replaces the file.
package flatstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/morvin2701/pixelwalls/internal/common"
	"github.com/morvin2701/pixelwalls/internal/filex"
)

// DefaultQuota matches the usual browser storage allowance.
const DefaultQuota = 5 << 20

// CollectionKey is where a user's wallpaper list is kept.
func CollectionKey(userID string) string {
	return common.CollectionKeyPrefix + "_" + userID
}

// FileStore is safe for concurrent use.
type FileStore struct {
	path  string
	quota int

	mu      sync.Mutex
	loaded  bool
	corrupt error
	data    map[string]string
	size    int
}

// NewFileStore returns a store backed by path. quota <= 0 selects
// DefaultQuota.
func NewFileStore(path string, quota int) *FileStore {
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &FileStore{path: path, quota: quota}
}

// Get returns the value for key and whether it was present.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", false, err
	}
	if err := s.corrupt; err != nil {
		s.corrupt = nil
		return "", false, err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key. Exceeding the quota fails with
// common.ErrQuotaExceeded and leaves the store unchanged.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	old, had := s.data[key]
	newSize := s.size + len(key) + len(value)
	if had {
		newSize -= len(key) + len(old)
	}
	if newSize > s.quota {
		return fmt.Errorf("set %q (%d bytes): %w", key, len(value), common.ErrQuotaExceeded)
	}

	s.data[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.data[key] = old
		} else {
			delete(s.data, key)
		}
		return err
	}
	s.size, s.corrupt = newSize, nil
	return nil
}

// Delete removes key. Removing an absent key is not an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	old, ok := s.data[key]
	if !ok {
		return nil
	}
	delete(s.data, key)
	if err := s.flush(); err != nil {
		s.data[key] = old
		return err
	}
	s.size -= len(key) + len(old)
	return nil
}

// Size reports the bytes currently counted against the quota.
func (s *FileStore) Size() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return 0, err
	}
	return s.size, nil
}

func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}
	data := map[string]string{}
	var corrupt error
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return fmt.Errorf("read %s: %w", s.path, err)
		case len(b) > 0:
			if err := json.Unmarshal(b, &data); err != nil {
				corrupt = fmt.Errorf("parse %s: %w: %v", s.path, common.ErrCorruptData, err)
				data = map[string]string{}
			}
		}
	}

	size := 0
	for k, v := range data {
		size += len(k) + len(v)
	}
	s.data, s.size, s.loaded, s.corrupt = data, size, true, corrupt
	return nil
}

func (s *FileStore) flush() error {
	if s.path == "" {
		return nil
	}
	b, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(s.path, b, 0o600)
}
