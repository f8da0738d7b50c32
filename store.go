package goldtrack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Keys of the persisted records.
const (
	KeyPriceCache   = "price_cache"
	KeyAlarmConfig  = "alarm_config"
	KeyTransactions = "transactions"
)

// Store is the opaque string-keyed persistence collaborator. A missing key
// is not an error: Get reports it through the boolean.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemStore is an in-memory Store, used in tests and as a throwaway backend.
type MemStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemStore() *MemStore { return &MemStore{m: make(map[string]string)} }

func (s *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// FileStore persists each key as a file under Dir, in a way that is still
// human-readable and git-friendly. Writes are atomic: the value is written
// to a temporary file and renamed over the previous one, so a reader never
// observes a partial record.
type FileStore struct {
	Dir string
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	content, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read %q: %w", s.path(key), err)
	}
	return string(content), true, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.Dir, err)
	}
	f, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", key, err)
	}
	tmp := f.Name()
	_, werr := f.WriteString(value)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", key, firstErr(werr, cerr))
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %q: %w", s.path(key), err)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
