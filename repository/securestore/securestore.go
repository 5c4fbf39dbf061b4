// Package securestore persists the small key/value session state of the companion app.
package securestore

import (
	"context"
	"sync"

	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"go.uber.org/zap"
)

// Store is a string key/value store. A missing key reads as "" with no error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReadString returns the stored value, or "" when the read fails.
func ReadString(ctx context.Context, s Store, key string) string {
	v, err := s.Get(ctx, key)
	if err != nil {
		logger.Warn("[ReadString] secure store read failed", zap.String("key", key), zap.String("error", err.Error()))
		return ""
	}
	return v
}

// WriteString stores value, deleting the key when value is empty. Failures are logged and returned.
func WriteString(ctx context.Context, s Store, key, value string) error {
	var err error
	if value == "" {
		err = s.Delete(ctx, key)
	} else {
		err = s.Set(ctx, key, value)
	}
	if err != nil {
		logger.Error("[WriteString] secure store write failed", zap.String("key", key), zap.String("error", err.Error()))
	}
	return err
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() Store {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
