package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore guarda los carritos en memoria del proceso. Se usa en
// tests y cuando no hay Redis configurado.
type MemoryStore struct {
	mu     sync.Mutex
	slots  map[string][]byte
	logger *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		slots:  make(map[string][]byte),
		logger: logger,
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]Item, error) {
	s.mu.Lock()
	raw := s.slots[StorageKeyPrefix+sessionID]
	s.mu.Unlock()

	return decodeItems(s.logger, sessionID, raw), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, items []Item) error {
	raw, err := encodeItems(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.slots[StorageKeyPrefix+sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.slots, StorageKeyPrefix+sessionID)
	s.mu.Unlock()
	return nil
}

// SeedRaw escribe bytes crudos en el slot, sin pasar por el codec.
func (s *MemoryStore) SeedRaw(sessionID string, raw []byte) {
	s.mu.Lock()
	s.slots[StorageKeyPrefix+sessionID] = raw
	s.mu.Unlock()
}
