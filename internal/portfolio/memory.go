// internal/portfolio/memory.go
package portfolio

import (
	"context"
	"encoding/json"
	"sync"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/models"
)

// MemoryStore is an in-process Store used in tests and local development.
// Snapshots are stored as marshaled JSON so callers cannot alias the stored
// portfolio.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) (*models.Portfolio, error) {
	s.mu.RLock()
	raw, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.NewPortfolioNotFoundError(userID)
	}

	var p models.Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.NewPortfolioStoreFailedError("load", err)
	}
	return &p, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, p *models.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return errors.NewPortfolioStoreFailedError("save", err)
	}

	s.mu.Lock()
	s.data[userID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.data, userID)
	s.mu.Unlock()
	return nil
}
