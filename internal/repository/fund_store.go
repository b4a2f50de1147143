package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

// FundStore persists the cow funds as a whole-collection JSON file, unlike
// the append-only missing-items log. A missing or corrupted file falls
// back to the seed funds.
type FundStore struct {
	path string
	mu   sync.Mutex
}

// NewFundStore creates a store backed by the given file path.
func NewFundStore(path string) *FundStore {
	return &FundStore{path: path}
}

// Load returns the stored funds, or the seed collection when the file is
// absent or unreadable.
func (s *FundStore) Load() []models.CowFund {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return SeedFunds()
	}

	var funds []models.CowFund
	if err := json.Unmarshal(data, &funds); err != nil {
		return SeedFunds()
	}
	return funds
}

// Save replaces the whole stored collection.
func (s *FundStore) Save(funds []models.CowFund) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(funds, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
