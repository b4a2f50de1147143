package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

var ErrWriteFailed = errors.New("failed to write missing items store")

// MissingItemStore persists the missing-items list as an append-only JSON
// file. Reads never fail: a corrupted or unreadable file resets to an
// empty list so the dashboard keeps working.
type MissingItemStore struct {
	path string
	mu   sync.Mutex
}

// NewMissingItemStore creates a store backed by the given file path.
func NewMissingItemStore(path string) *MissingItemStore {
	return &MissingItemStore{path: path}
}

// List returns all stored items, oldest first.
func (s *MissingItemStore) List() []models.MissingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Append adds one item to the log and persists the whole list.
// On write failure the error wraps ErrWriteFailed so the caller can
// surface a non-fatal notice.
func (s *MissingItemStore) Append(item models.MissingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := append(s.read(), item)
	return s.write(items)
}

// Clear removes every stored item.
func (s *MissingItemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]models.MissingItem{})
}

func (s *MissingItemStore) read() []models.MissingItem {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.MissingItem{}
	}

	var items []models.MissingItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupted store: reset rather than fail the read.
		return []models.MissingItem{}
	}
	return items
}

func (s *MissingItemStore) write(items []models.MissingItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
