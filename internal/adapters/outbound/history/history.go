package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// FileStore implements domain.EventStore using a single JSON file. Events
// are kept oldest first on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Record(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return err
	}
	events = append(events, event)

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	// Write to a sibling file first so a crash never leaves a truncated history.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// Recent returns up to limit events of category, newest first. A
// non-positive limit returns every matching event.
func (s *FileStore) Recent(_ context.Context, category string, limit int) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return nil, err
	}

	out := []domain.Event{}
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Category != category {
			continue
		}
		out = append(out, events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *FileStore) load() ([]domain.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return events, nil
}
