package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/todo/internal/domain"
)

// DefaultFileName is the fixed store location, relative to the working
// directory the tool runs in.
const DefaultFileName = "todo_data.json"

// JSONFileStore keeps the list in one human-readable JSON file.
// No locking; the tool assumes a single process per store path.
type JSONFileStore struct {
	path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func emptyState() *State {
	return &State{Todos: []domain.Item{}, NextID: 1}
}

func (s *JSONFileStore) Load(ctx context.Context) (*State, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyState(), nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		// Corrupt store: start over with an empty list instead of
		// failing every subsequent invocation.
		return emptyState(), nil
	}
	if st.NextID < 1 {
		return emptyState(), nil
	}
	if st.Todos == nil {
		st.Todos = []domain.Item{}
	}
	return &st, nil
}

func (s *JSONFileStore) Save(ctx context.Context, st *State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	// Write-then-rename so readers never observe a half-written file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
