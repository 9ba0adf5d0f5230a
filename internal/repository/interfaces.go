package repository

import (
	"context"

	"github.com/alexanderramin/todo/internal/domain"
)

// State is the full persisted document: every item in insertion order
// plus the next id to allocate. NextID is strictly greater than every id
// ever issued, including removed ones.
type State struct {
	Todos  []domain.Item `json:"todos"`
	NextID int           `json:"next_id"`
}

// ListStore persists the whole todo list as a single document. Every
// Save is a full rewrite; there is no incremental update.
type ListStore interface {
	// Load reads the persisted state. A missing store, or one that
	// cannot be parsed, yields a fresh empty state rather than an error;
	// only genuine I/O failures are returned.
	Load(ctx context.Context) (*State, error)

	// Save replaces the persisted state with s.
	Save(ctx context.Context, s *State) error
}
