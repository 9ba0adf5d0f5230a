package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/todo/internal/domain"
)

// NewTestStorePath returns a store path inside a per-test temp dir; the
// file does not exist until something saves to it.
func NewTestStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todo_data.json")
}

// ItemOption customizes a fixture item.
type ItemOption func(*domain.Item)

func WithDescription(d string) ItemOption {
	return func(i *domain.Item) {
		i.Description = d
	}
}

func WithDueDate(d time.Time) ItemOption {
	return func(i *domain.Item) {
		i.DueDate = &d
	}
}

func WithPriority(p domain.Priority) ItemOption {
	return func(i *domain.Item) {
		i.Priority = p
	}
}

func WithCompleted() ItemOption {
	return func(i *domain.Item) {
		i.Completed = true
	}
}

// NewTestItem builds an item with sensible defaults for tests.
func NewTestItem(id int, title string, opts ...ItemOption) domain.Item {
	i := domain.Item{
		ID:       id,
		Title:    title,
		Priority: domain.DefaultPriority,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}
