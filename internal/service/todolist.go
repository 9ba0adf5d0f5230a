package service

import (
	"context"
	"time"

	"github.com/alexanderramin/todo/internal/domain"
	"github.com/alexanderramin/todo/internal/repository"
)

// TodoList owns the item collection and its backing store. It is the
// only component that creates, mutates or destroys items, and it
// persists the full state after every successful mutation.
//
// Not safe for concurrent use; the tool is a single-threaded CLI.
type TodoList struct {
	store    repository.ListStore
	state    *repository.State
	observer UseCaseObserver
}

// Option configures a TodoList at construction.
type Option func(*TodoList)

// WithObserver attaches a use-case observer to all operations.
func WithObserver(obs UseCaseObserver) Option {
	return func(l *TodoList) {
		if obs != nil {
			l.observer = obs
		}
	}
}

// NewTodoList loads the persisted state once. A missing or corrupt store
// comes back as an empty list with the id counter reset to 1; only real
// I/O failures surface as errors.
func NewTodoList(ctx context.Context, store repository.ListStore, opts ...Option) (*TodoList, error) {
	st, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	l := &TodoList{
		store:    store,
		state:    st,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Add creates a new item with the next free id, appends it to the end of
// the list and persists. Duplicate titles are allowed.
func (l *TodoList) Add(ctx context.Context, title, description string, dueDate *time.Time, priority domain.Priority) (*domain.Item, error) {
	start := time.Now()

	item := domain.Item{
		ID:          l.state.NextID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
	}
	l.state.Todos = append(l.state.Todos, item)
	l.state.NextID++

	err := l.store.Save(ctx, l.state)
	l.observe(ctx, "todo_add", start, err, map[string]any{"item_id": item.ID})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes the item with the given id. Remaining ids keep their
// values and NextID does not move backwards. Returns false without
// touching the store when the id is unknown.
func (l *TodoList) Remove(ctx context.Context, id int) (bool, error) {
	start := time.Now()

	for idx, it := range l.state.Todos {
		if it.ID == id {
			l.state.Todos = append(l.state.Todos[:idx], l.state.Todos[idx+1:]...)
			err := l.store.Save(ctx, l.state)
			l.observe(ctx, "todo_remove", start, err, map[string]any{"item_id": id, "found": true})
			return err == nil, err
		}
	}
	l.observe(ctx, "todo_remove", start, nil, map[string]any{"item_id": id, "found": false})
	return false, nil
}

// Complete marks the item with the given id completed and persists.
// Completing an already-completed item still reports true. Returns false
// without a store write when the id is unknown.
func (l *TodoList) Complete(ctx context.Context, id int) (bool, error) {
	start := time.Now()

	for idx := range l.state.Todos {
		if l.state.Todos[idx].ID == id {
			l.state.Todos[idx].Complete()
			err := l.store.Save(ctx, l.state)
			l.observe(ctx, "todo_complete", start, err, map[string]any{"item_id": id, "found": true})
			return err == nil, err
		}
	}
	l.observe(ctx, "todo_complete", start, nil, map[string]any{"item_id": id, "found": false})
	return false, nil
}

// Get returns a copy of the item with the given id, or nil when absent.
// Lookups never touch the store.
func (l *TodoList) Get(id int) *domain.Item {
	for _, it := range l.state.Todos {
		if it.ID == id {
			item := it
			return &item
		}
	}
	return nil
}

// Items returns the items in insertion order. With showCompleted false,
// completed items are filtered out. The returned slice is a copy;
// mutating it does not affect the list.
func (l *TodoList) Items(showCompleted bool) []domain.Item {
	out := make([]domain.Item, 0, len(l.state.Todos))
	for _, it := range l.state.Todos {
		if !showCompleted && it.Completed {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Len reports how many items the list currently owns, completed or not.
func (l *TodoList) Len() int {
	return len(l.state.Todos)
}

func (l *TodoList) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	l.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
