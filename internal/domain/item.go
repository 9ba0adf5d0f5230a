package domain

import (
	"encoding/json"
	"time"
)

// DueDateLayout is the date format used in the store file and on the CLI.
const DueDateLayout = "2006-01-02"

// Item is a single todo entry. Items are created, completed and removed
// only through the owning service.TodoList; the ID never changes once
// assigned and is never reused.
type Item struct {
	ID          int
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Completed   bool
}

// Complete marks the item completed. The transition is one-way; no
// reverse operation exists.
func (i *Item) Complete() {
	i.Completed = true
}

// itemRecord is the wire shape of an item in the store file.
type itemRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date,omitempty"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	rec := itemRecord{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Priority:    i.Priority,
		Completed:   i.Completed,
	}
	if i.DueDate != nil {
		s := i.DueDate.Format(DueDateLayout)
		rec.DueDate = &s
	}
	return json.Marshal(rec)
}

// UnmarshalJSON applies defaults for absent optional fields: empty
// description, no due date, Low priority, not completed.
func (i *Item) UnmarshalJSON(data []byte) error {
	rec := itemRecord{Priority: DefaultPriority}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	i.ID = rec.ID
	i.Title = rec.Title
	i.Description = rec.Description
	i.Priority = rec.Priority
	i.Completed = rec.Completed
	i.DueDate = nil
	if rec.DueDate != nil && *rec.DueDate != "" {
		t, err := time.Parse(DueDateLayout, *rec.DueDate)
		if err != nil {
			return err
		}
		i.DueDate = &t
	}
	return nil
}
