package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_OneWay(t *testing.T) {
	i := &Item{ID: 1, Title: "Buy milk"}
	assert.False(t, i.Completed)

	i.Complete()
	assert.True(t, i.Completed)

	// Completing again keeps the item completed.
	i.Complete()
	assert.True(t, i.Completed)
}

func TestItem_MarshalJSON_AllFields(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	i := Item{
		ID:          7,
		Title:       "File taxes",
		Description: "Gather receipts first",
		DueDate:     &due,
		Priority:    PriorityHigh,
		Completed:   true,
	}

	b, err := json.Marshal(i)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, float64(7), m["id"])
	assert.Equal(t, "File taxes", m["title"])
	assert.Equal(t, "Gather receipts first", m["description"])
	assert.Equal(t, "2026-09-01", m["due_date"])
	assert.Equal(t, float64(1), m["priority"])
	assert.Equal(t, true, m["completed"])
}

func TestItem_MarshalJSON_NoDueDate(t *testing.T) {
	b, err := json.Marshal(Item{ID: 1, Title: "x", Priority: PriorityLow})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	_, present := m["due_date"]
	assert.False(t, present, "absent due date should be omitted")
	// Description stays present even when empty.
	assert.Equal(t, "", m["description"])
}

func TestItem_UnmarshalJSON_Defaults(t *testing.T) {
	var i Item
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "title": "Water plants"}`), &i))

	assert.Equal(t, 3, i.ID)
	assert.Equal(t, "Water plants", i.Title)
	assert.Equal(t, "", i.Description)
	assert.Nil(t, i.DueDate)
	assert.Equal(t, PriorityLow, i.Priority)
	assert.False(t, i.Completed)
}

func TestItem_UnmarshalJSON_RoundTrip(t *testing.T) {
	due := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	in := Item{
		ID:          12,
		Title:       "Wrap presents",
		Description: "Don't forget tape",
		DueDate:     &due,
		Priority:    PriorityMedium,
		Completed:   false,
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Item
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestItem_UnmarshalJSON_BadDueDate(t *testing.T) {
	var i Item
	err := json.Unmarshal([]byte(`{"id": 1, "title": "x", "due_date": "24/12/2026"}`), &i)
	assert.Error(t, err)
}
