package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/todo/internal/domain"
	"github.com/alexanderramin/todo/internal/repository"
	"github.com/alexanderramin/todo/internal/service"
	"github.com/alexanderramin/todo/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTUIFixture(t *testing.T, titles ...string) (listTUI, *service.TodoList) {
	t.Helper()
	ctx := context.Background()
	svc, err := service.NewTodoList(ctx, repository.NewJSONFileStore(testutil.NewTestStorePath(t)))
	require.NoError(t, err)
	for _, title := range titles {
		_, err := svc.Add(ctx, title, "", nil, domain.DefaultPriority)
		require.NoError(t, err)
	}
	return newListTUI(ctx, svc), svc
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m tea.Model, msg tea.Msg) listTUI {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(listTUI)
	require.True(t, ok)
	return got
}

func TestListTUI_ShowsAllItemsIncludingCompleted(t *testing.T) {
	m, svc := newTUIFixture(t, "one", "two")
	_, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)

	m.reload()
	assert.Len(t, m.list.Items(), 2)
}

func TestListTUI_SpaceCompletesSelected(t *testing.T) {
	m, svc := newTUIFixture(t, "first", "second")

	m = step(t, m, keyMsg(" "))

	item := svc.Get(1)
	require.NotNil(t, item)
	assert.True(t, item.Completed)
	assert.False(t, svc.Get(2).Completed)
}

func TestListTUI_DeleteRemovesSelected(t *testing.T) {
	m, svc := newTUIFixture(t, "doomed", "kept")

	m = step(t, m, keyMsg("d"))

	assert.Nil(t, svc.Get(1))
	require.NotNil(t, svc.Get(2))
	assert.Len(t, m.list.Items(), 1)
}

func TestListTUI_InlineAddPersists(t *testing.T) {
	m, svc := newTUIFixture(t)

	m = step(t, m, keyMsg("a"))
	assert.True(t, m.adding)

	for _, r := range "Buy milk" {
		m = step(t, m, keyMsg(string(r)))
	}
	m = step(t, m, keyMsg("enter"))

	assert.False(t, m.adding)
	require.Equal(t, 1, svc.Len())
	item := svc.Get(1)
	require.NotNil(t, item)
	assert.Equal(t, "Buy milk", item.Title)
	assert.Equal(t, domain.PriorityLow, item.Priority)
}

func TestListTUI_AddEmptyTitleIgnored(t *testing.T) {
	m, svc := newTUIFixture(t)

	m = step(t, m, keyMsg("a"))
	m = step(t, m, keyMsg("enter"))

	assert.True(t, m.adding, "empty title keeps the input open")
	assert.Equal(t, 0, svc.Len())
}

func TestListTUI_EscCancelsAdd(t *testing.T) {
	m, svc := newTUIFixture(t, "existing")

	m = step(t, m, keyMsg("a"))
	m = step(t, m, keyMsg("esc"))

	assert.False(t, m.adding)
	assert.Equal(t, 1, svc.Len())
}

func TestListTUI_QuitKey(t *testing.T) {
	m, _ := newTUIFixture(t, "x")

	next, cmd := m.Update(keyMsg("q"))
	_, ok := next.(listTUI)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
