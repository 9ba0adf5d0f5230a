package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/todo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	glyphDone    = "✓"
	glyphPending = "✗"

	ruleWidth = 50
)

// FormatItemLine renders the one-line summary of an item:
//
//	3. [✗] Buy milk | Due: 2026-10-02 | Priority: High
func FormatItemLine(it domain.Item) string {
	status := StyleYellow.Render(glyphPending)
	title := Bold(it.Title)
	if it.Completed {
		status = StyleGreen.Render(glyphDone)
		title = StyleDone.Render(it.Title)
	}

	due := ""
	if it.DueDate != nil {
		due = " | Due: " + DueDateStyled(*it.DueDate, it.Completed)
	}

	return fmt.Sprintf("%d. [%s] %s%s | Priority: %s",
		it.ID, status, title, due,
		PriorityStyle(it.Priority).Render(it.Priority.String()))
}

// FormatItem renders the two-line form: the summary line followed by the
// indented description.
func FormatItem(it domain.Item) string {
	return FormatItemLine(it) + "\n   " + it.Description
}

// FormatList renders the full listing the way the list command prints
// it: a header, a rule, one item block per entry, a closing rule.
func FormatList(items []domain.Item) string {
	var b strings.Builder
	b.WriteString("\nTo-Do List:\n")
	b.WriteString(Dim(strings.Repeat("=", ruleWidth)) + "\n")
	for _, it := range items {
		b.WriteString(FormatItem(it) + "\n")
	}
	b.WriteString(Dim(strings.Repeat("=", ruleWidth)) + "\n")
	return b.String()
}

// DueDateStyled renders a due date in YYYY-MM-DD form with urgency
// coloring: red when overdue or due within two days, yellow within a
// week, plain otherwise. Completed items always render dim.
func DueDateStyled(t time.Time, completed bool) string {
	text := t.Format(domain.DueDateLayout)
	if completed {
		return Dim(text)
	}
	days := int(time.Until(t).Hours() / 24)
	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}
