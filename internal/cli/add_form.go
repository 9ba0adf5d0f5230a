package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/todo/internal/domain"
	"github.com/charmbracelet/huh"
)

// runAddForm collects the fields of a new item interactively. Initial
// values come from whatever flags the user already passed; the due date
// is returned in YYYY-MM-DD form, empty for none.
func runAddForm(description, dueDate string, priority domain.Priority) (string, string, string, domain.Priority, error) {
	var title string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validateRequired).
				Value(&title),
			huh.NewInput().
				Title("Description (blank for none)").
				Value(&description),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-09-30").
				Validate(validateOptionalDate).
				Value(&dueDate),
			huh.NewSelect[domain.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("High", domain.PriorityHigh),
					huh.NewOption("Medium", domain.PriorityMedium),
					huh.NewOption("Low", domain.PriorityLow),
				).
				Value(&priority),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", "", 0, err
	}
	return title, description, dueDate, priority, nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DueDateLayout, s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
