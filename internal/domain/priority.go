package domain

import (
	"fmt"
	"strconv"
)

// Priority is the urgency level of an item. The wire format is the
// integer 1-3, which is also what the store file carries.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// DefaultPriority is applied when the store or the user omits a priority.
const DefaultPriority = PriorityLow

// Valid reports whether p is one of the three defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// ParsePriority converts the numeric CLI/storage representation.
func ParsePriority(s string) (Priority, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Priority(n).Valid() {
		return 0, fmt.Errorf("invalid priority %q: must be 1 (High), 2 (Medium) or 3 (Low)", s)
	}
	return Priority(n), nil
}

// Set implements pflag.Value so --priority binds straight to a Priority.
func (p *Priority) Set(s string) error {
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p Priority) Type() string { return "priority" }
