package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_String(t *testing.T) {
	cases := []struct {
		p    Priority
		want string
	}{
		{PriorityHigh, "High"},
		{PriorityMedium, "Medium"},
		{PriorityLow, "Low"},
		{Priority(9), "Priority(9)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.String())
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("1")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	for _, bad := range []string{"0", "4", "-1", "high", ""} {
		_, err := ParsePriority(bad)
		assert.Error(t, err, "input=%q", bad)
	}
}

func TestPriority_PflagValue(t *testing.T) {
	p := DefaultPriority
	require.NoError(t, p.Set("2"))
	assert.Equal(t, PriorityMedium, p)
	assert.Equal(t, "priority", p.Type())

	err := p.Set("7")
	assert.Error(t, err)
	assert.Equal(t, PriorityMedium, p, "failed Set should not change the value")
}
