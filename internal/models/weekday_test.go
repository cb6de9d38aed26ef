package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdaySet(t *testing.T) {
	tests := []struct {
		input string
		want  []time.Weekday
	}{
		{"Monday, Wednesday, Friday", []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{"Tue;Thu", []time.Weekday{time.Tuesday, time.Thursday}},
		{"Mon-Fri", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		{"Monday to Wednesday", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}},
		{"Fri - Mon", []time.Weekday{time.Sunday, time.Monday, time.Friday, time.Saturday}},
		{"saturday and SUNDAY", []time.Weekday{time.Sunday, time.Saturday}},
		{"Mon-Wed-Fri", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		{"Sat-Sun-Mon", []time.Weekday{time.Sunday, time.Monday, time.Saturday}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			set, err := ParseWeekdaySet(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Days())
		})
	}
}

func TestParseWeekdaySetReportsUnknownTokens(t *testing.T) {
	set, err := ParseWeekdaySet("Monday, Someday")
	require.Error(t, err)
	assert.True(t, set.Has(time.Monday))
	assert.Equal(t, []time.Weekday{time.Monday}, set.Days())
}

func TestWeekdaySetMembershipIsNotSubstring(t *testing.T) {
	set, err := ParseWeekdaySet("Thursday")
	require.NoError(t, err)

	tue, ok := ParseWeekday("Tue")
	require.True(t, ok)
	assert.False(t, set.Has(tue))

	_, ok = ParseWeekday("day")
	assert.False(t, ok)
}

func TestWeekdaySetJSON(t *testing.T) {
	set := WeekdaySet(0).With(time.Monday).With(time.Friday)

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["Monday","Friday"]`, string(raw))
	assert.Equal(t, "Monday, Friday", set.String())
}
