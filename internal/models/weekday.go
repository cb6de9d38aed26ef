package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// WeekdaySet is a set of days of the week, one bit per time.Weekday.
type WeekdaySet uint8

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var (
	rangeSeparator = regexp.MustCompile(`(?i)\s*(?:-|–|\bto\b)\s*`)
	listSeparator  = regexp.MustCompile(`(?i)[,;/|&]+|\s+and\s+|\s+`)
)

// ParseWeekday resolves a full or abbreviated day name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(strings.TrimSuffix(s, ".")))]
	return day, ok
}

// ParseWeekdaySet parses delimited availability text such as "Monday, Wednesday, Friday"
// or "Mon-Fri". Unrecognised tokens are reported in the error; recognised ones are still returned.
func ParseWeekdaySet(text string) (WeekdaySet, error) {
	var set WeekdaySet
	var unknown []string

	normalized := rangeSeparator.ReplaceAllString(strings.TrimSpace(text), "-")
	for _, token := range listSeparator.Split(normalized, -1) {
		if token == "" {
			continue
		}
		if strings.Contains(token, "-") {
			days, ok := parseWeekdayRange(token)
			if !ok {
				unknown = append(unknown, token)
				continue
			}
			set |= days
			continue
		}
		day, ok := ParseWeekday(token)
		if !ok {
			unknown = append(unknown, token)
			continue
		}
		set = set.With(day)
	}

	if len(unknown) > 0 {
		return set, fmt.Errorf("unrecognised weekday tokens %q in %q", unknown, text)
	}
	return set, nil
}

// parseWeekdayRange expands "Mon-Fri" and chains such as "Mon-Wed-Fri", where each
// consecutive pair is a range that wraps past Sunday.
func parseWeekdayRange(token string) (WeekdaySet, bool) {
	var set WeekdaySet
	parts := strings.Split(token, "-")
	days := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		day, ok := ParseWeekday(part)
		if !ok {
			return 0, false
		}
		days = append(days, day)
	}
	for i := 0; i+1 < len(days); i++ {
		for d := days[i]; ; d = (d + 1) % 7 {
			set = set.With(d)
			if d == days[i+1] {
				break
			}
		}
	}
	return set, true
}

// With returns the set plus day.
func (s WeekdaySet) With(day time.Weekday) WeekdaySet {
	return s | 1<<uint(day)
}

// Has reports whether day is in the set.
func (s WeekdaySet) Has(day time.Weekday) bool {
	return s&(1<<uint(day)) != 0
}

// Days lists the members from Sunday to Saturday.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

// MarshalJSON renders the set as a list of day names.
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return json.Marshal(names)
}
