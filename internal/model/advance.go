package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AdvanceStatus maps an advance day ("1", "7", ...) to whether the
// reminder for that day has been acknowledged.
type AdvanceStatus map[string]bool

// AdvanceDays lists how many days before the due date to remind.
// It decodes from a JSON list or from the service's stored string form.
type AdvanceDays []int

func (d *AdvanceDays) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		*d = ParseAdvanceDays(raw)
		return nil
	}
	var days []int
	if err := json.Unmarshal(b, &days); err != nil {
		return fmt.Errorf("advance_days: %w", err)
	}
	*d = days
	return nil
}

// ParseAdvanceDays reads the stored advance-day list. Both the JSON list
// form ("[1, 2, 7]") and a bare comma list ("1,2,7") are accepted. The
// result is sorted; anything unreadable yields an empty list.
func ParseAdvanceDays(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}
	}
	var days []int
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &days); err != nil {
			return []int{}
		}
	} else {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return []int{}
			}
			days = append(days, n)
		}
	}
	if days == nil {
		return []int{}
	}
	sort.Ints(days)
	return days
}

// InitAdvanceStatus returns a fresh, all-unacknowledged status for days.
func InitAdvanceStatus(days []int) AdvanceStatus {
	status := make(AdvanceStatus, len(days))
	for _, d := range days {
		status[strconv.Itoa(d)] = false
	}
	return status
}
