// Package format turns stored reminder fields into short display labels.
// Every function here is total: empty or nil input yields a sentinel
// label, never a panic.
package format

import "strings"

const minuteLayoutLen = len("2006-01-02 15:04")

// FormatDateTime trims an ISO-like timestamp to "yyyy-MM-dd HH:mm".
// The timezone suffix ("+08:00" or "Z") is dropped without conversion.
func FormatDateTime(raw string) string {
	if raw == "" {
		return ""
	}
	s, _, _ := strings.Cut(raw, "+")
	s, _, _ = strings.Cut(s, "Z")
	s = strings.Replace(s, "T", " ", 1)

	r := []rune(s)
	if len(r) > minuteLayoutLen {
		r = r[:minuteLayoutLen]
	}
	return string(r)
}
