package timeparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// DefaultZone is used when the config leaves the timezone empty.
const DefaultZone = "Asia/Shanghai"

var storedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func LoadLocation(name string) (*time.Location, error) {
	if strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	if name == "" {
		name = DefaultZone
	}
	return time.LoadLocation(name)
}

// ParseStored reads a datetime as exported by the reminder service.
// Values without an offset are taken to be in loc. Empty input is the
// zero time.
func ParseStored(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range storedLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime: %s", value)
}

// ParseAt resolves the --at flag. Empty means now; otherwise the value
// is a stored-format datetime or natural language ("tomorrow 9am").
func ParseAt(value string, now time.Time, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.In(loc), nil
	}
	if t, err := ParseStored(value, loc); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(value, now.In(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", value, err)
	}
	return t.In(loc), nil
}
