package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	rrule "github.com/teambition/rrule-go"

	"github.com/idilsaglam/reminders/internal/model"
)

var freqs = map[model.RepeatType]string{
	model.RepeatDays:   "DAILY",
	model.RepeatWeeks:  "WEEKLY",
	model.RepeatMonths: "MONTHLY",
	model.RepeatYears:  "YEARLY",
}

// RuleString renders spec as an RFC 5545 rule. A stored interval of n
// means "every n+1 units". Non-repeating specs yield "".
func RuleString(spec model.RepeatSpec) string {
	if !spec.Repeats() {
		return ""
	}
	freq := freqs[spec.Type]
	if spec.Interval == 0 {
		return "RRULE:FREQ=" + freq
	}
	return fmt.Sprintf("RRULE:FREQ=%s;INTERVAL=%d", freq, spec.Interval+1)
}

// Next returns the first occurrence strictly after t, counting from t.
func Next(spec model.RepeatSpec, t time.Time) (time.Time, bool, error) {
	r, err := build(spec, t)
	if err != nil || r == nil {
		return time.Time{}, false, err
	}
	next := r.After(t, false)
	if next.IsZero() {
		return time.Time{}, false, nil
	}
	return next.In(t.Location()), true, nil
}

// Previous returns the occurrence before t of the series that began at
// start. It reports false when t is the first occurrence.
func Previous(spec model.RepeatSpec, t, start time.Time) (time.Time, bool, error) {
	r, err := build(spec, start)
	if err != nil || r == nil {
		return time.Time{}, false, err
	}
	prev := r.Before(t, false)
	if prev.IsZero() {
		return time.Time{}, false, nil
	}
	return prev.In(t.Location()), true, nil
}

// Upcoming lists the next n occurrences after t.
func Upcoming(spec model.RepeatSpec, t time.Time, n int) ([]time.Time, error) {
	out := make([]time.Time, 0, n)
	cur := t
	for len(out) < n {
		next, ok, err := Next(spec, cur)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

// monthEndClause keeps a series anchored late in the month on the last
// available day of shorter months (Jan 31 -> Feb 29, Feb 29 -> Feb 28)
// instead of skipping them.
func monthEndClause(spec model.RepeatSpec, start time.Time) string {
	day := start.Day()
	if day <= 28 {
		return ""
	}
	days := make([]string, 0, day-27)
	for d := 28; d <= day; d++ {
		days = append(days, strconv.Itoa(d))
	}
	clause := ";BYMONTHDAY=" + strings.Join(days, ",") + ";BYSETPOS=-1"
	switch spec.Type {
	case model.RepeatMonths:
		return clause
	case model.RepeatYears:
		return fmt.Sprintf(";BYMONTH=%d", int(start.Month())) + clause
	}
	return ""
}

func build(spec model.RepeatSpec, start time.Time) (*rrule.RRule, error) {
	rule := RuleString(spec)
	if rule == "" {
		return nil, nil
	}
	rule += monthEndClause(spec, start)
	loc := start.Location()
	if loc == nil {
		loc = time.Local
	}
	option, err := rrule.StrToROptionInLocation(rule, loc)
	if err != nil {
		return nil, fmt.Errorf("parse rule %q: %w", rule, err)
	}
	option.Dtstart = start
	r, err := rrule.NewRRule(*option)
	if err != nil {
		return nil, fmt.Errorf("build rule %q: %w", rule, err)
	}
	return r, nil
}
