package model

import "time"

// RepeatType is the unit a reminder repeats in.
type RepeatType string

const (
	RepeatDays   RepeatType = "days"
	RepeatWeeks  RepeatType = "weeks"
	RepeatMonths RepeatType = "months"
	RepeatYears  RepeatType = "years"
	RepeatNone   RepeatType = "none"
)

// Known reports whether t is one of the four repeating units.
func (t RepeatType) Known() bool {
	switch t {
	case RepeatDays, RepeatWeeks, RepeatMonths, RepeatYears:
		return true
	}
	return false
}

// RepeatSpec is the recurrence rule of a reminder.
// Interval < 0 means the reminder does not repeat; Interval == n >= 0
// places the next occurrence n+1 units after the current one.
type RepeatSpec struct {
	Type     RepeatType
	Interval int
}

// Repeats reports whether the spec describes a recurrence at all.
func (s RepeatSpec) Repeats() bool {
	return s.Interval >= 0 && s.Type.Known()
}

// Reminder is one scheduled task as exported by the reminder service.
type Reminder struct {
	ID                   int           `json:"id"`
	Name                 string        `json:"name"`
	Message              string        `json:"message"`
	CreatedAt            string        `json:"created_at"`
	StartDatetime        string        `json:"start_datetime"`
	CurrentTaskDatetime  string        `json:"current_task_datetime"`
	IsEnded              bool          `json:"is_ended"`
	EndedAt              string        `json:"ended_at,omitempty"`
	RepeatType           RepeatType    `json:"repeat_type"`
	RepeatInterval       int           `json:"repeat_interval"`
	RepeatTimes          int           `json:"repeat_times"`
	CurrentDoneTimes     int           `json:"current_done_times"`
	AdvanceDays          AdvanceDays   `json:"advance_days"`
	CurrentAdvanceStatus AdvanceStatus `json:"current_advance_status"`
}

// Repeat returns the reminder's recurrence rule.
func (r Reminder) Repeat() RepeatSpec {
	return RepeatSpec{Type: r.RepeatType, Interval: r.RepeatInterval}
}

// IsAlive reports whether the reminder still has work left at now.
// due is the parsed CurrentTaskDatetime; a zero due never expires.
func (r Reminder) IsAlive(now, due time.Time) bool {
	if r.IsEnded {
		return false
	}
	if r.RepeatTimes > 0 && r.RepeatTimes <= r.CurrentDoneTimes {
		return false
	}
	if r.RepeatInterval < 0 && !due.IsZero() && now.After(due) {
		return false
	}
	return true
}

// HasNext reports whether another occurrence follows the current one.
func (r Reminder) HasNext(now, due time.Time) bool {
	if !r.IsAlive(now, due) {
		return false
	}
	return r.RepeatInterval >= 0
}
