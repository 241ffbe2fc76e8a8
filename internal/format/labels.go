package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/idilsaglam/reminders/internal/model"
)

// Sentinels shown when there is nothing to describe.
const (
	NoneLabel       = "无"
	NoReminderLabel = "不提醒"
	NoStatusLabel   = "-"
)

const (
	markAcked   = "√"
	markPending = "×"
)

var unitLabels = map[model.RepeatType]string{
	model.RepeatDays:   "天",
	model.RepeatWeeks:  "周",
	model.RepeatMonths: "月",
	model.RepeatYears:  "年",
}

// Progress renders done/repeat counts; non-repeating items show the bare count.
func Progress(doneTimes, repeatTimes int) string {
	if repeatTimes > 0 {
		return fmt.Sprintf("%d/%d", doneTimes, repeatTimes)
	}
	return strconv.Itoa(doneTimes)
}

// RepeatTypeStr describes how often a reminder repeats.
func RepeatTypeStr(repeatType model.RepeatType, repeatInterval int) string {
	if repeatInterval < 0 {
		return NoneLabel
	}
	unit, ok := unitLabels[repeatType]
	if !ok {
		return NoneLabel
	}
	if repeatInterval == 0 {
		return "每" + unit
	}
	return fmt.Sprintf("间隔%d%s", repeatInterval, unit)
}

// AdvanceDaysStr lists the days ahead of the due date a reminder fires.
func AdvanceDaysStr(advanceDays []int) string {
	if len(advanceDays) == 0 {
		return NoReminderLabel
	}
	parts := make([]string, 0, len(advanceDays))
	for _, d := range advanceDays {
		parts = append(parts, strconv.Itoa(d))
	}
	return "提前" + strings.Join(parts, ",") + "天"
}

// CurrentAdvanceStatusStr shows which advance reminders were acknowledged,
// in ascending day order.
func CurrentAdvanceStatusStr(status map[string]bool) string {
	if len(status) == 0 {
		return NoStatusLabel
	}
	keys := make([]string, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sortDayKeys(keys)

	segments := make([]string, 0, len(keys))
	for _, k := range keys {
		mark := markPending
		if status[k] {
			mark = markAcked
		}
		segments = append(segments, fmt.Sprintf("提前%s天:%s", k, mark))
	}
	return strings.Join(segments, "; ")
}

// sortDayKeys orders keys by numeric value. Keys that are not numbers
// go last, in lexical order.
func sortDayKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, aErr := strconv.ParseFloat(strings.TrimSpace(keys[i]), 64)
		b, bErr := strconv.ParseFloat(strings.TrimSpace(keys[j]), 64)
		switch {
		case aErr == nil && bErr == nil:
			if a != b {
				return a < b
			}
			return keys[i] < keys[j]
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}

// Row collects every display label of r, in board column order.
func Row(r model.Reminder) []string {
	return []string{
		FormatDateTime(r.CurrentTaskDatetime),
		Progress(r.CurrentDoneTimes, r.RepeatTimes),
		RepeatTypeStr(r.RepeatType, r.RepeatInterval),
		AdvanceDaysStr(r.AdvanceDays),
		CurrentAdvanceStatusStr(r.CurrentAdvanceStatus),
	}
}
