package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/reminders/internal/model"
)

func TestFormatDateTime(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"2024-05-01T10:30:00+08:00": "2024-05-01 10:30",
		"2024-05-01T10:30:00Z":      "2024-05-01 10:30",
		"2024-05-01T10:30:00.123Z":  "2024-05-01 10:30",
		"2024-05-01 10:30:59":       "2024-05-01 10:30",
		"2024-05-01":                "2024-05-01",
		"2024-05-01T10":             "2024-05-01 10",
		"garbage":                   "garbage",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDateTime(in), "input %q", in)
	}
}

func TestFormatDateTime_OnlyFirstSeparatorReplaced(t *testing.T) {
	assert.Equal(t, "2024-05-01 T", FormatDateTime("2024-05-01TT"))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, "2/5", Progress(2, 5))
	assert.Equal(t, "3", Progress(3, 0))
	assert.Equal(t, "3", Progress(3, -1))
	assert.Equal(t, "0", Progress(0, 0))
}

func TestRepeatTypeStr(t *testing.T) {
	assert.Equal(t, "无", RepeatTypeStr(model.RepeatDays, -1))
	assert.Equal(t, "每周", RepeatTypeStr(model.RepeatWeeks, 0))
	assert.Equal(t, "间隔3月", RepeatTypeStr(model.RepeatMonths, 3))
	assert.Equal(t, "每天", RepeatTypeStr(model.RepeatDays, 0))
	assert.Equal(t, "间隔2年", RepeatTypeStr(model.RepeatYears, 2))
	assert.Equal(t, "无", RepeatTypeStr("unknown", 1))
	assert.Equal(t, "无", RepeatTypeStr("unknown", 0))
	assert.Equal(t, "无", RepeatTypeStr(model.RepeatNone, 0))
	assert.Equal(t, "无", RepeatTypeStr("", 0))
}

func TestAdvanceDaysStr(t *testing.T) {
	assert.Equal(t, "不提醒", AdvanceDaysStr(nil))
	assert.Equal(t, "不提醒", AdvanceDaysStr([]int{}))
	assert.Equal(t, "提前1,3,7天", AdvanceDaysStr([]int{1, 3, 7}))
	assert.Equal(t, "提前0天", AdvanceDaysStr([]int{0}))
}

func TestCurrentAdvanceStatusStr(t *testing.T) {
	assert.Equal(t, "-", CurrentAdvanceStatusStr(nil))
	assert.Equal(t, "-", CurrentAdvanceStatusStr(map[string]bool{}))
	assert.Equal(t, "提前1天:×; 提前7天:√",
		CurrentAdvanceStatusStr(map[string]bool{"7": true, "1": false}))
}

func TestCurrentAdvanceStatusStr_NumericOrder(t *testing.T) {
	status := model.AdvanceStatus{"10": false, "2": true, "1": true}
	assert.Equal(t, "提前1天:√; 提前2天:√; 提前10天:×", CurrentAdvanceStatusStr(status))
}

func TestCurrentAdvanceStatusStr_NonNumericKeysLast(t *testing.T) {
	status := map[string]bool{"b": false, "3": true, "a": true}
	assert.Equal(t, "提前3天:√; 提前a天:√; 提前b天:×", CurrentAdvanceStatusStr(status))
}

func TestRow(t *testing.T) {
	r := model.Reminder{
		CurrentTaskDatetime:  "2024-05-01T10:30:00+08:00",
		CurrentDoneTimes:     1,
		RepeatTimes:          4,
		RepeatType:           model.RepeatWeeks,
		RepeatInterval:       0,
		AdvanceDays:          []int{1, 3},
		CurrentAdvanceStatus: model.AdvanceStatus{"3": true, "1": false},
	}
	assert.Equal(t, []string{
		"2024-05-01 10:30",
		"1/4",
		"每周",
		"提前1,3天",
		"提前1天:×; 提前3天:√",
	}, Row(r))

	assert.Equal(t, []string{"", "0", "无", "不提醒", "-"}, Row(model.Reminder{}))
}
