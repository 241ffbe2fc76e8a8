package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/reminders/internal/model"
)

const export = `[
  {
    "id": 3,
    "name": "Renew passport",
    "message": "bring photos",
    "start_datetime": "2024-05-01T10:30:00+08:00",
    "current_task_datetime": "2024-05-01T10:30:00+08:00",
    "is_ended": false,
    "repeat_type": "years",
    "repeat_interval": 0,
    "repeat_times": -1,
    "current_done_times": 2,
    "advance_days": [1, 7],
    "current_advance_status": {"7": true, "1": false}
  },
  {"id": 4, "name": "Call mom", "repeat_type": "none", "repeat_interval": -1}
]`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))

	items, err := Load(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Renew passport", first.Name)
	assert.Equal(t, model.RepeatYears, first.RepeatType)
	assert.Equal(t, model.AdvanceDays{1, 7}, first.AdvanceDays)
	assert.Equal(t, model.AdvanceStatus{"1": false, "7": true}, first.CurrentAdvanceStatus)

	assert.Equal(t, model.AdvanceDays{}, items[1].AdvanceDays)
	assert.Nil(t, items[1].CurrentAdvanceStatus)
}

func TestLoadStoredStringDaysGetFreshStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	body := `[{"name": "Dentist", "advance_days": "7,1", "repeat_interval": -1}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	items, err := Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.AdvanceDays{1, 7}, items[0].AdvanceDays)
	assert.Equal(t, model.AdvanceStatus{"1": false, "7": false}, items[0].CurrentAdvanceStatus)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	items, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "json unmarshal")
}
