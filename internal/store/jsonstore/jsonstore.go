package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/reminders/internal/model"
)

// Read-only view of the reminder export. The reminder service owns the
// data; this package never writes it back.

const DefaultFileName = "reminders.json"

// Load reads the export at path. A missing file is an empty list.
func Load(path string) ([]model.Reminder, error) {
	// #nosec G304 -- path comes from the user's config or flags
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Reminder{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Reminder
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i := range items {
		r := &items[i]
		if r.AdvanceDays == nil {
			r.AdvanceDays = model.AdvanceDays{}
		}
		// never-acknowledged records are exported without a status
		if r.CurrentAdvanceStatus == nil && len(r.AdvanceDays) > 0 {
			r.CurrentAdvanceStatus = model.InitAdvanceStatus(r.AdvanceDays)
		}
	}
	return items, nil
}
