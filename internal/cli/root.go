package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/paths"
	"github.com/idilsaglam/reminders/internal/store/jsonstore"
	"github.com/idilsaglam/reminders/internal/timeparse"
	"github.com/idilsaglam/reminders/internal/ui"
)

type App struct {
	Config   *config.Config
	DataPath string
	Location *time.Location
	// At is the instant reminders are evaluated against.
	At time.Time
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reminders",
		Short:         "Browse recurring reminder tasks in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return runBoard(app)
		},
	}
	cmd.PersistentFlags().String("config", "", "Path to config.json (defaults to ~/.config/reminders/config.json)")
	cmd.PersistentFlags().String("data", "", "Path to the reminder export (overrides data_file)")
	cmd.PersistentFlags().String("at", "", `Evaluate reminders at this time ("2024-05-01 09:00", "tomorrow 9am")`)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newFmtTimeCmd())
	return cmd
}

func initApp(cmd *cobra.Command) (*App, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = paths.ConfigPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	ui.SetColorMode(ui.ColorMode(cfg.Color))
	ui.SetTheme(cfg.Theme)

	loc, err := timeparse.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	dataPath, _ := cmd.Flags().GetString("data")
	if dataPath == "" {
		dataPath = cfg.DataFile
	}
	if !filepath.IsAbs(dataPath) {
		if dataPath, err = filepath.Abs(dataPath); err != nil {
			return nil, err
		}
	}

	atFlag, _ := cmd.Flags().GetString("at")
	at, err := timeparse.ParseAt(atFlag, time.Now(), loc)
	if err != nil {
		return nil, fmt.Errorf("--at: %w", err)
	}
	return &App{Config: cfg, DataPath: dataPath, Location: loc, At: at}, nil
}

func (a *App) Load() ([]model.Reminder, error) {
	items, err := jsonstore.Load(a.DataPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.DataPath, err)
	}
	return items, nil
}

// Due is the reminder's current task time; unparseable values are zero.
func (a *App) Due(r model.Reminder) time.Time {
	t, err := timeparse.ParseStored(r.CurrentTaskDatetime, a.Location)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (a *App) Alive(r model.Reminder) bool {
	return r.IsAlive(a.At, a.Due(r))
}
