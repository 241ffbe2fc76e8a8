package main

import (
	"os"
	_ "time/tzdata"

	"github.com/idilsaglam/reminders/internal/cli"
	"github.com/idilsaglam/reminders/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
