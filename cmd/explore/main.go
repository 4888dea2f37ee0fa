package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/termgrid/internal/config"
	"github.com/young1lin/termgrid/internal/store"
	"github.com/young1lin/termgrid/internal/update"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	// Update checks run in the background so the browser starts
	// immediately
	go func() {
		checker := update.NewChecker(update.Version)
		release, err := checker.Check()
		if err != nil || release == nil {
			return
		}
		fmt.Fprintf(os.Stderr, "\n🎉 Update available: %s → %s\n",
			update.Version, release.TagName)
		fmt.Fprintf(os.Stderr, "Visit %s to download\n\n", release.HTMLURL)
	}()

	err := run(&AppDependencies{
		Args:     os.Args[1:],
		Getwd:    os.Getwd,
		Stat:     os.Stat,
		DBPath:   config.VisitsDBPath,
		DBOpener: store.Open,
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	})
	logAndExit(err)
}

func logAndExit(err error) {
	// This is a separate function to allow testing of error handling
	if err != nil {
		fmt.Fprintf(os.Stderr, "explore: %v\n", err)
		exitFunc(1)
	}
}
