package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/termgrid/internal/config"
	"github.com/young1lin/termgrid/internal/store"
	"github.com/young1lin/termgrid/tui"
)

// AppDependencies contains the dependencies needed to start the browser
type AppDependencies struct {
	Args          []string
	Getwd         func() (string, error)
	Stat          func(string) (os.FileInfo, error)
	DBPath        func() string
	DBOpener      func(string) (*store.DB, error)
	ProgramRunner func(p *tea.Program) error
}

// run starts the directory browser with the given dependencies
func run(deps *AppDependencies) error {
	dir, err := startDir(deps)
	if err != nil {
		return err
	}

	info, err := deps.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// The visit store is optional, without it the browser only loses
	// the recent panel
	db, err := deps.DBOpener(deps.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: visit history unavailable: %v\n", err)
		db = nil
	} else {
		defer db.Close()
	}

	model := tui.NewModel(dir, cfg, db)
	p := tea.NewProgram(model, tea.WithAltScreen())
	return deps.ProgramRunner(p)
}

// startDir resolves the directory to browse, the first argument or the
// working directory
func startDir(deps *AppDependencies) (string, error) {
	if len(deps.Args) > 0 {
		return deps.Args[0], nil
	}
	wd, err := deps.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return wd, nil
}
