package main

import (
	"fmt"
	"os"

	"github.com/young1lin/termgrid/internal/update"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	// Update checks run in the background and never delay output
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

	logAndExit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func logAndExit(err error) {
	// This is a separate function to allow testing of error handling
	if err != nil {
		fmt.Fprintf(os.Stderr, "columnate: %v\n", err)
		exitFunc(1)
	}
}
