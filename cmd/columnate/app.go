package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/young1lin/termgrid"
	"github.com/young1lin/termgrid/internal/config"
	"github.com/young1lin/termgrid/internal/dirlist"
	"github.com/young1lin/termgrid/internal/update"
	"github.com/young1lin/termgrid/internal/watch"
)

// fallbackWidth is used when stdout is not a terminal
const fallbackWidth = 80

// clearScreen moves the cursor home and wipes the previous render
const clearScreen = "\033[H\033[2J"

// terminalWidth reports the stdout terminal width (can be mocked for testing)
var terminalWidth = func() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}

// cliOptions is the merge of config file defaults and command line flags
// for one invocation
type cliOptions struct {
	width     int
	across    bool
	spaces    int
	text      string
	tabs      bool
	tabSize   int
	all       bool
	classify  bool
	dirsFirst bool
	one       bool
	watch     bool
	version   bool
}

func (o cliOptions) direction() termgrid.Direction {
	if o.across {
		return termgrid.LeftToRight
	}
	return termgrid.TopToBottom
}

// filling picks the separator, most specific flag first
func (o cliOptions) filling() termgrid.Filling {
	switch {
	case o.tabs:
		return termgrid.Tabs{Spaces: o.spaces, TabSize: o.tabSize}
	case o.text != "":
		return termgrid.Text(o.text)
	default:
		return termgrid.Spaces(o.spaces)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(stderr, "Warning: ignoring config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	opts, dirs, err := parseArgs(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.version {
		fmt.Fprintf(stdout, "columnate %s (commit %s, built %s)\n",
			update.Version, update.Commit, update.BuildDate)
		return nil
	}

	switch len(dirs) {
	case 0:
		if opts.watch {
			return errors.New("-watch needs a directory argument")
		}
		return layoutNames(stdout, stderr, readNames(stdin), opts)
	case 1:
		if opts.watch {
			return watchDirectory(stdout, stderr, dirs[0], opts)
		}
		return layoutDirectory(stdout, stderr, dirs[0], opts)
	default:
		return errors.New("at most one directory argument is accepted")
	}
}

// parseArgs parses command line flags, seeding the defaults from cfg so
// that flags override the config file
func parseArgs(args []string, cfg *config.Config, output io.Writer) (cliOptions, []string, error) {
	fs := flag.NewFlagSet("columnate", flag.ContinueOnError)
	fs.SetOutput(output)

	text := cfg.Separator.Text
	if cfg.Separator.Kind != "text" {
		text = ""
	}

	opts := cliOptions{dirsFirst: cfg.Listing.DirsFirst}
	fs.IntVar(&opts.width, "w", cfg.Layout.Width, "maximum display width, 0 detects the terminal")
	fs.BoolVar(&opts.across, "x", cfg.Direction() == termgrid.LeftToRight, "fill rows before columns")
	fs.IntVar(&opts.spaces, "s", cfg.Separator.Spaces, "number of spaces between columns")
	fs.StringVar(&opts.text, "t", text, "literal separator between columns")
	fs.BoolVar(&opts.tabs, "tabs", cfg.Separator.Kind == "tabs", "fill separators with tab characters")
	fs.IntVar(&opts.tabSize, "tabsize", cfg.Separator.TabSize, "distance between tab stops")
	fs.BoolVar(&opts.all, "a", cfg.Listing.ShowHidden, "include hidden entries")
	fs.BoolVar(&opts.classify, "F", cfg.Listing.Classify, "append / to directory names")
	fs.BoolVar(&opts.one, "1", false, "force a single column")
	fs.BoolVar(&opts.watch, "watch", false, "re-render when the directory changes")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, nil, err
	}

	if opts.width == 0 {
		opts.width = terminalWidth()
	}
	return opts, fs.Args(), nil
}

// readNames reads one name per line, skipping empty lines
func readNames(r io.Reader) []string {
	scanner := bufio.NewScanner(r)
	var names []string
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			names = append(names, line)
		}
	}
	return names
}

// layoutNames arranges names into a grid on out. When the names cannot
// fit the width, a note goes to errOut and the output degrades to a
// single column.
func layoutNames(out, errOut io.Writer, names []string, opts cliOptions) error {
	grid := termgrid.NewEmpty(opts.direction(), opts.filling())
	for _, name := range names {
		grid.Add(termgrid.NewCell(name))
	}

	if opts.one {
		grid.FitIntoColumns(1)
	} else if err := grid.FitIntoWidth(opts.width); err != nil {
		fmt.Fprintf(errOut, "columnate: %v, falling back to one column\n", err)
		grid.FitIntoColumns(1)
	}

	_, err := grid.WriteTo(out)
	return err
}

func layoutDirectory(out, errOut io.Writer, dir string, opts cliOptions) error {
	names, err := listNames(dir, opts)
	if err != nil {
		return err
	}
	return layoutNames(out, errOut, names, opts)
}

func listNames(dir string, opts cliOptions) ([]string, error) {
	entries, err := dirlist.List(dirlist.OSFileSystem{}, dir, dirlist.Options{
		ShowHidden: opts.all,
		Classify:   opts.classify,
		DirsFirst:  opts.dirsFirst,
	})
	if err != nil {
		return nil, err
	}
	return dirlist.Names(entries, opts.classify), nil
}

func watchDirectory(out, errOut io.Writer, dir string, opts cliOptions) error {
	watcher, err := watch.NewWatcher(dir)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := layoutDirectory(out, errOut, dir, opts); err != nil {
		return err
	}
	return watchLoop(watcher, out, errOut, dir, opts)
}

// watchLoop re-renders on every change notification until the watcher
// closes
func watchLoop(watcher *watch.Watcher, out, errOut io.Writer, dir string, opts cliOptions) error {
	for {
		select {
		case _, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			fmt.Fprint(out, clearScreen)
			if err := layoutDirectory(out, errOut, dir, opts); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "columnate: watch: %v\n", err)
		}
	}
}
