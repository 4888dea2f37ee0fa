// Package dirlist reads directory entries for the columnate tools
package dirlist

import (
	"fmt"
	"sort"
	"strings"
)

// Options controls which entries List returns and their order
type Options struct {
	// ShowHidden includes dot-prefixed entries
	ShowHidden bool
	// Classify appends a slash to directory names in Display output
	Classify bool
	// DirsFirst orders directories before files
	DirsFirst bool
}

// Entry is one directory entry
type Entry struct {
	Name  string
	IsDir bool
}

// Display returns the name as shown in a listing, with a trailing slash
// on directories when classify is enabled
func (e Entry) Display(classify bool) string {
	if classify && e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// List reads the entries of dir, filtered and ordered according to opts.
// Entries are sorted case-insensitively; with DirsFirst set, directories
// come before files.
func List(fsys FileSystem, dir string, opts Options) ([]Entry, error) {
	dirents, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entries = append(entries, Entry{Name: name, IsDir: d.IsDir()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if opts.DirsFirst && entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return lessName(entries[i].Name, entries[j].Name)
	})

	return entries, nil
}

// Names returns the display names of entries in order
func Names(entries []Entry, classify bool) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Display(classify)
	}
	return names
}

// lessName orders names case-insensitively, raw name breaking ties
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
