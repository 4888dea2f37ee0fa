package tui

import (
	"github.com/young1lin/termgrid/internal/dirlist"
	"github.com/young1lin/termgrid/internal/store"
)

// DirLoadedMsg is sent when a directory listing has been read
type DirLoadedMsg struct {
	Path    string
	Entries []dirlist.Entry
}

// DirErrorMsg is sent when a directory cannot be read
type DirErrorMsg struct {
	Path string
	Err  error
}

// RecentLoadedMsg is sent when the visit history has been loaded
type RecentLoadedMsg struct {
	Records []store.VisitRecord
}
