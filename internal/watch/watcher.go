// Package watch notifies when the contents of a directory change.
//
// It combines fsnotify events with a polling fallback so that changes are
// still picked up on filesystems or editors that drop notifications. Bursts
// of raw events are debounced into a single notification.
package watch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// debounceWindow is how long the watcher waits after the first raw
	// change before it notifies, absorbing the rest of the burst.
	debounceWindow = 250 * time.Millisecond

	// pollInterval is how often the fallback poll re-reads the directory.
	pollInterval = 500 * time.Millisecond
)

// Watcher monitors a directory for changes to its entries
type Watcher struct {
	watcher     *fsnotify.Watcher
	dirPath     string
	fingerprint string
	eventChan   chan struct{}
	errorChan   chan error
	done        chan struct{}
}

// NewWatcher creates a new watcher for the given directory
func NewWatcher(dirPath string) (*Watcher, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dirPath)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsWatcher.Add(dirPath); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:   fsWatcher,
		dirPath:   dirPath,
		eventChan: make(chan struct{}, 1),
		errorChan: make(chan error, 10),
		done:      make(chan struct{}),
	}
	w.fingerprint, _ = directoryFingerprint(dirPath)

	go w.watch()

	return w, nil
}

// watch runs the watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	defer close(w.eventChan)
	defer close(w.errorChan)

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()
	pending := false

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Periodically compare directory snapshots (polling as backup)
			if w.checkForChanges() && !pending {
				debounce.Reset(debounceWindow)
				pending = true
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				// Refresh the snapshot so the next poll does not
				// report this same change again
				w.fingerprint, _ = directoryFingerprint(w.dirPath)
				if !pending {
					debounce.Reset(debounceWindow)
					pending = true
				}
			}

		case <-debounce.C:
			pending = false
			select {
			case w.eventChan <- struct{}{}:
			default:
				// Consumer already has a notification queued
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// checkForChanges re-reads the directory and reports whether its
// contents differ from the last snapshot
func (w *Watcher) checkForChanges() bool {
	fingerprint, err := directoryFingerprint(w.dirPath)
	if err != nil {
		w.sendError(err)
		return false
	}

	if fingerprint == w.fingerprint {
		return false
	}

	w.fingerprint = fingerprint
	return true
}

// sendError forwards an error without blocking the watch loop
func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	default:
	}
}

// Events returns a channel that receives a notification after the
// directory changes. Bursts of changes produce a single notification.
func (w *Watcher) Events() <-chan struct{} {
	return w.eventChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the directory
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

// directoryFingerprint summarizes the directory contents so two
// snapshots can be compared cheaply
func directoryFingerprint(dirPath string) (string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.Name())
		if info, err := entry.Info(); err == nil {
			fmt.Fprintf(&b, "|%d|%d", info.Size(), info.ModTime().UnixNano())
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
