package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func TestOpen(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Verify tables were created
	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='visits'").Scan(&tableName)
	if err != nil {
		t.Errorf("Visits table was not created: %v", err)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("/invalid/path/that/cannot/be/created/test.db")
	if err == nil {
		t.Error("Expected error when opening invalid path, got nil")
	}
}

func TestRecordVisit(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RecordVisit("/home/user/projects"); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	saved, err := db.Visit("/home/user/projects")
	if err != nil {
		t.Fatalf("Failed to get saved record: %v", err)
	}
	if saved == nil {
		t.Fatal("Saved record not found")
	}
	if saved.Dir != "/home/user/projects" {
		t.Errorf("Expected Dir /home/user/projects, got %s", saved.Dir)
	}
	if saved.Visits != 1 {
		t.Errorf("Expected Visits 1, got %d", saved.Visits)
	}
	if saved.LastVisit.IsZero() {
		t.Error("LastVisit not recorded")
	}
}

func TestRecordVisitAccumulates(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	dir := "/home/user/src"
	for i := 0; i < 3; i++ {
		if err := db.RecordVisit(dir); err != nil {
			t.Fatalf("Failed to record visit: %v", err)
		}
	}

	saved, err := db.Visit(dir)
	if err != nil {
		t.Fatalf("Failed to get saved record: %v", err)
	}
	if saved == nil {
		t.Fatal("Saved record not found")
	}
	if saved.Visits != 3 {
		t.Errorf("Expected Visits 3, got %d", saved.Visits)
	}
}

func TestTopDirs(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// /tmp visited three times, /etc twice, /var once
	visits := []string{"/tmp", "/etc", "/tmp", "/var", "/etc", "/tmp"}
	for _, dir := range visits {
		if err := db.RecordVisit(dir); err != nil {
			t.Fatalf("Failed to record visit: %v", err)
		}
	}

	top, err := db.TopDirs(10)
	if err != nil {
		t.Fatalf("Failed to get top dirs: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(top))
	}

	// Verify order (most visited first)
	if top[0].Dir != "/tmp" || top[0].Visits != 3 {
		t.Errorf("Expected first record /tmp with 3 visits, got %s with %d", top[0].Dir, top[0].Visits)
	}
	if top[1].Dir != "/etc" || top[1].Visits != 2 {
		t.Errorf("Expected second record /etc with 2 visits, got %s with %d", top[1].Dir, top[1].Visits)
	}
	if top[2].Dir != "/var" || top[2].Visits != 1 {
		t.Errorf("Expected third record /var with 1 visit, got %s with %d", top[2].Dir, top[2].Visits)
	}
}

func TestTopDirsLimit(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	for i := 1; i <= 5; i++ {
		dir := fmt.Sprintf("/data/dir-%d", i)
		if err := db.RecordVisit(dir); err != nil {
			t.Fatalf("Failed to record visit: %v", err)
		}
	}

	top, err := db.TopDirs(3)
	if err != nil {
		t.Fatalf("Failed to get top dirs: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 records, got %d", len(top))
	}
}

func TestTopDirsEmpty(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	top, err := db.TopDirs(10)
	if err != nil {
		t.Fatalf("Failed to get top dirs: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no records, got %d", len(top))
	}
}

func TestVisitNotFound(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	saved, err := db.Visit("/never/visited")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if saved != nil {
		t.Error("Expected nil for unknown directory, got record")
	}
}

func TestForget(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RecordVisit("/home/user/old"); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	// Verify it exists
	saved, _ := db.Visit("/home/user/old")
	if saved == nil {
		t.Fatal("Record should exist before deletion")
	}

	if err := db.Forget("/home/user/old"); err != nil {
		t.Fatalf("Failed to forget directory: %v", err)
	}

	// Verify it's gone
	saved, _ = db.Visit("/home/user/old")
	if saved != nil {
		t.Error("Record should be nil after deletion")
	}

	// Forgetting an unknown directory is not an error
	if err := db.Forget("/never/visited"); err != nil {
		t.Errorf("Forget on unknown directory returned error: %v", err)
	}
}

func TestLastVisitRefreshed(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	dir := "/home/user/docs"
	if err := db.RecordVisit(dir); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	// Backdate the record, then visit again
	backdated := time.Now().Add(-time.Hour).Unix()
	if _, err := db.Exec("UPDATE visits SET last_visit = ? WHERE dir = ?", backdated, dir); err != nil {
		t.Fatalf("Failed to backdate record: %v", err)
	}
	if err := db.RecordVisit(dir); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	saved, err := db.Visit(dir)
	if err != nil {
		t.Fatalf("Failed to get saved record: %v", err)
	}
	if saved == nil {
		t.Fatal("Saved record not found")
	}
	if time.Since(saved.LastVisit) > time.Minute {
		t.Errorf("LastVisit not refreshed, still %v", saved.LastVisit)
	}
	if saved.Visits != 2 {
		t.Errorf("Expected Visits 2, got %d", saved.Visits)
	}
}
