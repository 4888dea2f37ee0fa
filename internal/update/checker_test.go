package update

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestChecker(t *testing.T, version string) *Checker {
	t.Helper()
	c := NewChecker(version)
	c.stateFile = filepath.Join(t.TempDir(), "update-state.json")
	return c
}

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer available", "1.0.0", "1.1.0", true},
		{"patch bump", "1.2.3", "1.2.4", true},
		{"same version", "1.1.0", "1.1.0", false},
		{"current is newer", "2.0.0", "1.9.9", false},
		{"dev always updates", "dev", "0.0.1", true},
		{"invalid current", "not-a-version", "1.0.0", false},
		{"invalid latest", "1.0.0", "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChecker(t, tt.current)
			if got := c.needsUpdate(tt.latest); got != tt.want {
				t.Errorf("needsUpdate(%q) with current %q = %v, want %v", tt.latest, tt.current, got, tt.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	c := newTestChecker(t, "1.0.0")

	if got := c.parseVersion("v1.2.3"); got != "1.2.3" {
		t.Errorf("parseVersion(\"v1.2.3\") = %q, want \"1.2.3\"", got)
	}
	if got := c.parseVersion("1.2.3"); got != "1.2.3" {
		t.Errorf("parseVersion(\"1.2.3\") = %q, want \"1.2.3\"", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	c := newTestChecker(t, "1.0.0")

	state := &UpdateState{
		LastCheck:     time.Now(),
		LatestVersion: "1.2.3",
		OptOut:        true,
	}
	if err := c.saveState(state); err != nil {
		t.Fatalf("saveState() failed: %v", err)
	}

	loaded, err := c.loadState()
	if err != nil {
		t.Fatalf("loadState() failed: %v", err)
	}
	if !loaded.LastCheck.Equal(state.LastCheck) {
		t.Errorf("LastCheck = %v, want %v", loaded.LastCheck, state.LastCheck)
	}
	if loaded.LatestVersion != "1.2.3" {
		t.Errorf("LatestVersion = %q, want \"1.2.3\"", loaded.LatestVersion)
	}
	if !loaded.OptOut {
		t.Error("OptOut = false, want true")
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	c := newTestChecker(t, "1.0.0")

	state, err := c.loadState()
	if err != nil {
		t.Fatalf("loadState() failed: %v", err)
	}
	if !state.LastCheck.IsZero() || state.LatestVersion != "" || state.OptOut {
		t.Errorf("Expected empty state, got %+v", state)
	}
}

func TestLoadStateCorruptFile(t *testing.T) {
	c := newTestChecker(t, "1.0.0")
	if err := os.WriteFile(c.stateFile, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	state, err := c.loadState()
	if err != nil {
		t.Fatalf("loadState() failed: %v", err)
	}
	if state.LatestVersion != "" {
		t.Errorf("Expected empty state for corrupt file, got %+v", state)
	}
}

func TestCheckFetchesRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ReleaseInfo{
			TagName: "v9.9.9",
			Name:    "v9.9.9",
			HTMLURL: "https://example.com/releases/v9.9.9",
		})
	}))
	defer server.Close()

	c := newTestChecker(t, "1.0.0")
	c.releasesURL = server.URL

	release, err := c.Check()
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if release == nil {
		t.Fatal("Check() returned nil release, want update info")
	}
	if release.TagName != "v9.9.9" {
		t.Errorf("TagName = %q, want \"v9.9.9\"", release.TagName)
	}

	state, err := c.loadState()
	if err != nil {
		t.Fatalf("loadState() failed: %v", err)
	}
	if state.LatestVersion != "9.9.9" {
		t.Errorf("Saved LatestVersion = %q, want \"9.9.9\"", state.LatestVersion)
	}
	if state.LastCheck.IsZero() {
		t.Error("LastCheck not recorded")
	}
}

func TestCheckUpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ReleaseInfo{TagName: "v1.0.0"})
	}))
	defer server.Close()

	c := newTestChecker(t, "1.0.0")
	c.releasesURL = server.URL

	release, err := c.Check()
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if release != nil {
		t.Errorf("Check() returned %+v, want nil when up to date", release)
	}
}

func TestCheckSkipsWhenRecent(t *testing.T) {
	// A failing server proves the skip: a fetch would surface an error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestChecker(t, "1.0.0")
	c.releasesURL = server.URL
	if err := c.saveState(&UpdateState{LastCheck: time.Now()}); err != nil {
		t.Fatalf("saveState() failed: %v", err)
	}

	release, err := c.Check()
	if err != nil {
		t.Errorf("Check() fetched despite recent check: %v", err)
	}
	if release != nil {
		t.Errorf("Check() returned %+v, want nil", release)
	}
}

func TestCheckRespectsOptOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestChecker(t, "1.0.0")
	c.releasesURL = server.URL
	if err := c.SetOptOut(true); err != nil {
		t.Fatalf("SetOptOut() failed: %v", err)
	}

	release, err := c.Check()
	if err != nil {
		t.Errorf("Check() fetched despite opt-out: %v", err)
	}
	if release != nil {
		t.Errorf("Check() returned %+v, want nil", release)
	}
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestChecker(t, "1.0.0")
	c.releasesURL = server.URL

	_, err := c.Check()
	if err == nil {
		t.Fatal("Check() succeeded against failing server, want error")
	}
	if !strings.Contains(err.Error(), "failed to fetch latest release") {
		t.Errorf("Error = %q, want fetch failure", err)
	}
}

func TestSetOptOut(t *testing.T) {
	c := newTestChecker(t, "1.0.0")

	if err := c.SetOptOut(true); err != nil {
		t.Fatalf("SetOptOut(true) failed: %v", err)
	}
	state, _ := c.loadState()
	if !state.OptOut {
		t.Error("OptOut not persisted as true")
	}

	if err := c.SetOptOut(false); err != nil {
		t.Fatalf("SetOptOut(false) failed: %v", err)
	}
	state, _ = c.loadState()
	if state.OptOut {
		t.Error("OptOut not persisted as false")
	}
}
