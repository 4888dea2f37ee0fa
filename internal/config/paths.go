package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigPath returns the per-user configuration file location
func GlobalConfigPath() string {
	return GlobalConfigPathWithPlatform(DefaultPlatform)
}

// GlobalConfigPathWithPlatform allows injecting a custom platform provider for testing
func GlobalConfigPathWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\columnate\config.yaml
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, "columnate", "config.yaml")
	case "darwin":
		// ~/Library/Application Support/columnate/config.yaml
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "columnate", "config.yaml")
	default: // linux, etc.
		// ~/.config/columnate/config.yaml
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", "columnate", "config.yaml")
	}
}

// UserCacheDir returns the application cache directory for history storage
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\columnate\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, ".columnate")
		}
		return filepath.Join(localAppData, "columnate")
	case "darwin":
		// ~/Library/Caches/columnate/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", "columnate")
	default:
		// ~/.cache/columnate/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", "columnate")
	}
}

// VisitsDBPath returns the path to the SQLite visit history database
func VisitsDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "visits.db")
}
