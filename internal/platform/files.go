package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AssetsDirName is the directory holding logos and vehicle images,
// resolved next to the executable with a working-directory fallback.
const AssetsDirName = "assets"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// AssetsDir returns the assets directory. The directory next to the
// executable wins; otherwise the working directory is assumed.
func AssetsDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), AssetsDirName)
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	return AssetsDirName
}

// FindAsset returns the path of the first existing asset among the given
// file names, or an empty string when none exists. Callers render a text
// fallback for missing assets.
func FindAsset(names ...string) string {
	return findAssetIn(AssetsDir(), names...)
}

func findAssetIn(dir string, names ...string) string {
	for _, name := range names {
		if name == "" {
			continue
		}
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// AppLogDir returns the per-user directory for planner log files,
// creating it when missing.
func AppLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case OSDarwin:
		dir = filepath.Join(homeDir, "Library", "Logs", "manas-planner")
	case OSWindows:
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			dir = filepath.Join(localAppData, "manas-planner", "logs")
		} else {
			dir = filepath.Join(homeDir, "AppData", "Local", "manas-planner", "logs")
		}
	default:
		if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
			dir = filepath.Join(stateHome, "manas-planner")
		} else {
			dir = filepath.Join(homeDir, ".local", "state", "manas-planner")
		}
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return dir, nil
}
