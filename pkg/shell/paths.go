package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

// weirDir returns the directory holding Weir's own files: the rc script,
// the settings file and the history database. It is the "weir" subdirectory
// of the platform's configuration directory, and is created if it does not
// exist yet.
func weirDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %v", err)
	}
	dir := filepath.Join(base, "weir")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("cannot create %v: %v", dir, err)
	}
	return dir, nil
}

// rcPath returns the path of the rc script, sourced at the start of an
// interactive session.
func rcPath() (string, error) {
	dir, err := weirDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rc.weir"), nil
}

// dbPath returns the default path of the command history database.
func dbPath() (string, error) {
	dir, err := weirDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "weir.db"), nil
}

// settingsPath returns the path of the settings file.
func settingsPath() (string, error) {
	dir, err := weirDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}
