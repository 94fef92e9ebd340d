// Package sources implements the file-system and environment collaborators
// consumed by the loader: candidate-path discovery, file decoding, and the
// process/.env environment reader.
package sources

import (
	"os"
	"path/filepath"
)

// localDirs are the project-relative directories probed for a local config
// file, in priority order.
var localDirs = []string{".", "config", ".config"}

// extensions are probed in priority order within each directory.
var extensions = []string{".json", ".jsonc"}

// Locator discovers configuration files on the local file system. It
// implements ports.FileLocator.
type Locator struct{}

// NewLocator returns a file-system locator.
func NewLocator() *Locator { return &Locator{} }

// LocateLocal probes the candidate project-relative paths for a file named
// after the configuration name. All extensions are tried in the primary
// directory before moving to the alternate directories.
func (l *Locator) LocateLocal(name, workingDir string) (string, bool) {
	if workingDir == "" {
		workingDir = "."
	}
	for _, dir := range localDirs {
		for _, ext := range extensions {
			path := filepath.Join(workingDir, dir, name+ext)
			if isFile(path) {
				return path, true
			}
		}
	}
	return "", false
}

// LocateHome probes the user's home configuration locations:
// ~/.config/<name>/ first, then a dotfile directly under the home
// directory.
func (l *Locator) LocateHome(name string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	configDir := filepath.Join(home, ".config", name)
	for _, base := range []string{name, "config"} {
		for _, ext := range extensions {
			path := filepath.Join(configDir, base+ext)
			if isFile(path) {
				return path, true
			}
		}
	}
	for _, ext := range extensions {
		path := filepath.Join(home, "."+name+ext)
		if isFile(path) {
			return path, true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
