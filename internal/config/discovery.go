package config

import (
	"os"
	"path/filepath"
)

const configFileName = "authorcheck.toml"

// ConfigPaths returns ordered list of config file paths to check.
// Paths are ordered from lowest to highest priority, so that when decoded
// sequentially, each subsequent file overrides values from previous files.
//
// Order (lowest to highest priority):
//  1. File in XDG config directory (~/.config/authorcheck/authorcheck.toml)
//  2. File in the home directory
//  3. File in the checked directory
//
// Empty strings for dir or homeDir are skipped.
func ConfigPaths(dir, homeDir string) []string {
	var paths []string
	seen := make(map[string]bool)

	addPath := func(d string) {
		if d == "" {
			return
		}
		path := filepath.Join(d, configFileName)
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	if xdgConfigDir, err := os.UserConfigDir(); err == nil {
		addPath(filepath.Join(xdgConfigDir, "authorcheck"))
	}

	addPath(homeDir)
	addPath(dir)

	return paths
}
