package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/mdscan/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/mdscan/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.mdscan.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".mdscan.yml",
	".mdscan.yaml",
	".mdscan.json",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
// It searches for:
//   - System config at /etc/mdscan/config.{yaml,yml}
//   - User config at $XDG_CONFIG_HOME/mdscan/config.{yaml,yml}
//   - Project config by searching upward from workDir for .mdscan.{yml,yaml,json}
//
// Missing files are represented as empty strings (not errors).
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{
		System: findSystemConfig(),
		User:   findUserConfig(),
	}

	projectConfig, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = projectConfig

	return paths, nil
}

// findSystemConfig returns the path to the system-wide config file, if it exists.
func findSystemConfig() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return findConfigInDir(filepath.Join(programData, "mdscan"))
	}

	return findConfigInDir("/etc/mdscan")
}

// findUserConfig returns the path to the user-level config file, if it exists.
func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	return findConfigInDir(filepath.Join(configHome, "mdscan"))
}

// findConfigInDir returns the first config.{yaml,yml} in dir, or "".
func findConfigInDir(dir string) string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config file.
// Returns the path to the first config file found, or empty string if none.
// Stops at VCS roots, the home directory, or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		homeDir = ""
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectConfigFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(currentDir) || (homeDir != "" && currentDir == homeDir) {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
