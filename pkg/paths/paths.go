// Package paths provides centralized path handling for fontlint.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for fontlint
	EnvConfigDir = "FONTLINT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for fontlint
	EnvStateDir = "FONTLINT_STATE_DIR"

	// EnvSpecFile overrides the default rule spec file location
	EnvSpecFile = "FONTLINT_SPEC_FILE"
)

// Default directories and files
const (
	// AppDirName is the directory name for fontlint-specific files
	AppDirName = "fontlint"

	// ConfigFileName is the name of the tool configuration file
	ConfigFileName = "fontlint.toml"

	// SpecFileName is the default name of the rule spec file
	SpecFileName = "lint_spec.txt"

	// LogFileName is the name of the log file
	LogFileName = "fontlint.log"
)

// ConfigDir returns the directory that holds fontlint's configuration.
// FONTLINT_CONFIG_DIR takes precedence over the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the full path to the tool configuration file.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SpecFilePath returns the default rule spec file location.
// FONTLINT_SPEC_FILE takes precedence over the config directory default.
func SpecFilePath() string {
	if path := os.Getenv(EnvSpecFile); path != "" {
		return path
	}
	return filepath.Join(ConfigDir(), SpecFileName)
}

// StateDir returns the directory for state files such as logs.
// FONTLINT_STATE_DIR takes precedence over the XDG state home.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the full path to the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
