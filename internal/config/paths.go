package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for the addon-docs CLI.
type Paths struct {
	// ConfigFile is the path to the config file (~/.addon-docs/config.yaml).
	ConfigFile string

	// HomeDir is the addon-docs home directory (~/.addon-docs).
	HomeDir string
}

// DefaultPaths returns the default paths for the addon-docs CLI.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	toolHome := filepath.Join(homeDir, ".addon-docs")

	return &Paths{
		ConfigFile: filepath.Join(toolHome, "config.yaml"),
		HomeDir:    toolHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If ADDON_DOCS_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("ADDON_DOCS_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the addon-docs home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is
	return path, nil
}
