package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for movekit.
type Paths struct {
	// ConfigFile is the path to the config file (~/.movekit/config.yaml).
	ConfigFile string

	// CacheDir is the path to the template cache (~/.movekit/cache).
	CacheDir string

	// HomeDir is the movekit home directory (~/.movekit).
	HomeDir string
}

// DefaultPaths returns the default paths for movekit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	mkHome := filepath.Join(homeDir, ".movekit")

	return &Paths{
		ConfigFile: filepath.Join(mkHome, "config.yaml"),
		CacheDir:   filepath.Join(mkHome, "cache"),
		HomeDir:    mkHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If MOVEKIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("MOVEKIT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetCacheDir returns the template cache directory path.
// If MOVEKIT_CACHE_DIR is set, it takes precedence.
func GetCacheDir() (string, error) {
	if envPath := os.Getenv("MOVEKIT_CACHE_DIR"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.CacheDir, nil
}
