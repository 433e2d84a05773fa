// Package config loads pperf's layered configuration file: built-in
// defaults, then ~/.pperf.yaml, then $PPERF_CONFIG if set, then explicit
// CLI flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".pperf.yaml"
	configEnvVar   = "PPERF_CONFIG"
)

// Loader resolves and reads the layered config file.
type Loader struct {
	homeDir string
}

// NewLoader creates a Loader. The home directory is resolved from
// os.UserHomeDir(); if unavailable (minimal containers without a home
// directory) the loader falls back to a path that will simply never exist,
// so Load still returns defaults rather than erroring.
func NewLoader() *Loader {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "/tmp/pperf-fallback"
	}
	return &Loader{homeDir: homeDir}
}

// GlobalConfigPath returns the default ~/.pperf.yaml location.
func (l *Loader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, configFileName)
}

// Load resolves the active config path — explicitPath if non-empty,
// otherwise $PPERF_CONFIG if set, otherwise ~/.pperf.yaml — and reads it.
// A missing file at the resolved path is never an error: Load returns
// built-in defaults.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		path = l.GlobalConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is either explicit, env-provided, or the user's own home dir.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
