package config

// SchemaVersion is the version DefaultConfig reports. A version read from a
// config file is accepted without validation (the loader never rejects an
// unknown version).
const SchemaVersion = "1"

// Config is the on-disk and in-memory shape of ~/.pperf.yaml.
type Config struct {
	Version          string   `yaml:"version"`
	DefaultSortKey   string   `yaml:"default_sort_key"`   // "children" or "self"
	DefaultColorMode string   `yaml:"default_color_mode"` // "auto", "always", "never"
	DefaultTargets   []string `yaml:"default_targets,omitempty"`
}

// DefaultConfig returns the built-in defaults used when no config file is
// found at any layer.
func DefaultConfig() *Config {
	return &Config{
		Version:          SchemaVersion,
		DefaultSortKey:   "children",
		DefaultColorMode: "auto",
	}
}
