// ABOUTME: Optional YAML config file supplying default count/interval/width
// ABOUTME: Precedence: built-in defaults < config file < explicit CLI flags

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the command line sets a
// value.
const (
	DefaultCount    = 4
	DefaultInterval = 1.0
	DefaultWidth    = 18
)

// File holds the user's persisted defaults. Zero values mean "not set".
type File struct {
	Count    int     `yaml:"count,omitempty"`
	Interval float64 `yaml:"interval,omitempty"`
	Width    int     `yaml:"width,omitempty"`
}

// Path returns the config file location: $SIPPING_CONFIG if set,
// otherwise ~/.config/sipping/config.yaml.
func Path() string {
	if p := os.Getenv("SIPPING_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sipping", "config.yaml")
}

// Load reads the config file at path. A missing file is not an error and
// yields an empty File; a malformed file is an error.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return f, nil
}

// Settings is the fully resolved run configuration.
type Settings struct {
	Count    int
	Interval float64
	Width    int
}

// Resolve layers the config file over built-in defaults. Explicit CLI
// flags are applied on top by the caller, since only it knows which
// flags were actually set.
func Resolve(f File) Settings {
	s := Settings{
		Count:    DefaultCount,
		Interval: DefaultInterval,
		Width:    DefaultWidth,
	}
	if f.Count > 0 {
		s.Count = f.Count
	}
	if f.Interval > 0 {
		s.Interval = f.Interval
	}
	if f.Width > 0 {
		s.Width = f.Width
	}
	return s
}
