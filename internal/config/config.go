package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	defaultFileName   = ".dataspectre.yaml"
	alternateFileName = ".dataspectre.yml"
)

// Config holds persistent defaults loaded from a config file, with
// DATASPECTRE_* environment variables taking precedence over the file.
type Config struct {
	Format      string   `yaml:"format" env:"DATASPECTRE_FORMAT"`
	Timeout     string   `yaml:"timeout" env:"DATASPECTRE_TIMEOUT"`
	Offline     bool     `yaml:"offline" env:"DATASPECTRE_OFFLINE"`
	ExcludeDirs []string `yaml:"exclude_dirs" env:"DATASPECTRE_EXCLUDE_DIRS" envSeparator:","`
}

// TimeoutDuration parses the Timeout field as a Go duration.
// Returns 0 if empty or unparseable.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Load searches for a config file in the given directory and the user's home
// directory, then applies environment overrides. A missing file yields a
// zero-value Config with only the environment applied.
func Load(dir string) (Config, error) {
	var cfg Config
	for _, p := range searchPaths(dir) {
		loaded, found, err := loadPath(p)
		if err != nil {
			return Config{}, err
		}
		if found {
			cfg = loaded
			break
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func searchPaths(dir string) []string {
	var paths []string
	if dir != "" {
		paths = append(paths, filepath.Join(dir, defaultFileName))
		paths = append(paths, filepath.Join(dir, alternateFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, defaultFileName))
		paths = append(paths, filepath.Join(home, alternateFileName))
	}
	return paths
}

func loadPath(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}
