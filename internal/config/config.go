package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level prio configuration.
type Config struct {
	Scoring ScoringConfig `toml:"scoring"`
	Files   FilesConfig   `toml:"files"`
	Display DisplayConfig `toml:"display"`
}

// ScoringConfig overrides the default factor weights. Nil fields keep the
// built-in weight; the resulting set must still sum to 1.0.
type ScoringConfig struct {
	UrgencyWeight    *float64 `toml:"urgency_weight,omitempty"`
	ImportanceWeight *float64 `toml:"importance_weight,omitempty"`
	DeadlineWeight   *float64 `toml:"deadline_weight,omitempty"`
	EffortWeight     *float64 `toml:"effort_weight,omitempty"`
}

// FilesConfig holds default input and export locations.
type FilesConfig struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// DisplayConfig controls console rendering.
type DisplayConfig struct {
	NameWidth int `toml:"name_width"`
	// Color defaults to true when not set in config.
	Color *bool `toml:"color,omitempty"`
}

// ColorEnabled treats a missing setting as enabled.
func (d DisplayConfig) ColorEnabled() bool {
	if d.Color == nil {
		return true
	}
	return *d.Color
}

// Default file names, resolved against the working directory.
const (
	DefaultInput     = "sample_tasks.json"
	DefaultOutput    = "scored_tasks.json"
	DefaultNameWidth = 32
)

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	ConfigFile string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	prioConfig := filepath.Join(configDir, "prio")

	return Paths{
		ConfigDir:  prioConfig,
		ConfigFile: filepath.Join(prioConfig, "config.toml"),
	}
}

// Load reads config from the default location, returning defaults if not found.
func Load() (*Config, error) {
	return LoadFile(GetPaths().ConfigFile)
}

// LoadFile reads config from path. A missing file yields defaults; keys
// absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Display.NameWidth <= 0 {
		cfg.Display.NameWidth = DefaultNameWidth
	}
	return cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	return SaveFile(GetPaths().ConfigFile, cfg)
}

// SaveFile writes config to path, creating its directory.
func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a config file exists.
func Initialized() bool {
	_, err := os.Stat(GetPaths().ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Input:  DefaultInput,
			Output: DefaultOutput,
		},
		Display: DisplayConfig{
			NameWidth: DefaultNameWidth,
			Color:     BoolPtr(true),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
