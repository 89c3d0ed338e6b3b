package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
	KeyTypeFloat  KeyType = "float"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type.
	Type KeyType
	// Desc is a human-readable description shown in `prio config list`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// weightKey builds a registry entry for one optional scoring weight.
// An unset weight reads back as "default".
func weightKey(name, desc string, field func(*Config) **float64) *KeyEntry {
	return &KeyEntry{
		Type:       KeyTypeFloat,
		Desc:       desc,
		DefaultStr: "default",
		get: func(cfg *Config) string {
			if p := *field(cfg); p != nil {
				return strconv.FormatFloat(*p, 'f', -1, 64)
			}
			return "default"
		},
		set: func(cfg *Config, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid value %q for %s (want a number between 0 and 1)", v, name)
			}
			*field(cfg) = &f
			return nil
		},
		unset: func(cfg *Config) { *field(cfg) = nil },
	}
}

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"scoring.urgency_weight": weightKey("scoring.urgency_weight", "Weight of the urgency rating",
		func(c *Config) **float64 { return &c.Scoring.UrgencyWeight }),
	"scoring.importance_weight": weightKey("scoring.importance_weight", "Weight of the importance rating",
		func(c *Config) **float64 { return &c.Scoring.ImportanceWeight }),
	"scoring.deadline_weight": weightKey("scoring.deadline_weight", "Weight of deadline proximity",
		func(c *Config) **float64 { return &c.Scoring.DeadlineWeight }),
	"scoring.effort_weight": weightKey("scoring.effort_weight", "Weight of effort efficiency",
		func(c *Config) **float64 { return &c.Scoring.EffortWeight }),
	"files.input": {
		Type:       KeyTypeString,
		Desc:       "Default task file",
		DefaultStr: DefaultInput,
		get:        func(cfg *Config) string { return cfg.Files.Input },
		set:        func(cfg *Config, v string) error { cfg.Files.Input = v; return nil },
		unset:      func(cfg *Config) { cfg.Files.Input = DefaultInput },
	},
	"files.output": {
		Type:       KeyTypeString,
		Desc:       "Default export file",
		DefaultStr: DefaultOutput,
		get:        func(cfg *Config) string { return cfg.Files.Output },
		set:        func(cfg *Config, v string) error { cfg.Files.Output = v; return nil },
		unset:      func(cfg *Config) { cfg.Files.Output = DefaultOutput },
	},
	"display.name_width": {
		Type:       KeyTypeInt,
		Desc:       "Columns reserved for task names in the ranked table",
		DefaultStr: strconv.Itoa(DefaultNameWidth),
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Display.NameWidth) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 8 {
				return fmt.Errorf("invalid value %q for display.name_width (want an integer >= 8)", v)
			}
			cfg.Display.NameWidth = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.NameWidth = DefaultNameWidth },
	},
	"display.color": {
		Type:       KeyTypeBool,
		Desc:       "Colorize console output",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return fmt.Sprintf("%t", cfg.Display.ColorEnabled()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for display.color: %w", v, err)
			}
			cfg.Display.Color = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.Color = BoolPtr(true) },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
