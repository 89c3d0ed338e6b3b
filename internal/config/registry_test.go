package config

import (
	"sort"
	"testing"
)

func TestValidKeyNames_Sorted(t *testing.T) {
	names := ValidKeyNames()
	if len(names) == 0 {
		t.Fatal("expected non-empty key list")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted key names, got %v", names)
	}
}

func TestValidKeyNames_ContainsKnownKeys(t *testing.T) {
	expected := []string{
		"scoring.urgency_weight", "scoring.importance_weight",
		"scoring.deadline_weight", "scoring.effort_weight",
		"files.input", "files.output", "display.name_width", "display.color",
	}
	nameSet := make(map[string]bool)
	for _, n := range ValidKeyNames() {
		nameSet[n] = true
	}
	for _, want := range expected {
		if !nameSet[want] {
			t.Errorf("ValidKeyNames missing expected key %q", want)
		}
	}
}

func TestLookupKey_Unknown(t *testing.T) {
	if _, ok := LookupKey("user.name"); ok {
		t.Fatal("expected unknown key to return false")
	}
}

func TestParseBoolValue(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "on", "TRUE", "On"} {
		if b, err := ParseBoolValue(v); err != nil || !b {
			t.Errorf("ParseBoolValue(%q) = %v, %v; want true", v, b, err)
		}
	}
	for _, v := range []string{"false", "0", "no", "off", "NO"} {
		if b, err := ParseBoolValue(v); err != nil || b {
			t.Errorf("ParseBoolValue(%q) = %v, %v; want false", v, b, err)
		}
	}
	for _, v := range []string{"maybe", "", "2"} {
		if _, err := ParseBoolValue(v); err == nil {
			t.Errorf("ParseBoolValue(%q): expected error", v)
		}
	}
}

func TestSetGetUnset_WeightKey(t *testing.T) {
	cfg := defaultConfig()
	entry, ok := LookupKey("scoring.deadline_weight")
	if !ok {
		t.Fatal("scoring.deadline_weight not found in registry")
	}

	if got := entry.Get(cfg); got != "default" {
		t.Fatalf("unset weight should read as default, got %q", got)
	}
	if err := entry.Set(cfg, "0.25"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := entry.Get(cfg); got != "0.25" {
		t.Fatalf("Get: expected 0.25, got %q", got)
	}
	if cfg.Scoring.DeadlineWeight == nil || *cfg.Scoring.DeadlineWeight != 0.25 {
		t.Fatalf("field not updated: %v", cfg.Scoring.DeadlineWeight)
	}

	entry.Unset(cfg)
	if cfg.Scoring.DeadlineWeight != nil {
		t.Fatal("Unset should clear the override")
	}
}

func TestSet_WeightInvalid(t *testing.T) {
	cfg := defaultConfig()
	entry, _ := LookupKey("scoring.urgency_weight")
	for _, v := range []string{"heavy", "-0.1", "1.5"} {
		if err := entry.Set(cfg, v); err == nil {
			t.Errorf("Set(%q): expected error", v)
		}
	}
}

func TestSetGetUnset_NameWidth(t *testing.T) {
	cfg := defaultConfig()
	entry, _ := LookupKey("display.name_width")

	if err := entry.Set(cfg, "40"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Display.NameWidth != 40 {
		t.Fatalf("NameWidth = %d", cfg.Display.NameWidth)
	}
	if err := entry.Set(cfg, "3"); err == nil {
		t.Fatal("expected error for too-narrow width")
	}
	entry.Unset(cfg)
	if cfg.Display.NameWidth != DefaultNameWidth {
		t.Fatalf("Unset: NameWidth = %d", cfg.Display.NameWidth)
	}
}

func TestSetGetUnset_BoolKey(t *testing.T) {
	cfg := defaultConfig()
	entry, _ := LookupKey("display.color")

	if err := entry.Set(cfg, "off"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := entry.Get(cfg); got != "false" {
		t.Fatalf("Get: expected false, got %q", got)
	}
	if err := entry.Set(cfg, "notabool"); err == nil {
		t.Fatal("expected error for invalid bool value")
	}
	entry.Unset(cfg)
	if got := entry.Get(cfg); got != "true" {
		t.Fatalf("Unset: expected true, got %q", got)
	}
}

func TestAllSchemaKeys_DefaultsRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	for key, entry := range SchemaKeys {
		if entry.Desc == "" {
			t.Errorf("key %q has no description", key)
		}
		entry.Unset(cfg)
		if got := entry.Get(cfg); got != entry.DefaultStr {
			t.Errorf("key %q: Get after Unset = %q, want %q", key, got, entry.DefaultStr)
		}
	}
}
