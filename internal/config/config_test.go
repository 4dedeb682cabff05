package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDiskCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", DefaultDisks},
		{"abc", DefaultDisks},
		{"3.5", DefaultDisks},
		{"4", 4},
		{" 7 ", 7},
		{"0", 1},
		{"-3", 1},
		{"15", 15},
		{"20", 15},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseDiskCount(tc.input); got != tc.expected {
				t.Errorf("ParseDiskCount(%q) = %d, expected %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestClampDisks(t *testing.T) {
	tests := []struct {
		val, expected int
	}{
		{0, 1},
		{1, 1},
		{8, 8},
		{15, 15},
		{20, 15},
	}

	for _, tc := range tests {
		if got := ClampDisks(tc.val); got != tc.expected {
			t.Errorf("ClampDisks(%d) = %d, expected %d", tc.val, got, tc.expected)
		}
	}
}

func TestPresets(t *testing.T) {
	prev := 0
	for _, p := range Presets {
		n := DisksForPreset(p)
		if n <= prev {
			t.Errorf("preset %q has %d disks, expected more than %d", p, n, prev)
		}
		if n > MaxDisks {
			t.Errorf("preset %q exceeds MaxDisks", p)
		}
		prev = n
	}

	if got := PresetNames(); got != "easy, normal, hard, expert" {
		t.Errorf("PresetNames() = %q", got)
	}

	if _, ok := ParsePreset("HARD"); !ok {
		t.Error("ParsePreset should be case-insensitive")
	}
	if _, ok := ParsePreset("impossible"); ok {
		t.Error("ParsePreset should reject unknown names")
	}

	cfg := DefaultHanoiConfig()
	ApplyHanoiPreset(&cfg, DifficultyHard)
	if cfg.Disks != 8 {
		t.Errorf("hard preset disks = %d, expected 8", cfg.Disks)
	}

	ApplyHanoiPreset(&cfg, DifficultyPreset("bogus"))
	if cfg.Disks != 8 {
		t.Errorf("unknown preset should not change disks, got %d", cfg.Disks)
	}
}

func TestNormalize(t *testing.T) {
	cfg := HanoiConfig{Disks: 40}
	cfg.Normalize()

	if cfg.Disks != MaxDisks {
		t.Errorf("Disks = %d, expected %d", cfg.Disks, MaxDisks)
	}
	if cfg.Interval() != 600*time.Millisecond {
		t.Errorf("Interval() = %v, expected 600ms", cfg.Interval())
	}
	if cfg.Display.DiskRune() != '█' || cfg.Display.PegRune() != '│' {
		t.Error("Normalize should fill display characters")
	}

}

func TestExplicitDisksWinOverPreset(t *testing.T) {
	cfg := DefaultHanoiConfig()
	ApplyHanoiPreset(&cfg, DifficultyHard)
	cfg.Disks = 4
	cfg.Normalize()

	if cfg.Disks != 4 {
		t.Errorf("Disks = %d, expected the explicit 4 to survive the hard preset", cfg.Disks)
	}
}

func TestLoadHanoiDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	data := []byte("disks: 2\ndifficulty: normal\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadHanoi(path)
	if err != nil {
		t.Fatalf("LoadHanoi() failed: %v", err)
	}
	if cfg.Disks != 5 {
		t.Errorf("Disks = %d, expected the normal preset's 5", cfg.Disks)
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	if len(defaultHanoiYAML) == 0 {
		t.Fatal("embedded default YAML is empty")
	}

	cfg, err := LoadHanoi("")
	if err != nil {
		t.Fatalf("LoadHanoi(\"\") failed: %v", err)
	}
	if cfg.Disks < MinDisks || cfg.Disks > MaxDisks {
		t.Errorf("loaded disks %d out of range", cfg.Disks)
	}
	if cfg.Playback.IntervalMS <= 0 {
		t.Errorf("loaded interval %d should be positive", cfg.Playback.IntervalMS)
	}
}

func TestLoadHanoiCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("disks: 99\nplayback:\n  interval_ms: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadHanoi(path)
	if err != nil {
		t.Fatalf("LoadHanoi() failed: %v", err)
	}
	if cfg.Disks != MaxDisks {
		t.Errorf("Disks = %d, expected clamp to %d", cfg.Disks, MaxDisks)
	}
	if cfg.Interval() != 250*time.Millisecond {
		t.Errorf("Interval() = %v, expected 250ms", cfg.Interval())
	}
	// Fields absent from the file keep their defaults
	if !cfg.Display.ShowHelp {
		t.Error("ShowHelp should keep its default")
	}
}

func TestLoadHanoiErrors(t *testing.T) {
	if _, err := LoadHanoi(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadHanoi should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("disks: [not a number"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadHanoi(path)
	if err == nil {
		t.Error("LoadHanoi should fail for malformed YAML")
	}
	if cfg.Disks != DefaultDisks {
		t.Errorf("malformed config should fall back to defaults, got %d disks", cfg.Disks)
	}
}
