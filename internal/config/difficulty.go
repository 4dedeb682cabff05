package config

import (
	"strconv"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}

// PresetNames returns the preset names joined for help and error text.
func PresetNames() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// DisksForPreset returns the disk count for a difficulty preset,
// or 0 if the preset is unknown.
func DisksForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 8
	case DifficultyExpert:
		return 12
	default:
		return 0
	}
}

// ParsePreset converts a user-supplied name into a preset.
// Returns false for unknown names.
func ParsePreset(name string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if DisksForPreset(p) == 0 {
		return "", false
	}
	return p, true
}

// ApplyHanoiPreset sets the disk count from a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyHanoiPreset(cfg *HanoiConfig, preset DifficultyPreset) {
	if n := DisksForPreset(preset); n > 0 {
		cfg.Disks = n
		cfg.Difficulty = string(preset)
	}
}

// ClampDisks restricts a disk count to [MinDisks, MaxDisks].
func ClampDisks(n int) int {
	if n < MinDisks {
		return MinDisks
	}
	if n > MaxDisks {
		return MaxDisks
	}
	return n
}

// ParseDiskCount reads a disk count from an external source such as a CLI
// argument. Empty or non-numeric input yields DefaultDisks; numbers are
// clamped to [MinDisks, MaxDisks].
func ParseDiskCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultDisks
	}
	return ClampDisks(n)
}
