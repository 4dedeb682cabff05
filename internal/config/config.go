// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for the Tower of Hanoi game.
package config

import "time"

// Disk count limits and the default used when no usable value is given.
const (
	MinDisks     = 1
	MaxDisks     = 15
	DefaultDisks = 3
)

// DefaultIntervalMS is the default delay between auto-solve moves.
const DefaultIntervalMS = 600

// HanoiConfig contains all configuration for the Tower of Hanoi game.
type HanoiConfig struct {
	Disks      int           `yaml:"disks"`
	Difficulty string        `yaml:"difficulty"` // optional preset name, resolved into Disks on load
	Playback   HanoiPlayback `yaml:"playback"`
	Display    HanoiDisplay  `yaml:"display"`
}

// HanoiPlayback defines auto-solve timing.
type HanoiPlayback struct {
	IntervalMS int `yaml:"interval_ms"` // Delay between solver moves
}

// HanoiDisplay defines how towers are drawn.
type HanoiDisplay struct {
	ShowHelp bool   `yaml:"show_help"`
	DiskChar string `yaml:"disk_char"`
	PegChar  string `yaml:"peg_char"`
}

// Interval returns the playback interval as a duration.
func (c HanoiConfig) Interval() time.Duration {
	return time.Duration(c.Playback.IntervalMS) * time.Millisecond
}

// Normalize clamps out-of-range values in place and fills empty fields.
// Disk counts are clamped, never rejected. Difficulty is not consulted, so
// a disk count set after a preset wins.
func (c *HanoiConfig) Normalize() {
	if c.Disks == 0 {
		c.Disks = DefaultDisks
	}
	c.Disks = ClampDisks(c.Disks)
	if c.Playback.IntervalMS <= 0 {
		c.Playback.IntervalMS = DefaultIntervalMS
	}
	if c.Display.DiskChar == "" {
		c.Display.DiskChar = "█"
	}
	if c.Display.PegChar == "" {
		c.Display.PegChar = "│"
	}
}

// resolve turns a preset named in a config file into a disk count and
// normalizes the result.
func (c *HanoiConfig) resolve() {
	if c.Difficulty != "" {
		ApplyHanoiPreset(c, DifficultyPreset(c.Difficulty))
	}
	c.Normalize()
}

// DiskRune returns the first rune of the configured disk character.
func (d HanoiDisplay) DiskRune() rune {
	for _, r := range d.DiskChar {
		return r
	}
	return '█'
}

// PegRune returns the first rune of the configured peg character.
func (d HanoiDisplay) PegRune() rune {
	for _, r := range d.PegChar {
		return r
	}
	return '│'
}
