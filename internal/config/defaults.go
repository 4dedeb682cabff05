package config

import (
	_ "embed"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

// DefaultHanoiConfig returns the default Tower of Hanoi configuration.
func DefaultHanoiConfig() HanoiConfig {
	return HanoiConfig{
		Disks: DefaultDisks,
		Playback: HanoiPlayback{
			IntervalMS: DefaultIntervalMS,
		},
		Display: HanoiDisplay{
			ShowHelp: true,
			DiskChar: "█",
			PegChar:  "│",
		},
	}
}
